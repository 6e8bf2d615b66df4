package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
	"github.com/dendrascience/baum/baumfs"
	"github.com/dendrascience/baum/util"
	"github.com/dendrascience/baum/version"
	"github.com/spf13/cobra"
)

// NewMountCmd creates and returns the mount subcommand for the baum CLI.
// It serves a read-only preview of the planned grouping.
func NewMountCmd() *cobra.Command {
	opts := util.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "mount DIR MOUNTPOINT",
		Short: "Preview the grouping of a directory through FUSE",
		Long: `Mount a read-only view of DIR as it would look after "apply".

Containers appear as directories, entries as symbolic links to the real
entries in DIR. Nothing in DIR is changed. MOUNTPOINT must not be inside DIR
and DIR must not be inside MOUNTPOINT.`,
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			runMount(args[0], args[1], opts)
		},
	}

	bindOptions(cmd.Flags(), &opts)

	return cmd
}

func runMount(dir, mountpoint string, opts util.Options) {
	// Print version info on startup
	fmt.Printf("baum %s starting...\n", version.GetFullVersion())

	if pathsOverlap(dir, mountpoint) {
		log.Fatalf("Mountpoint %s and directory %s overlap", mountpoint, dir)
	}

	p, err := buildPlan(dir, opts)
	if err != nil {
		log.Fatalf("Failed to plan %s: %v", dir, err)
	}
	filesystem, err := baumfs.NewFS(dir, p.root, opts.Shortcut)
	if err != nil {
		log.Fatalf("Failed to build preview: %v", err)
	}

	c, err := fuse.Mount(
		mountpoint,
		fuse.FSName("baum"),
		fuse.Subtype("baumfs"),
		fuse.ReadOnly(),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	go func() {
		<-sigChan
		log.Println("Received interrupt signal, shutting down...")

		fuse.Unmount(mountpoint)
		c.Close()

		log.Println("Shutdown complete")
		os.Exit(0)
	}()

	log.Printf("baum %s mounted preview of %s at %s (%d entries, cost %g)",
		version.GetVersion(), dir, mountpoint, p.plan.Length, p.plan.Cost())
	err = fs.Serve(c, filesystem)
	if err != nil {
		log.Fatal(err)
	}
}

// pathsOverlap reports whether one of the paths contains the other.
// Relative paths are resolved against the working directory.
func pathsOverlap(path1, path2 string) bool {
	abs1, err := filepath.Abs(path1)
	if err != nil {
		return false
	}
	abs2, err := filepath.Abs(path2)
	if err != nil {
		return false
	}
	return within(abs1, abs2) || within(abs2, abs1)
}

func within(path, parent string) bool {
	rel, err := filepath.Rel(parent, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
