package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/dendrascience/baum/materialize"
	"github.com/dendrascience/baum/util"
	"github.com/spf13/cobra"
)

// NewApplyCmd creates and returns the apply subcommand for the baum CLI.
// It moves the entries of a directory into the planned containers.
func NewApplyCmd() *cobra.Command {
	var (
		opts        = util.DefaultOptions()
		metricsPath string
		verbose     bool
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "apply DIR",
		Short: "Create the planned containers and move the entries into them",
		Long: `Plan the grouping of DIR and apply it.

Every group of more than one entry becomes a directory named after its first
and last member. Members are collected in a hidden staging directory which is
renamed once complete, so an interrupted group is rolled back. An interrupt
stops the run after the group in progress.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runApply(cmd.Context(), args[0], opts, metricsPath, verbose, dryRun)
		},
	}

	bindOptions(cmd.Flags(), &opts)
	cmd.Flags().StringVar(&metricsPath, "metrics-file", "", "Write optimizer metrics in Prometheus text format to this file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every change")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")

	return cmd
}

func runApply(ctx context.Context, dir string, opts util.Options, metricsPath string, verbose, dryRun bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	p, err := buildPlan(dir, opts)
	if err != nil {
		log.Fatalf("Failed to plan %s: %v", dir, err)
	}
	writeMetrics(metricsPath, p)

	if verbose {
		fmt.Printf("Applying grouping of %d entries in %s (cost %g)\n", p.plan.Length, dir, p.plan.Cost())
		if dryRun {
			fmt.Println("DRY RUN - no changes will be made")
		}
	}

	m := materialize.New(ctx, materialize.Options{Shortcut: opts.Shortcut, DryRun: dryRun})
	defer m.Close()

	printed := make(chan struct{})
	if verbose || dryRun {
		events, ok := m.Subscribe(ctx)
		if !ok {
			log.Fatalf("Failed to follow progress: %v", ctx.Err())
		}
		go func() {
			defer close(printed)
			for ev := range events {
				if ev.Kind == materialize.EventDone {
					return
				}
				fmt.Println(ev)
			}
		}()
	} else {
		close(printed)
	}

	res, err := m.Apply(ctx, dir, p.items, p.plan.Table)
	<-printed
	if err != nil {
		log.Fatalf("Failed to apply grouping to %s after %d containers: %v", dir, res.Containers, err)
	}
	fmt.Printf("Created %d containers, moved %d entries\n", res.Containers, res.Moves)
}
