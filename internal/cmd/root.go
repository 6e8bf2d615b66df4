package cmd

import (
	"github.com/dendrascience/baum/version"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the baum CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	var traceLevel string

	rootCmd := &cobra.Command{
		Use:   "baum",
		Short: "baum - regroup a crowded directory into a balanced tree of containers",
		Long: `baum regroups the entries of a single directory into nested containers so
that frequently used entries stay cheap to reach.

Every entry has a weight (1 unless overridden in a weights file) and every
position inside a directory has an access cost. baum chooses where to cut the
sorted entries into groups of at most --branching members so that the total
weighted access cost is minimal, using an exact search for short sequences
and a ratio heuristic for long ones.

Use subcommands to perform different operations:
  - plan: print the grouping and its cost
  - apply: create the containers and move the entries
  - mount: preview the grouping without moving anything
  - validate: check a weights file
  - compare: compare construction strategies
  - version: show build information`,
		Version: version.GetFullVersion(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if traceLevel != "" {
				setupTracing(traceLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "", "Trace the optimizer at the given level (debug, info, error)")

	groupPlanning := "planning"
	groupFilesystem := "filesystem"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupPlanning,
		Title: "Planning",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFilesystem,
		Title: "Filesystem Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	planCmd := NewPlanCmd()
	compareCmd := NewCompareCmd()
	validateCmd := NewValidateCmd()
	applyCmd := NewApplyCmd()
	mountCmd := NewMountCmd()
	seedCmd := NewSeedCmd()
	versionCmd := NewVersionCmd()

	planCmd.GroupID = groupPlanning
	compareCmd.GroupID = groupPlanning
	validateCmd.GroupID = groupPlanning
	applyCmd.GroupID = groupFilesystem
	mountCmd.GroupID = groupFilesystem
	seedCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(mountCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// setupTracing routes optimizer traces to the standard logger.
func setupTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("baum.tree").SetTraceLevel(tracing.TraceLevelFromString(level))
}
