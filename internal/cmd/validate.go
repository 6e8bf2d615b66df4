package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dendrascience/baum/util"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates and returns the validate subcommand for the baum CLI.
// It checks a weights file and the options against a directory.
func NewValidateCmd() *cobra.Command {
	var (
		opts    = util.DefaultOptions()
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "validate DIR",
		Short: "Check a weights file against a directory",
		Long: `Validate the weight overrides for DIR.

Every weight must be a positive, finite number, every key must name an entry
of DIR and no key may appear twice. Staging directories left behind by an
interrupted "apply" are reported as well.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runValidate(args[0], opts, verbose)
		},
	}

	bindOptions(cmd.Flags(), &opts)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runValidate(dir string, opts util.Options, verbose bool) {
	var problems []error
	if err := opts.Validate(); err != nil {
		problems = append(problems, err)
	}

	seq, err := util.ReadSequence(dir, opts)
	switch {
	case err == nil:
		if verbose {
			fmt.Printf("Validating %d entries in %s\n", len(seq.Names), dir)
			if seq.WeightsPath != "" {
				fmt.Printf("Weights file: %s (%d overrides)\n", seq.WeightsPath, len(seq.Weights))
			} else {
				fmt.Println("No weights file found, all entries weigh 1")
			}
		}
		if err := seq.Validate(); err != nil {
			problems = append(problems, err)
		}
	case errors.Is(err, util.ErrInvalidWeight) || errors.Is(err, util.ErrDuplicateEntry):
		problems = append(problems, err)
	default:
		log.Fatalf("Failed to read %s: %v", dir, err)
	}

	leftovers, err := stagingLeftovers(dir)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", dir, err)
	}
	for _, l := range leftovers {
		problems = append(problems, fmt.Errorf("staging directory left by an interrupted run: %s", l))
	}

	var lines []string
	for _, p := range problems {
		lines = append(lines, flatten(p)...)
	}

	fmt.Printf("\nValidation complete:\n")
	fmt.Printf("  Problems: %d\n", len(lines))
	for _, l := range lines {
		fmt.Printf("  - %s\n", l)
	}

	if len(lines) > 0 {
		os.Exit(1)
	}
}

// flatten splits joined errors into one message per problem.
func flatten(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return strings.Split(err.Error(), "\n")
}

func stagingLeftovers(dir string) ([]string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, f := range files {
		if strings.HasPrefix(f.Name(), util.StagingPrefix) {
			out = append(out, f.Name())
		}
	}
	return out, nil
}
