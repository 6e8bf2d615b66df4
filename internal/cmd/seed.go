package cmd

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"

	"github.com/dendrascience/baum/util"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the baum CLI.
// It fills a directory with test entries and optional weights.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		entryCount int
		weighted   int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a directory of test entries",
		Long: `Generate a flat directory of test entries for trying out baum.

Creates empty directories with random names. With --weighted, that
percentage of the entries gets a random weight between 1 and 100 in a
` + util.DefaultWeightsFile + ` inside the output directory.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, entryCount, weighted, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&entryCount, "count", "c", 100, "Number of entries to generate")
	cmd.Flags().IntVar(&weighted, "weighted", 0, "Percentage of entries to give a random weight")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(outputPath string, entryCount, weighted int, verbose bool) {
	if verbose {
		fmt.Printf("Generating %d test entries in %s\n", entryCount, outputPath)
	}

	weights, err := seedEntries(outputPath, entryCount, weighted)
	if err != nil {
		log.Fatalf("Failed to seed %s: %v", outputPath, err)
	}

	if len(weights) > 0 {
		path := filepath.Join(outputPath, util.DefaultWeightsFile)
		if err := util.WriteJSONFile(path, weights); err != nil {
			log.Fatalf("Failed to write weights: %v", err)
		}
		if verbose {
			fmt.Printf("Wrote %d weights to %s\n", len(weights), path)
		}
	}

	if verbose {
		fmt.Printf("Successfully created %d entries\n", entryCount)
	}
}

// seedEntries creates count uniquely named directories in outputPath and
// returns random weights for roughly weighted percent of them.
func seedEntries(outputPath string, count, weighted int) (map[string]float64, error) {
	if err := os.MkdirAll(outputPath, 0755); err != nil {
		return nil, err
	}

	weights := make(map[string]float64)
	for created := 0; created < count; {
		name := uuid.New().String()[:8]
		path := filepath.Join(outputPath, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.Mkdir(path, 0755); err != nil {
			return nil, err
		}
		created++

		pick, _ := rand.Int(rand.Reader, big.NewInt(100))
		if int(pick.Int64()) < weighted {
			w, _ := rand.Int(rand.Reader, big.NewInt(100))
			weights[name] = float64(w.Int64() + 1)
		}
	}
	return weights, nil
}
