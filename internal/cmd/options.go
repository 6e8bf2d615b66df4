package cmd

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dendrascience/baum/internal/metrics"
	"github.com/dendrascience/baum/tree"
	"github.com/dendrascience/baum/util"
	"github.com/spf13/pflag"
)

// bindOptions registers the planning flags on flags, with the current values
// of o as defaults.
func bindOptions(flags *pflag.FlagSet, o *util.Options) {
	flags.IntVarP(&o.Branching, "branching", "b", o.Branching, "Maximum number of entries per directory")
	flags.VarP(&o.Access, "access", "a", "Access cost model: wrappable, linear or constant")
	flags.IntVarP(&o.Threshold, "threshold", "t", o.Threshold, "Solve sequences shorter than this exactly (0: ratio heuristic only)")
	flags.IntVarP(&o.Shortcut, "shortcut", "s", o.Shortcut, "Characters taken from the first and last member for container names")
	flags.StringVarP(&o.WeightsPath, "weights", "w", "", "Weights file (default: "+util.DefaultWeightsFile+" inside DIR, if present)")
}

// planned is a directory together with its computed grouping.
type planned struct {
	seq     *util.Sequence
	items   []tree.Item
	plan    *tree.Plan
	root    *tree.Node
	elapsed time.Duration
}

// loadSequence reads the entries and weights of dir. Weights for entries
// that do not exist are reported and ignored; invalid weight values are an
// error.
func loadSequence(dir string, o util.Options) (*util.Sequence, []tree.Item, error) {
	if err := o.Validate(); err != nil {
		return nil, nil, err
	}
	seq, err := util.ReadSequence(dir, o)
	if err != nil {
		return nil, nil, err
	}
	if err := seq.Validate(); err != nil {
		if errors.Is(err, util.ErrInvalidWeight) {
			return nil, nil, err
		}
		log.Printf("Warning: %v", err)
	}

	items := seq.Items()
	if len(items) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", dir, tree.ErrEmptySequence)
	}
	return seq, items, nil
}

// buildPlan reads dir and computes its grouping.
func buildPlan(dir string, o util.Options) (*planned, error) {
	seq, items, err := loadSequence(dir, o)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	plan, err := tree.Build(tree.Weights(items), o.Tree())
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	root, err := tree.Expand(items, plan.Table)
	if err != nil {
		return nil, err
	}
	return &planned{seq: seq, items: items, plan: plan, root: root, elapsed: elapsed}, nil
}

// writeMetrics exports the statistics of p to path, if set.
func writeMetrics(path string, p *planned) {
	if path == "" {
		return
	}
	c := metrics.New()
	c.Record(p.plan, p.elapsed)
	if err := c.WriteTextfile(path); err != nil {
		log.Printf("Warning: failed to write metrics to %s: %v", path, err)
	}
}
