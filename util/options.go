package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dendrascience/baum/tree"
)

// Options is the configuration shared by the commands that plan a grouping.
type Options struct {
	Branching   int         `json:"branching"`
	Access      tree.Policy `json:"access"`
	Threshold   int         `json:"threshold"`
	Shortcut    int         `json:"shortcut"`
	WeightsPath string      `json:"weights,omitempty"`
}

// DefaultOptions returns the settings used when no flags are given.
func DefaultOptions() Options {
	d := tree.DefaultOptions()
	return Options{
		Branching: d.MaxBranching,
		Access:    d.Policy,
		Threshold: d.Threshold,
		Shortcut:  10,
	}
}

// Tree returns the optimizer settings.
func (o Options) Tree() tree.Options {
	return tree.Options{
		Policy:       o.Access,
		MaxBranching: o.Branching,
		Threshold:    o.Threshold,
	}
}

// Validate checks all options at once.
func (o Options) Validate() error {
	var errs []error
	if err := o.Tree().Validate(); err != nil {
		errs = append(errs, err)
	}
	if o.Shortcut < 1 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidShortcut, o.Shortcut))
	}
	return errors.Join(errs...)
}

// Sequence is a directory read for planning: its entries in order and the
// weight overrides that apply to them.
type Sequence struct {
	Dir         string
	Names       []string
	Weights     map[string]float64
	WeightsPath string // empty when no override file was used
}

// ReadSequence lists dir and loads its weight overrides.
//
// Without an explicit WeightsPath, DefaultWeightsFile inside dir is used if it
// exists. A weights file inside dir is not an entry of the sequence.
func ReadSequence(dir string, o Options) (*Sequence, error) {
	names, err := ListEntries(dir)
	if err != nil {
		return nil, err
	}

	path := o.WeightsPath
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, DefaultWeightsFile)
	}

	seq := &Sequence{Dir: dir, Names: names, Weights: map[string]float64{}}
	weights, err := LoadWeights(path)
	switch {
	case err == nil:
		seq.Weights = weights
		seq.WeightsPath = path
	case !explicit && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	if seq.WeightsPath != "" && sameDir(filepath.Dir(path), dir) {
		base := filepath.Base(path)
		kept := seq.Names[:0]
		for _, n := range seq.Names {
			if n != base {
				kept = append(kept, n)
			}
		}
		seq.Names = kept
	}
	return seq, nil
}

// Items returns the weighted sequence.
func (s *Sequence) Items() []tree.Item {
	return Items(s.Names, s.Weights)
}

// Validate checks the overrides against the entries.
func (s *Sequence) Validate() error {
	return ValidateWeights(s.Names, s.Weights)
}

func sameDir(a, b string) bool {
	ia, err := os.Stat(a)
	if err != nil {
		return false
	}
	ib, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ia, ib)
}
