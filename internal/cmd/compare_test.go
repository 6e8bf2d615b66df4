package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dendrascience/baum/tree"
	"github.com/dendrascience/baum/util"
)

func TestCompareStrategies(t *testing.T) {
	weights := []float64{1, 1, 1, 1, 1, 1, 1}
	costs, err := compareStrategies(weights, tree.DefaultOptions(), 16)
	if err != nil {
		t.Fatalf("compareStrategies failed: %v", err)
	}

	byName := map[string]float64{}
	for _, c := range costs {
		byName[c.name] = c.cost
	}
	// flat wrappable costs for seven positions: 1 2 3 4 4 3 2
	expected := map[string]float64{"flat": 19, "hybrid": 19, "exact": 19}
	for name, cost := range expected {
		if byName[name] != cost {
			t.Errorf("Expected %s cost %g but got %g", name, cost, byName[name])
		}
	}
	if byName["ratio"] < byName["exact"] {
		t.Errorf("Ratio cost %g below exact optimum %g", byName["ratio"], byName["exact"])
	}
}

func TestCompareStrategiesSkipsExact(t *testing.T) {
	weights := make([]float64, 30)
	for i := range weights {
		weights[i] = 1
	}
	costs, err := compareStrategies(weights, tree.Options{Policy: tree.Linear, MaxBranching: 4, Threshold: 10}, 16)
	if err != nil {
		t.Fatalf("compareStrategies failed: %v", err)
	}
	if len(costs) != 3 {
		t.Fatalf("Expected 3 strategies but got %d", len(costs))
	}
	for _, c := range costs[1:] {
		if c.cost > costs[0].cost {
			t.Errorf("%s cost %g exceeds flat cost %g", c.name, c.cost, costs[0].cost)
		}
	}
}

func TestCompareRejectsInvalidWeights(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a", "b", "c"} {
		if err := os.Mkdir(filepath.Join(dir, n), 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, util.DefaultWeightsFile), []byte(`{"a": -40, "c": 0}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := loadSequence(dir, util.DefaultOptions()); !errors.Is(err, util.ErrInvalidWeight) {
		t.Errorf("Expected ErrInvalidWeight from loadSequence but got %v", err)
	}

	costs, err := compareStrategies([]float64{-40, 1, 0}, tree.DefaultOptions(), 16)
	if !errors.Is(err, tree.ErrInvalidWeight) {
		t.Errorf("Expected tree.ErrInvalidWeight but got %v (costs %v)", err, costs)
	}
}

func TestCompareWarnsOnUnknownEntries(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a", "b", "c"} {
		if err := os.Mkdir(filepath.Join(dir, n), 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, util.DefaultWeightsFile), []byte(`{"z": 3, "b": 2}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, items, err := loadSequence(dir, util.DefaultOptions())
	if err != nil {
		t.Fatalf("loadSequence failed: %v", err)
	}
	if len(items) != 3 || items[1].Weight != 2 {
		t.Errorf("Unexpected items %+v", items)
	}
}
