package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dendrascience/baum/tree"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecord(t *testing.T) {
	weights := []float64{1, 1, 1, 1, 1, 1, 1}
	plan, err := tree.Build(weights, tree.DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	c := New()
	c.Record(plan, 3*time.Millisecond)

	if got := testutil.ToFloat64(c.cost.WithLabelValues("wrappable")); got != 19 {
		t.Errorf("Expected cost 19 but got %g", got)
	}
	if got := testutil.ToFloat64(c.entries.WithLabelValues("wrappable")); got != 7 {
		t.Errorf("Expected 7 entries but got %g", got)
	}
	if got := testutil.ToFloat64(c.nodes.WithLabelValues("wrappable", "exact")); got != float64(plan.Table.Stats.ExactNodes) {
		t.Errorf("Expected %d exact nodes but got %g", plan.Table.Stats.ExactNodes, got)
	}
}

func TestWriteTextfile(t *testing.T) {
	plan, err := tree.Build([]float64{1, 2, 3}, tree.Options{Policy: tree.Linear, MaxBranching: 2})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	c := New()
	c.Record(plan, time.Millisecond)

	path := filepath.Join(t.TempDir(), "baum.prom")
	if err := c.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"baum_entries", "baum_tree_cost", "baum_nodes", "baum_build_seconds_bucket"} {
		if !strings.Contains(string(data), name) {
			t.Errorf("Expected %s in textfile", name)
		}
	}
	if !strings.Contains(string(data), `access="linear"`) {
		t.Errorf("Expected access label in textfile")
	}
}

func TestRegistryGathersRecordedPlan(t *testing.T) {
	plan, err := tree.Build([]float64{1, 1, 1, 1, 1}, tree.DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	c := New()
	c.Record(plan, time.Millisecond)

	families, err := c.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	names := map[string]bool{}
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	for _, name := range []string{"baum_entries", "baum_table_signatures", "baum_tree_cost", "baum_build_seconds"} {
		if !names[name] {
			t.Errorf("Expected %s among gathered metrics %v", name, names)
		}
	}

	if n, err := testutil.GatherAndCount(c.Registry(), "baum_nodes"); err != nil || n != 3 {
		t.Errorf("Expected 3 baum_nodes series but got %d (%v)", n, err)
	}
}
