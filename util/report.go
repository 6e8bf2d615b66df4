package util

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dendrascience/baum/tree"
	"github.com/dendrascience/baum/version"
	"github.com/google/uuid"
)

type (
	// Report summarizes one planning run.
	Report struct {
		RunID     string       `json:"run_id"`
		Build     version.Info `json:"build"`
		Created   time.Time    `json:"created"`
		Dir       string       `json:"dir"`
		Options   Options      `json:"options"`
		Entries   int          `json:"entries"`
		Cost      float64      `json:"cost"`
		TableSize int          `json:"table_size"`
		Stats     tree.Stats   `json:"stats"`
		Root      []ReportNode `json:"root"`
	}
	// ReportNode is an entry or a planned container. Container names are
	// previews; collisions are only resolved when the grouping is applied.
	ReportNode struct {
		Name     string       `json:"name"`
		Weight   float64      `json:"weight"`
		Children []ReportNode `json:"children,omitempty"`
	}
)

// NewReport describes the grouping root produced by plan for dir.
func NewReport(dir string, o Options, plan *tree.Plan, root *tree.Node) Report {
	return Report{
		RunID:     uuid.New().String(),
		Build:     version.GetInfo(),
		Created:   time.Now().UTC(),
		Dir:       dir,
		Options:   o,
		Entries:   plan.Length,
		Cost:      plan.Cost(),
		TableSize: plan.Table.Len(),
		Stats:     plan.Table.Stats,
		Root:      reportChildren(root, o.Shortcut),
	}
}

func reportChildren(n *tree.Node, shortcut int) []ReportNode {
	if n.IsLeaf() {
		return []ReportNode{{Name: n.First().Name, Weight: n.Weight}}
	}
	out := make([]ReportNode, 0, len(n.Children))
	for _, c := range n.Children {
		if c.IsLeaf() {
			out = append(out, ReportNode{Name: c.First().Name, Weight: c.Weight})
			continue
		}
		out = append(out, ReportNode{
			Name:     ContainerName(c.First().Name, c.Last().Name, shortcut),
			Weight:   c.Weight,
			Children: reportChildren(c, shortcut),
		})
	}
	return out
}

// Save writes the report as JSON to path.
func (r Report) Save(path string) error {
	return WriteJSONFile(path, r)
}

// WriteJSONFile encodes v as JSON into a new file at path.
func WriteJSONFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
