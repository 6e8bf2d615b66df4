package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dendrascience/baum/tree"
	"github.com/dendrascience/baum/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewPlanCmd creates and returns the plan subcommand for the baum CLI.
// It computes the grouping of a directory without changing it.
func NewPlanCmd() *cobra.Command {
	var (
		opts        = util.DefaultOptions()
		reportPath  string
		metricsPath string
		quiet       bool
	)

	cmd := &cobra.Command{
		Use:   "plan DIR",
		Short: "Compute and print the grouping of a directory",
		Long: `Compute the grouping of the entries of DIR and print it as a tree.

Containers are shown with the name they would get and the total weight of
their members. Nothing is moved; use "apply" for that or "mount" to browse
the result.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runPlan(args[0], opts, reportPath, metricsPath, quiet)
		},
	}

	bindOptions(cmd.Flags(), &opts)
	cmd.Flags().StringVar(&reportPath, "json", "", "Write a JSON report to this file")
	cmd.Flags().StringVar(&metricsPath, "metrics-file", "", "Write optimizer metrics in Prometheus text format to this file")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the total cost")

	return cmd
}

func runPlan(dir string, opts util.Options, reportPath, metricsPath string, quiet bool) {
	p, err := buildPlan(dir, opts)
	if err != nil {
		log.Fatalf("Failed to plan %s: %v", dir, err)
	}

	if !quiet {
		printTree(os.Stdout, p.root, p.seq.Weights, opts.Shortcut)
		fmt.Println()
	}
	fmt.Printf("Total cost: %g (%d entries, %d signatures, %s)\n",
		p.plan.Cost(), p.plan.Length, p.plan.Table.Len(), p.elapsed.Round(time.Microsecond))

	if reportPath != "" {
		if err := util.NewReport(dir, opts, p.plan, p.root).Save(reportPath); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
	}
	writeMetrics(metricsPath, p)
}

var (
	containerColor = color.New(color.FgBlue, color.Bold)
	weightColor    = color.New(color.FgYellow)
	faintColor     = color.New(color.Faint)
)

// printTree writes the grouping below root, one line per node. Entries with
// an overridden weight show it.
func printTree(w io.Writer, root *tree.Node, overrides map[string]float64, shortcut int) {
	if root.IsLeaf() {
		printEntry(w, "", root.First(), overrides)
		return
	}
	printChildren(w, root, "", overrides, shortcut)
}

func printChildren(w io.Writer, node *tree.Node, indent string, overrides map[string]float64, shortcut int) {
	for i, child := range node.Children {
		branch, next := "├── ", "│   "
		if i == len(node.Children)-1 {
			branch, next = "└── ", "    "
		}
		if child.IsLeaf() {
			printEntry(w, indent+branch, child.First(), overrides)
			continue
		}
		name := util.ContainerName(child.First().Name, child.Last().Name, shortcut)
		fmt.Fprintf(w, "%s%s/ %s\n", faintColor.Sprint(indent+branch), containerColor.Sprint(name),
			faintColor.Sprintf("(%d entries, weight %g)", len(child.Items), child.Weight))
		printChildren(w, child, indent+next, overrides, shortcut)
	}
}

func printEntry(w io.Writer, prefix string, it tree.Item, overrides map[string]float64) {
	if _, ok := overrides[it.Name]; ok {
		fmt.Fprintf(w, "%s%s %s\n", faintColor.Sprint(prefix), it.Name, weightColor.Sprintf("[%g]", it.Weight))
		return
	}
	fmt.Fprintf(w, "%s%s\n", faintColor.Sprint(prefix), it.Name)
}
