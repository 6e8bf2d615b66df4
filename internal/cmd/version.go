package cmd

import (
	"encoding/json"
	"io"
	"log"
	"os"

	"github.com/dendrascience/baum/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates and returns the version subcommand for the baum CLI.
func NewVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runVersion(os.Stdout, asJSON); err != nil {
				log.Fatalf("Failed to print version: %v", err)
			}
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print build information as JSON")

	return cmd
}

func runVersion(w io.Writer, asJSON bool) error {
	info := version.GetInfo()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}
	return info.Fprint(w, "baum")
}
