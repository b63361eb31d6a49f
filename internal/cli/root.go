// Package cli holds the offerctl commands: the HTTP server and a terminal
// preview of page strips.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the offerctl root command.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "offerctl",
		Short:         "Offer catalog service and pagination tools",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: `  # Preview the strip shown on page 5 of 10
  offerctl pages --current 5 --total 10

  # Same strip as JSON, as served by /api/v1/pagination
  offerctl pages --current 5 --total 10 --json

  # Run the HTTP API
  offerctl serve --config config.yaml`,
	}
	cmd.AddCommand(newPagesCmd(), newServeCmd())
	return cmd
}
