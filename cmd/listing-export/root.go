package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "listing-export",
		Short:        "Export filtered back-office list pages to XLSX",
		SilenceUsage: true,
	}
	cmd.AddCommand(newExportCmd(), newPagesCmd())
	return cmd
}
