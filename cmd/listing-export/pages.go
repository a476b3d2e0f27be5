package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/iota-uz/backoffice/modules"
	"github.com/iota-uz/backoffice/modules/core/presentation/controllers"
)

// exporters indexes the pages the server mounts by page name, so every
// list page is exportable without being declared twice.
func exporters(routes ...controllers.ListingRoute) map[string]controllers.ListingRoute {
	out := make(map[string]controllers.ListingRoute, len(routes))
	for _, route := range routes {
		out[route.PageName()] = route
	}
	return out
}

func builtInExporters() map[string]controllers.ListingRoute {
	return exporters(modules.ListingRoutes(modules.BuiltInModules...)...)
}

func pageNames(byName map[string]controllers.ListingRoute) []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func newPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the exportable pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range pageNames(builtInExporters()) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
