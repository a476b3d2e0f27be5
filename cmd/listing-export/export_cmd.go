package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/configuration"
	"github.com/iota-uz/backoffice/pkg/excel"
	"github.com/iota-uz/backoffice/pkg/listing"
)

func newExportCmd() *cobra.Command {
	var (
		tenantID string
		page     string
		search   string
		excludes []string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Fetch a page, apply filters and write the visible rows as XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tid, err := uuid.Parse(tenantID)
			if err != nil || tid == uuid.Nil {
				return fmt.Errorf("invalid --tenant %q", tenantID)
			}
			byName := builtInExporters()
			route, ok := byName[page]
			if !ok {
				return fmt.Errorf("unknown --page %q (available: %s)", page, strings.Join(pageNames(byName), ", "))
			}
			exclude, err := parseExcludes(excludes)
			if err != nil {
				return err
			}

			conf := configuration.Use()
			defer conf.Unload()
			pool, err := connectDB(cmd.Context(), conf)
			if err != nil {
				return err
			}
			defer pool.Close()

			ctx := composables.WithPool(cmd.Context(), pool)
			ctx = composables.WithTenantID(ctx, tid)
			logger := conf.Logger().WithField("page", page).WithField("tenant_id", tid.String())
			ctx = composables.WithLogger(ctx, logger)

			start := time.Now()
			headers, cells, err := route.Export(ctx, listing.ExportRequest{Search: search, Exclude: exclude})
			if err != nil {
				return err
			}
			if output == "" {
				output = page + ".xlsx"
			}
			if err := writeWorkbook(cmd.OutOrStdout(), output, page, headers, cells); err != nil {
				return err
			}
			logger.WithField("rows", len(cells)).WithField("duration_ms", time.Since(start).Milliseconds()).Info("listing exported")
			return nil
		},
	}

	cmd.Flags().StringVar(&tenantID, "tenant", "", "Tenant UUID (required)")
	cmd.Flags().StringVar(&page, "page", "", "Page name, see `listing-export pages` (required)")
	cmd.Flags().StringVar(&search, "search", "", "Free-text search term")
	cmd.Flags().StringArrayVar(&excludes, "exclude", nil, "Hide a column value, as column=value (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, - for stdout (default <page>.xlsx)")
	_ = cmd.MarkFlagRequired("tenant")
	_ = cmd.MarkFlagRequired("page")
	return cmd
}

// parseExcludes groups column=value pairs by column. The value may be empty
// or contain further '=' signs.
func parseExcludes(raw []string) (map[string][]string, error) {
	out := make(map[string][]string, len(raw))
	for _, pair := range raw {
		column, value, ok := strings.Cut(pair, "=")
		column = strings.TrimSpace(column)
		if !ok || column == "" {
			return nil, fmt.Errorf("invalid --exclude %q: expected column=value", pair)
		}
		out[column] = append(out[column], value)
	}
	return out, nil
}

func writeWorkbook(stdout io.Writer, output, page string, headers []string, cells [][]string) error {
	if output == "-" {
		return excel.Write(stdout, excel.SheetName(page), headers, cells)
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := excel.Write(f, excel.SheetName(page), headers, cells); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func connectDB(ctx context.Context, conf *configuration.Configuration) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
