package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"tweetscope/internal/dataset"
	"tweetscope/internal/db"
)

var (
	importRaw     []string
	importDerived []string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load raw and derived tweet CSV files into the local database",
	Long: "Stacks the raw CSV files, stacks the derived feature CSV files, joins the two " +
		"side by side and replaces the stored dataset with the result.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		table, err := dataset.LoadCSV(importRaw, importDerived)
		if err != nil {
			return err
		}
		slog.Info("csv loaded", "rows", table.Len(), "columns", len(table.Columns()))

		path := importTarget()
		d, err := db.OpenDB(ctx, path)
		if err != nil {
			return err
		}
		defer d.Close()

		sources := append(append([]string{}, importRaw...), importDerived...)
		imp, err := d.ReplaceDataset(ctx, table, sources)
		if err != nil {
			return fmt.Errorf("storing dataset: %w", err)
		}

		cols := make([]string, 0, len(table.Columns()))
		for _, c := range table.Columns() {
			cols = append(cols, string(c))
		}
		fmt.Printf("Imported %s tweets into %s\n", humanize.Comma(int64(imp.RowCount)), path)
		fmt.Printf("  columns (%d): %s\n", len(cols), strings.Join(cols, ", "))
		return nil
	},
}

func init() {
	importCmd.Flags().StringSliceVar(&importRaw, "raw", nil, "Raw tweet CSV files (comma separated)")
	importCmd.Flags().StringSliceVar(&importDerived, "derived", nil, "Derived feature CSV files, same row order as --raw")
	rootCmd.AddCommand(importCmd)
}
