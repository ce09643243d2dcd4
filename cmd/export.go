package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/ruheeh/waterchatbot/internal/lexicon"
	"github.com/ruheeh/waterchatbot/internal/table"
	"github.com/spf13/cobra"
)

var (
	exportOut  string
	exportYear int
	exportSite string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the dataset to CSV",
	Long: `Export the loaded dataset (including the derived year, month and
season columns) to a CSV file, or to stdout when no output is given. The
rows may be restricted to one year and/or one site first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		tbl, err := store.CurrentTable()
		if err != nil {
			return err
		}
		if exportYear != 0 {
			tbl = tbl.Filter(func(r table.Row) bool {
				y, ok := table.Int(r, lexicon.ColYear)
				return ok && y == exportYear
			})
		}
		if exportSite != "" {
			tbl = tbl.Filter(func(r table.Row) bool {
				return table.Text(r, lexicon.ColSite) == exportSite
			})
		}

		out := os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			out = f
		}

		w := csv.NewWriter(out)
		if err := w.Write(tbl.Columns()); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		for _, row := range tbl.Rows() {
			rec := make([]string, len(tbl.Columns()))
			for i, col := range tbl.Columns() {
				if row[col] != nil {
					rec[i] = cellString(row[col])
				}
			}
			if err := w.Write(rec); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
		if exportOut != "" {
			fmt.Printf("Exported %d rows to %s\n", tbl.Len(), exportOut)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output CSV path (default stdout)")
	exportCmd.Flags().IntVar(&exportYear, "year", 0, "restrict to one year")
	exportCmd.Flags().StringVar(&exportSite, "site", "", "restrict to one site id")
}
