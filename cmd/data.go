package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ruheeh/waterchatbot/internal/ingest"
	"github.com/spf13/cobra"
)

var (
	addPeriod string
	addSheet  string
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Inspect and update the dataset",
}

var dataSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a one-screen dataset summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		s, err := store.Summarize()
		if err != nil {
			return err
		}
		fmt.Printf("Data file:     %s\n", store.Path())
		fmt.Printf("Total samples: %d\n", s.TotalSamples)
		fmt.Printf("Total sites:   %d\n", s.TotalSites)
		fmt.Printf("Date range:    %s\n", s.DateRange)
		fmt.Printf("Years covered: %s\n", joinInts(s.YearsCovered))
		fmt.Printf("Columns:       %d\n", s.Columns)
		return nil
	},
}

var dataSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show per-column types, counts and sample values",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		desc, err := store.SchemaDescription()
		if err != nil {
			return err
		}
		fmt.Print(desc)
		return nil
	},
}

var dataAddCmd = &cobra.Command{
	Use:   "add [file.csv]",
	Short: "Append new sample rows from a CSV file to the master",
	Long: `Append rows from a CSV file to the configured master data file.
The CSV header must use column names the master already has. The master
must itself be a CSV/TSV file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		meta, err := store.InitMetadata(cfg.MetadataDir, false)
		if err != nil {
			return err
		}

		tbl, err := ingest.Load(args[0], addSheet)
		if err != nil {
			return err
		}
		rows := make([]map[string]string, 0, tbl.Len())
		for _, row := range tbl.Rows() {
			rec := map[string]string{}
			for _, col := range tbl.Columns() {
				if row[col] != nil {
					rec[col] = cellString(row[col])
				}
			}
			rows = append(rows, rec)
		}
		if err := store.AppendRows(rows, meta, addPeriod); err != nil {
			return err
		}
		fmt.Printf("Appended %d rows to %s\n", len(rows), store.Path())
		return nil
	},
}

// cellString renders a typed cell back to its source-file text form.
func cellString(v any) string {
	switch x := v.(type) {
	case time.Time:
		return x.Format("2006-01-02")
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprint(v)
	}
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(dataCmd)
	dataCmd.AddCommand(dataSummaryCmd, dataSchemaCmd, dataAddCmd)
	dataAddCmd.Flags().StringVar(&addPeriod, "period", "", `period label for logging (e.g. "2025-01")`)
	dataAddCmd.Flags().StringVar(&addSheet, "sheet", "", "sheet name when the new-data file is .xlsx")
}
