package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"shiftsync/internal/timeutil"
	"shiftsync/output"
	"shiftsync/storage"
)

var (
	exportFormat string
	exportOutput string
	exportDBPath string
	exportStore  int
	exportDate   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export reconciled shifts from SQLite to CSV/Excel",
	Long: `Export reconciled shift records from the local store.

Output format can be selected explicitly via --format or inferred from
the --output extension. The export can be narrowed to one store and/or
one calendar date.`,
	Example: `
  # Export everything to CSV
  shiftsync export --db ./shiftsync.db --output ./shifts.csv

  # Export one store's schedule to Excel
  shiftsync export --store 79 --output ./store79.xlsx

  # Export a single day
  shiftsync export --date 2026-08-31 --output ./day.csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		store, err := storage.OpenSQLite(exportDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		filter := storage.ShiftFilter{StoreNumber: exportStore}
		if strings.TrimSpace(exportDate) != "" {
			day, err := timeutil.ParseDay(strings.TrimSpace(exportDate))
			if err != nil {
				return fmt.Errorf("invalid --date value %q (expected YYYY-MM-DD)", exportDate)
			}
			filter.Day = day
		}

		shifts, err := store.ListShifts(filter)
		if err != nil {
			return err
		}

		writer, err := output.WriterForFormat(format)
		if err != nil {
			return err
		}
		if err := writer.Write(exportOutput, shifts); err != nil {
			return err
		}

		fmt.Printf("Export completed. Rows: %d, Format: %s, File: %s\n", len(shifts), format, exportOutput)
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "./shiftsync.db", "Path to local SQLite database")
	exportCmd.Flags().IntVar(&exportStore, "store", 0, "Limit export to one store number")
	exportCmd.Flags().StringVar(&exportDate, "date", "", "Limit export to one calendar date (YYYY-MM-DD)")

	_ = exportCmd.MarkFlagRequired("output")
}
