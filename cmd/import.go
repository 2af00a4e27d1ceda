package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"shiftsync/config"
	"shiftsync/ingest"
	"shiftsync/reconcile"
	"shiftsync/storage"
)

var (
	importInputs   []string
	importFormat   string
	importSheet    string
	importDBPath   string
	importIDPrefix string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import tabular schedule exports into the local SQLite store",
	Long: `Read schedule export files, normalize each row, and upsert records by
their natural key (store, date, employee, shift time).

Rows missing required fields, carrying unparseable dates or store numbers,
or referencing stores outside the reference set are skipped; unexpected
row failures are recorded without aborting the batch. Each file runs in
its own transaction.

When --format is omitted, format is inferred from each input file extension.`,
	Example: `
  # Import two weekly Excel exports
  shiftsync import -i schedule-week32.xlsx -i schedule-week33.xlsx --db ./shiftsync.db

  # Import a CSV export from a specific scheduling vendor
  shiftsync import -i vendor_export.csv --format csv

  # Import a named sheet from a workbook
  shiftsync import -i regional-rollup.xlsx --sheet "Week 32"

  # Import with custom config file
  shiftsync --configFile ./custom-shiftsync.yaml import -i ./schedule.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		aliases, err := cfg.AliasSet()
		if err != nil {
			return err
		}

		store, err := storage.OpenSQLite(importDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		for _, path := range importInputs {
			table, err := readTable(path, importFormat, importSheet)
			if err != nil {
				return err
			}

			importID := resolveImportID(importIDPrefix, path)
			outcome, err := reconcile.Run(store, table, importID, reconcile.Options{
				MaxRows:          cfg.Import.MaxRows,
				Aliases:          aliases,
				DefaultPublished: cfg.Import.DefaultPublished,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Import %s completed. Sheet: %s, Inserted: %d, Updated: %d, Skipped: %d, Errors: %d, Duration: %s\n",
				outcome.ImportID,
				outcome.Sheet,
				outcome.Inserted,
				outcome.Updated,
				outcome.Skipped,
				len(outcome.Errors),
				outcome.Duration.Round(time.Millisecond),
			)
			for _, message := range outcome.Errors {
				fmt.Printf("  %s\n", message)
			}
		}

		return nil
	},
}

func readTable(path, format, sheet string) (ingest.Table, error) {
	resolved, err := ingest.InferFormat(path, format)
	if err != nil {
		return ingest.Table{}, err
	}
	reader, err := ingest.ReaderForFormat(resolved)
	if err != nil {
		return ingest.Table{}, err
	}
	if excel, ok := reader.(*ingest.ExcelReader); ok {
		excel.Sheet = strings.TrimSpace(sheet)
	}
	return reader.Read(path)
}

func resolveImportID(prefix, path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if strings.TrimSpace(prefix) == "" {
		return base
	}
	return strings.TrimSpace(prefix) + "-" + base
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringArrayVarP(&importInputs, "input", "i", nil, "Input file path (repeatable)")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format: csv|excel (optional, inferred from extension when omitted)")
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "Excel sheet name (defaults to the first sheet)")
	importCmd.Flags().StringVar(&importDBPath, "db", "./shiftsync.db", "Path to local SQLite database")
	importCmd.Flags().StringVar(&importIDPrefix, "import-id", "", "Import label prefix (defaults to the file name)")

	_ = importCmd.MarkFlagRequired("input")
}
