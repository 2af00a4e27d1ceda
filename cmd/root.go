package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shiftsync/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shiftsync",
	Short: "Ingest heterogeneous shift-schedule exports into a canonical record store.",
	Long: `shiftsync reconciles tabular shift-schedule exports with varying column
names, date encodings, and store-identifier formats into a single
deduplicated SQLite store.

Each import resolves headers against per-field synonym lists, normalizes
dates (including legacy spreadsheet serial day counts), parses store
identifiers, and upserts records by their natural key
(store, date, employee, shift time).

Supported input formats:
- Excel: .xlsx, .xlsm, .xls
- CSV: .csv
`,
	Example: `
  # Create configuration file
  shiftsync config create

  # Register stores in the reference set
  shiftsync stores add 79 --name "Syracuse (Electronics Pkwy)"

  # Import schedule exports
  shiftsync import -i schedule-week32.xlsx -i schedule-week33.xlsx

  # Run the local import API
  shiftsync serve --port 8080

  # Export reconciled shifts
  shiftsync export --output ./shifts.csv
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.shiftsync.yaml, then ./.shiftsync.yaml)")

	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if !requiresConfig(cmd) {
			return nil
		}

		_, err := config.LoadAndValidate()
		return err
	}
}

func requiresConfig(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	switch cmd.Name() {
	case "import", "serve":
		return true
	default:
		return false
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".shiftsync")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found. Create one first with: shiftsync config create")
	}
}
