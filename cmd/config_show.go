package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shiftsync/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  shiftsync config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		}
		fmt.Println("Configuration:")
		fmt.Printf("import.max_rows: %d\n", cfg.Import.MaxRows)
		fmt.Printf("import.default_published: %t\n", cfg.Import.DefaultPublished)
		fmt.Printf("aliases: %d\n", len(cfg.Aliases))
		for i, rule := range cfg.Aliases {
			fmt.Printf("aliases[%d].field: %s\n", i, rule.Field)
			fmt.Printf("aliases[%d].headers: %s\n", i, strings.Join(rule.Headers, ", "))
		}
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
