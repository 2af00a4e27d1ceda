package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage shiftsync configuration file values.",
	Long: `Create and display the shiftsync configuration file.

The configuration stores import behavior and extra header synonyms:
- import.max_rows
- import.default_published
- aliases[].field / aliases[].headers`,
	Example: `
  # Create default config in $HOME/.shiftsync.yaml
  shiftsync config create

  # Show active config and source file
  shiftsync config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
