package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"shiftsync/storage"
)

var (
	storesDBPath   string
	storeAddName   string
	storeAddRegion string
)

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "Manage the store reference set",
	Long: `Manage the store reference set that imports validate against.

Imports never create stores implicitly: a row referencing an unknown
store number is skipped. Register stores here before importing.`,
	Example: `
  # Register a store
  shiftsync stores add 79 --name "Syracuse (Electronics Pkwy)" --region Northeast

  # List registered stores
  shiftsync stores list
`,
}

var storesAddCmd = &cobra.Command{
	Use:   "add <store-number>",
	Short: "Register a store in the reference set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		storeNumber, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil || storeNumber <= 0 {
			return fmt.Errorf("invalid store number %q", args[0])
		}

		store, err := storage.OpenSQLite(storesDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.AddStore(storeNumber, storeAddName, storeAddRegion); err != nil {
			return err
		}

		fmt.Printf("Store %d registered.\n", storeNumber)
		return nil
	},
}

var storesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered stores",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(storesDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		stores, err := store.ListStores()
		if err != nil {
			return err
		}

		if len(stores) == 0 {
			fmt.Println("No stores registered.")
			return nil
		}
		for _, info := range stores {
			fmt.Printf("%d\t%s\t%s\n", info.StoreNumber, info.Name, info.Region)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(storesCmd)
	storesCmd.AddCommand(storesAddCmd)
	storesCmd.AddCommand(storesListCmd)

	storesCmd.PersistentFlags().StringVar(&storesDBPath, "db", "./shiftsync.db", "Path to local SQLite database")
	storesAddCmd.Flags().StringVar(&storeAddName, "name", "", "Store display name")
	storesAddCmd.Flags().StringVar(&storeAddRegion, "region", "", "Store region")
}
