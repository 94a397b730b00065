package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yousseftechdev/postmaker/internal/catalog"
)

var importCurlCmd = &cobra.Command{
	Use:   "importcurl <curl command...>",
	Short: "Import a curl command line as a saved alias",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		alias, _ := cmd.Flags().GetString("alias")
		if alias == "" {
			return fmt.Errorf("an --alias is required for import")
		}
		d, err := catalog.ParseCurl(strings.Join(args, " "))
		if err != nil {
			return err
		}
		collection, _ := cmd.Flags().GetString("collection")
		if err := a.catalog.SaveAlias(collection, alias, d); err != nil {
			return err
		}
		if collection != "" {
			fmt.Printf("Imported curl as %q in collection %q.\n", alias, collection)
		} else {
			fmt.Printf("Imported curl as global alias %q.\n", alias)
		}
		return nil
	},
}

var exportCurlCmd = &cobra.Command{
	Use:   "exportcurl <alias>",
	Short: "Print a saved request as a runnable curl command",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		collection, _ := cmd.Flags().GetString("collection")
		d, err := a.catalog.Lookup(collection, args[0])
		if err != nil {
			return err
		}
		fmt.Println(catalog.ExportCurl(d))
		return nil
	},
}

func init() {
	importCurlCmd.Flags().String("alias", "", "alias to store the imported request under")
	importCurlCmd.Flags().StringP("collection", "c", "", "store the alias inside this collection")
	exportCurlCmd.Flags().StringP("collection", "c", "", "look the alias up inside this collection")
}
