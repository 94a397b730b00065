package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save <alias>",
	Short: "Save a request under an alias, globally or inside a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		d, err := descriptorFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		collection, _ := cmd.Flags().GetString("collection")
		if err := a.catalog.SaveAlias(collection, args[0], d); err != nil {
			return err
		}
		if collection != "" {
			fmt.Printf("Saved %q in collection %q.\n", args[0], collection)
		} else {
			fmt.Printf("Saved global alias %q.\n", args[0])
		}
		return nil
	},
}

func init() {
	saveCmd.Flags().StringP("collection", "c", "", "store the alias inside this collection")
	addDescriptorFlags(saveCmd.Flags())
	_ = saveCmd.MarkFlagRequired("url")
}
