package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <target> <file>",
	Short: "Export saved data to a JSON file",
	Long:  "Exports one data set, or everything at once. Targets: all, collections, aliases, variables, templates.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if err := a.catalog.Export(args[0], args[1], a.vars); err != nil {
			return err
		}
		fmt.Printf("Exported %s to %s\n", args[0], args[1])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a data bundle produced by export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if err := a.catalog.Import(args[0], a.vars); err != nil {
			return err
		}
		fmt.Printf("Imported data from %s\n", args[0])
		return nil
	},
}
