package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Manage request collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCollections()
	},
}

var collectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all collections and their aliases",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCollections()
	},
}

var collectionsDeleteCmd = &cobra.Command{
	Use:   "delete <collection>",
	Short: "Delete a collection and everything in it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if !confirm(fmt.Sprintf("Delete collection %q and all its requests? (y/N): ", args[0])) {
			fmt.Println("Cancelled.")
			return nil
		}
		if err := a.catalog.DeleteCollection(args[0]); err != nil {
			return err
		}
		fmt.Printf("Collection %q deleted.\n", args[0])
		return nil
	},
}

var collectionsRemoveCmd = &cobra.Command{
	Use:   "remove <collection> <alias>",
	Short: "Remove one alias from a collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if !confirm(fmt.Sprintf("Delete alias %q from collection %q? (y/N): ", args[1], args[0])) {
			fmt.Println("Cancelled.")
			return nil
		}
		if err := a.catalog.DeleteCollectionItem(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Alias %q deleted from collection %q.\n", args[1], args[0])
		return nil
	},
}

func listCollections() error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	cols, err := a.catalog.Collections()
	if err != nil {
		return err
	}
	if len(cols) == 0 {
		fmt.Println("No collections saved.")
		return nil
	}
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s:\n", name)
		aliases := make([]string, 0, len(cols[name]))
		for alias := range cols[name] {
			aliases = append(aliases, alias)
		}
		sort.Strings(aliases)
		for _, alias := range aliases {
			d := cols[name][alias]
			fmt.Printf("  %s: %s %s\n", alias, d.Normalized().Method, d.URL)
		}
	}
	return nil
}

func init() {
	collectionsCmd.AddCommand(collectionsListCmd)
	collectionsCmd.AddCommand(collectionsDeleteCmd)
	collectionsCmd.AddCommand(collectionsRemoveCmd)
}
