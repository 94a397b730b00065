package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "Manage global aliases",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listAliases()
	},
}

var aliasesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List global aliases",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listAliases()
	},
}

var aliasesRemoveCmd = &cobra.Command{
	Use:   "remove <alias>",
	Short: "Remove a global alias",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if !confirm(fmt.Sprintf("Remove global alias %q? (y/N): ", args[0])) {
			fmt.Println("Cancelled.")
			return nil
		}
		if err := a.catalog.RemoveAlias(args[0]); err != nil {
			return err
		}
		fmt.Printf("Global alias %q removed.\n", args[0])
		return nil
	},
}

func listAliases() error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	aliases, err := a.catalog.Aliases()
	if err != nil {
		return err
	}
	if len(aliases) == 0 {
		fmt.Println("No global aliases saved.")
		return nil
	}
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d := aliases[name]
		fmt.Printf("%s: %s %s\n", name, d.Normalized().Method, d.URL)
	}
	return nil
}

func init() {
	aliasesCmd.AddCommand(aliasesListCmd)
	aliasesCmd.AddCommand(aliasesRemoveCmd)
}
