package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "Manage saved variables used for {{placeholder}} substitution",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listVars()
	},
}

var varsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved variables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listVars()
	},
}

var varsSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Set a variable",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if err := a.vars.Set(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Variable %q set.\n", args[0])
		return nil
	},
}

var varsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a variable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if !confirm(fmt.Sprintf("Remove variable %q? (y/N): ", args[0])) {
			fmt.Println("Cancelled.")
			return nil
		}
		if err := a.vars.Remove(args[0]); err != nil {
			return err
		}
		fmt.Printf("Variable %q removed.\n", args[0])
		return nil
	},
}

var varsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all variables",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if !confirm("Are you sure you want to clear all variables? (y/N): ") {
			fmt.Println("Cancelled.")
			return nil
		}
		if err := a.vars.Clear(); err != nil {
			return err
		}
		fmt.Println("All variables cleared.")
		return nil
	},
}

func listVars() error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	m, err := a.vars.Load()
	if err != nil {
		return err
	}
	if len(m) == 0 {
		fmt.Println("No variables saved.")
		return nil
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s = %s\n", name, m[name])
	}
	return nil
}

func init() {
	varsCmd.AddCommand(varsListCmd)
	varsCmd.AddCommand(varsSetCmd)
	varsCmd.AddCommand(varsRemoveCmd)
	varsCmd.AddCommand(varsClearCmd)
}
