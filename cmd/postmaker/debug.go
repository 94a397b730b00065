package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var debugCmd = &cobra.Command{
	Use:       "debug [on|off|status]",
	Short:     "Toggle or show the persisted debug mode",
	Long:      "Debug mode unlocks mock dispatch, verbose output and history skipping. The flag persists across invocations.",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		action := "status"
		if len(args) > 0 {
			action = args[0]
		}
		switch action {
		case "on":
			if err := a.cfg.SetDebugMode(true); err != nil {
				return err
			}
			fmt.Println("Debug mode enabled.")
		case "off":
			if err := a.cfg.SetDebugMode(false); err != nil {
				return err
			}
			fmt.Println("Debug mode disabled.")
		case "status":
			if a.cfg.DebugMode() {
				fmt.Println("Debug mode is ON.")
			} else {
				fmt.Println("Debug mode is OFF.")
			}
		default:
			return fmt.Errorf("unknown debug action %q (use on, off or status)", action)
		}
		return nil
	},
}
