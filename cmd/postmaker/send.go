package main

import (
	"context"

	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send <alias>",
	Short: "Send a saved request by alias",
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
		// Flags set on the command line override the saved descriptor.
		if cmd.Flags().Changed("method") {
			d.Method, _ = cmd.Flags().GetString("method")
		}
		if cmd.Flags().Changed("url") {
			d.URL, _ = cmd.Flags().GetString("url")
		}
		if cmd.Flags().Changed("auth") {
			d.Auth, _ = cmd.Flags().GetString("auth")
		}
		if cmd.Flags().Changed("headers") {
			headersArg, _ := cmd.Flags().GetString("headers")
			d.Headers = map[string]string{}
			if err := parseJSONArg(headersArg, &d.Headers); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("data") {
			dataArg, _ := cmd.Flags().GetString("data")
			var body interface{}
			if err := parseJSONArg(dataArg, &body); err != nil {
				return err
			}
			d.Body = body
		}

		opts := optionsFromFlags(cmd.Flags(), a.debug)
		exec, closeStore, err := a.executor()
		if err != nil {
			return err
		}
		defer closeStore()
		return exec.Execute(context.Background(), d, opts)
	},
}

func init() {
	sendCmd.Flags().StringP("collection", "c", "", "look the alias up inside this collection")
	addDescriptorFlags(sendCmd.Flags())
	addDispatchFlags(sendCmd.Flags())
}
