package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yousseftechdev/postmaker/internal/auth"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Acquire tokens from configured auth providers",
}

var authAcquireCmd = &cobra.Command{
	Use:   "acquire <provider>",
	Short: "Mint a token and store it as a variable",
	Long:  "Mints a token from a provider defined in config.yaml and stores it as a variable, so requests can reference it with --auth \"bearer {{name}}\".",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		p, ok := a.cfg.Provider(args[0])
		if !ok {
			return fmt.Errorf("auth provider %q is not configured", args[0])
		}
		token, err := auth.Acquire(context.Background(), p.Type, p.Spec)
		if err != nil {
			return err
		}
		varName := p.Var
		if varName == "" {
			varName = p.Name
		}
		if err := a.vars.Set(varName, token); err != nil {
			return err
		}
		fmt.Printf("Token from %q stored as variable %q.\n", p.Name, varName)
		return nil
	},
}

var authListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured auth providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if len(a.cfg.Auth) == 0 {
			fmt.Println("No auth providers configured.")
			return nil
		}
		for _, p := range a.cfg.Auth {
			varName := p.Var
			if varName == "" {
				varName = p.Name
			}
			fmt.Printf("%s (%s) -> {{%s}}\n", p.Name, p.Type, varName)
		}
		return nil
	},
}

func init() {
	authCmd.AddCommand(authAcquireCmd)
	authCmd.AddCommand(authListCmd)
}
