package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yousseftechdev/postmaker/internal/chain"
)

var chainCmd = &cobra.Command{
	Use:   "chain <file.yaml>",
	Short: "Run an ordered chain of requests from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		c, err := chain.Load(args[0])
		if err != nil {
			return err
		}
		exec, closeStore, err := a.executor()
		if err != nil {
			return err
		}
		defer closeStore()
		runner := &chain.Runner{
			Exec:      exec,
			Logger:    a.logger.WithComponent("chain"),
			Out:       os.Stdout,
			DebugMode: a.debug,
		}
		if failed := runner.Run(context.Background(), c); failed > 0 {
			return fmt.Errorf("%d chain step(s) failed", failed)
		}
		return nil
	},
}
