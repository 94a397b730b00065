package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yousseftechdev/postmaker/internal/mockapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a local test API with echo and status endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadApp(); err != nil {
			return err
		}
		addr, _ := cmd.Flags().GetString("addr")
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return mockapi.Serve(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8089", "listen address")
}
