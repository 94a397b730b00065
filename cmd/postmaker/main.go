package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yousseftechdev/postmaker/internal/common"
)

var rootCmd = &cobra.Command{
	Use:           "postmaker",
	Short:         "Interactive command-line REST client",
	Long:          "PostMaker builds, previews, sends and records HTTP requests, with saved aliases, collections, templates, variables and request chains.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	v := viper.GetViper()
	v.SetDefault("config", "")
	v.SetEnvPrefix("POSTMAKER")
	v.AutomaticEnv()

	rootCmd.PersistentFlags().String("config", v.GetString("config"), "path to a config yaml (defaults to <data dir>/config.yaml)")
	_ = v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.AddCommand(requestCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(collectionsCmd)
	rootCmd.AddCommand(aliasesCmd)
	rootCmd.AddCommand(varsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCurlCmd)
	rootCmd.AddCommand(exportCurlCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func loadApp() (*app, error) {
	return initApp(viper.GetString("config"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		common.GetLogger().Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
