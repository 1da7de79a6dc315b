/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ssargent/teardowntree/internal/benchconfig"

	"github.com/spf13/cobra"
)

type ctxKey string

const configCtxKey ctxKey = "config"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "teardown-bench",
	Short: "Drives build/tear-down/refill cycles against a teardown tree",
	Long: `teardown-bench builds an in-memory teardown tree, repeatedly
bulk-deletes ranges (or overlapping intervals) from it, refills it from a
master snapshot, and reports how the shape held up.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		var cfg *benchconfig.Config
		if configPath != "" {
			loaded, err := benchconfig.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		} else {
			cfg = benchconfig.DefaultConfig()
		}
		cmd.SetContext(context.WithValue(cmd.Context(), configCtxKey, cfg))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a teardown-bench config file (defaults built in if omitted)")
}

func configFromContext(cmd *cobra.Command) *benchconfig.Config {
	cfg, _ := cmd.Context().Value(configCtxKey).(*benchconfig.Config)
	if cfg == nil {
		cfg = benchconfig.DefaultConfig()
	}
	return cfg
}
