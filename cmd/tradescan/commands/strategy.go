package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradescan/internal/strategyconfig"
)

// strategyCmd groups strategy file helpers.
var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Strategy file helpers",
}

// strategyInitCmd writes the built-in preset as a starter file.
var strategyInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default strategy YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "strategy.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := strategyconfig.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

// strategyCheckCmd validates a strategy file and prints its hash.
var strategyCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Validate a strategy YAML and print its hash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := strategyconfig.Load(args[0])
		if err != nil {
			return err
		}
		hash, err := strategyconfig.Hash(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("%s valid (strategy %s, hash %s)\n", args[0], cfg.Meta.StrategyID, hash[:12])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(strategyCmd)
	strategyCmd.AddCommand(strategyInitCmd)
	strategyCmd.AddCommand(strategyCheckCmd)
}
