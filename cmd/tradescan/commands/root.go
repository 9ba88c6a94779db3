package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	strategyFile string
	tickersFile  string
	symbolsArg   string
	workers      int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tradescan",
	Short: "Rank ticker symbols by short-term tradeability",
	Long: `tradescan scores a universe of ticker symbols across eleven
dimensions (momentum, volume, technicals, volatility, relative strength,
sentiment, liquidity, fundamentals, short interest, growth, options flow)
and ranks them by a weighted composite.

Usage:
  tradescan scan --tickers watchlist.txt
  tradescan scan --symbols AAPL,NVDA,TSLA --format csv --out results.csv
  tradescan serve --tickers watchlist.txt
  tradescan watch --tickers watchlist.txt --cron "@every 30m"`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&strategyFile, "strategy", "", "strategy YAML (default is the built-in preset)")
	rootCmd.PersistentFlags().StringVar(&tickersFile, "tickers", "", "ticker list file, one symbol per line")
	rootCmd.PersistentFlags().StringVar(&symbolsArg, "symbols", "", "comma-separated symbols (alternative to --tickers)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 4, "parallel fetch workers")
}
