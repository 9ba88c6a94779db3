package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tradescan/internal/report"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run one scan and print the ranked report",
	Long: `Scores every symbol in the universe and prints the leaderboard.

Example:
  tradescan scan --tickers watchlist.txt
  tradescan scan --symbols AAPL,NVDA --format csv --out results.csv
  tradescan scan --tickers watchlist.txt --timeout 10m`,
	RunE: runScan,
}

var (
	scanFormat  string
	scanOut     string
	scanTimeout time.Duration
	scanTopN    int
)

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanFormat, "format", "text", "output format (text|csv)")
	scanCmd.Flags().StringVar(&scanOut, "out", "", "write output to file instead of stdout")
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 0, "abort the run after this long, keeping partial results")
	scanCmd.Flags().IntVar(&scanTopN, "top", 0, "override the strategy's top-N report cut")
}

func runScan(cmd *cobra.Command, args []string) error {
	s, err := buildStack()
	if err != nil {
		return err
	}

	symbols, err := resolveUniverse()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if scanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, scanTimeout)
		defer cancel()
	}

	outcome := s.runner.Run(ctx, symbols)

	out := os.Stdout
	if scanOut != "" {
		f, err := os.Create(scanOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	topN := s.strategy.Ranking.TopN
	if scanTopN > 0 {
		topN = scanTopN
	}

	switch scanFormat {
	case "csv":
		return report.WriteCSV(out, outcome)
	case "text":
		return report.WriteText(out, outcome, topN)
	default:
		return fmt.Errorf("unknown format %q (want text or csv)", scanFormat)
	}
}
