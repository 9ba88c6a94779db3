package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tradescan/internal/report"
	"tradescan/internal/scheduler"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rescan the universe on a schedule",
	Long: `Runs the scan repeatedly on a cron schedule and prints each report.

The schedule uses second-resolution cron syntax, plus the @every shorthand.

Example:
  tradescan watch --tickers watchlist.txt
  tradescan watch --tickers watchlist.txt --cron "@every 15m"
  tradescan watch --tickers watchlist.txt --cron "0 0 14-20 * * 1-5"`,
	RunE: runWatch,
}

var watchCron string

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchCron, "cron", "@every 30m", "scan schedule")
}

func runWatch(cmd *cobra.Command, args []string) error {
	s, err := buildStack()
	if err != nil {
		return err
	}

	symbols, err := resolveUniverse()
	if err != nil {
		return err
	}

	sched := scheduler.New(s.logger)
	job := scheduler.FuncJob{
		JobName: "scan",
		Cron:    watchCron,
		Fn: func(ctx context.Context) error {
			outcome := s.runner.Run(ctx, symbols)
			return report.WriteText(os.Stdout, outcome, s.strategy.Ranking.TopN)
		},
	}
	if err := sched.AddJob(job); err != nil {
		return err
	}

	sched.Start()
	if err := sched.RunNow("scan"); err != nil {
		return err
	}

	fmt.Printf("Watching %d symbols on schedule %q\n", len(symbols), watchCron)
	fmt.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	sched.Stop()
	return nil
}
