package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tradescan/internal/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Scan once, then serve results over HTTP",
	Long: `Runs a scan in the background and serves the results.

Endpoints:
  GET  /health                   - Health check
  GET  /api/v1/results           - Full leaderboard of the latest run
  GET  /api/v1/results/{symbol}  - One symbol's composite result
  GET  /api/v1/status            - Scanner state
  GET  /ws                       - Live progress feed (websocket)

Example:
  tradescan serve --tickers watchlist.txt
  tradescan serve --tickers watchlist.txt --port 8090`,
	RunE: runServe,
}

var servePort string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&servePort, "port", "", "HTTP port (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := buildStack()
	if err != nil {
		return err
	}
	if servePort != "" {
		s.cfg.Port = servePort
	}

	symbols, err := resolveUniverse()
	if err != nil {
		return err
	}

	store := api.NewStore()
	hub := api.NewHub(s.logger)
	s.runner.Observe(hub.Broadcast)

	router := api.NewRouter(api.NewResultsHandler(store, hub, s.logger), hub, s.logger)
	server := api.New(s.cfg, s.logger, router)

	go func() {
		store.SetRunning()
		store.SetOutcome(s.runner.Run(context.Background(), symbols))
	}()

	go func() {
		if err := server.Start(); err != nil {
			s.logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	fmt.Printf("Server running on http://localhost:%s\n", s.cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
