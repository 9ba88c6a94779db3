package commands

import (
	"fmt"

	"tradescan/internal/marketdata"
	"tradescan/internal/scan"
	"tradescan/internal/scoring"
	"tradescan/internal/strategyconfig"
	"tradescan/internal/universe"
	"tradescan/pkg/config"
	"tradescan/pkg/httputil"
	"tradescan/pkg/logger"
	"tradescan/pkg/ratelimit"
)

// stack is everything a command needs wired together.
type stack struct {
	cfg      *config.Config
	strategy *strategyconfig.Config
	logger   *logger.Logger
	runner   *scan.Runner
}

// buildStack loads config and strategy, then wires limiter, HTTP client,
// providers, collector, engine, and runner. Strategy validation failures
// stop everything before a single request leaves the process.
func buildStack() (*stack, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	strategy := strategyconfig.Default()
	if strategyFile != "" {
		strategy, err = strategyconfig.Load(strategyFile)
		if err != nil {
			return nil, fmt.Errorf("load strategy: %w", err)
		}
	}

	limiter, err := ratelimit.New(cfg.RateLimitPerMin, ratelimit.SystemClock{})
	if err != nil {
		return nil, fmt.Errorf("build limiter: %w", err)
	}
	httpClient := httputil.New(limiter, log, cfg.HTTPTimeout)

	toggles := marketdata.Toggles{
		Options:      strategy.Features.Options && cfg.OptionsEnabled(),
		Fundamentals: strategy.Features.Fundamentals,
	}
	data := marketdata.New(cfg, httpClient, toggles, log)

	collector := scoring.NewCollector(data, strategy, log)
	engine := scoring.NewEngine(strategy, scoring.NewKeywordScorer(strategy.Sentiment), log)
	runner := scan.NewRunner(collector, engine, strategy, log, workers)

	return &stack{cfg: cfg, strategy: strategy, logger: log, runner: runner}, nil
}

// resolveUniverse turns the --tickers / --symbols flags into a symbol list.
func resolveUniverse() ([]string, error) {
	switch {
	case tickersFile != "" && symbolsArg != "":
		return nil, fmt.Errorf("--tickers and --symbols are mutually exclusive")
	case tickersFile != "":
		return universe.LoadFile(tickersFile)
	case symbolsArg != "":
		symbols := universe.Parse(symbolsArg)
		if len(symbols) == 0 {
			return nil, fmt.Errorf("--symbols contained no symbols")
		}
		return symbols, nil
	default:
		return nil, fmt.Errorf("provide --tickers or --symbols")
	}
}
