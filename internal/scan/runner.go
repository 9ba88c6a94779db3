// Package scan drives one full run: fan the universe out to fetch workers
// sharing the rate budget, score the snapshots on a single goroutine, and
// fold the results into a leaderboard.
package scan

import (
	"context"
	"errors"
	"sync"
	"time"

	"tradescan/internal/contracts"
	"tradescan/internal/scoring"
	"tradescan/internal/selection"
	"tradescan/internal/strategyconfig"
	"tradescan/pkg/logger"
)

// EventType tags a progress event.
type EventType string

const (
	EventRunStarted   EventType = "run_started"
	EventSymbolScored EventType = "symbol_scored"
	EventRunFinished  EventType = "run_finished"
)

// Event is one progress update, published as symbols finish scoring.
type Event struct {
	Type      EventType                 `json:"type"`
	Symbol    string                    `json:"symbol,omitempty"`
	Completed int                       `json:"completed"`
	Total     int                       `json:"total"`
	Passed    bool                      `json:"passed,omitempty"`
	Score     float64                   `json:"score,omitempty"`
	Reason    contracts.RejectionReason `json:"reason,omitempty"`
}

// Summary is the run accounting attached to every outcome.
type Summary struct {
	StrategyID   string        `json:"strategy_id"`
	StrategyHash string        `json:"strategy_hash"`
	Started      time.Time     `json:"started"`
	Elapsed      time.Duration `json:"elapsed"`
	Total        int           `json:"total"`
	Attempted    int           `json:"attempted"`
	Admitted     int           `json:"admitted"`
	Rejected     int           `json:"rejected"`
}

// Outcome is everything one run produced. A run cut short by its deadline
// still returns a valid outcome over the symbols it reached.
type Outcome struct {
	Board   selection.Leaderboard `json:"board"`
	Summary Summary               `json:"summary"`
}

// Runner executes scans. Construct once, run many times.
type Runner struct {
	collector *scoring.Collector
	engine    *scoring.Engine
	cfg       *strategyconfig.Config
	logger    *logger.Logger
	workers   int
	observer  func(Event)
}

// NewRunner creates a Runner with the given fetch parallelism. The limiter
// inside the shared HTTP client keeps total request rate flat no matter how
// many workers run.
func NewRunner(collector *scoring.Collector, engine *scoring.Engine, cfg *strategyconfig.Config, log *logger.Logger, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		collector: collector,
		engine:    engine,
		cfg:       cfg,
		logger:    log,
		workers:   workers,
	}
}

// Observe registers a progress observer. One observer; the API hub fans out
// to its own subscribers.
func (r *Runner) Observe(fn func(Event)) {
	r.observer = fn
}

func (r *Runner) emit(ev Event) {
	if r.observer != nil {
		r.observer(ev)
	}
}

// Run scans the universe. Fetching is parallel under the shared budget;
// scoring is sequential so results never depend on goroutine interleaving.
// When ctx expires mid-run, symbols not yet attempted are dropped and the
// outcome covers the rest.
func (r *Runner) Run(ctx context.Context, symbols []string) Outcome {
	started := time.Now()
	hash, _ := strategyconfig.Hash(r.cfg)

	r.logger.WithFields(map[string]interface{}{
		"symbols":  len(symbols),
		"workers":  r.workers,
		"strategy": r.cfg.Meta.StrategyID,
	}).Info("scan started")
	r.emit(Event{Type: EventRunStarted, Total: len(symbols)})

	bench, err := r.collector.CollectBenchmark(ctx)
	if err != nil {
		r.logger.WithError(err).Warn("continuing without benchmark")
	}

	snaps := r.collect(ctx, symbols)

	var results []contracts.CompositeResult
	for snap := range snaps {
		result := r.engine.Score(snap, bench)
		results = append(results, result)
		r.emit(Event{
			Type:      EventSymbolScored,
			Symbol:    result.Symbol,
			Completed: len(results),
			Total:     len(symbols),
			Passed:    result.Passed,
			Score:     result.WeightedTotal,
			Reason:    result.Reason,
		})
	}

	board := selection.Build(results)
	summary := Summary{
		StrategyID:   r.cfg.Meta.StrategyID,
		StrategyHash: hash,
		Started:      started,
		Elapsed:      time.Since(started),
		Total:        len(symbols),
		Attempted:    len(results),
		Admitted:     len(board.Ranked),
		Rejected:     len(board.Rejected),
	}

	r.logger.WithFields(map[string]interface{}{
		"attempted": summary.Attempted,
		"admitted":  summary.Admitted,
		"rejected":  summary.Rejected,
		"elapsed":   summary.Elapsed,
	}).Info("scan finished")
	r.emit(Event{Type: EventRunFinished, Completed: summary.Attempted, Total: summary.Total})

	return Outcome{Board: board, Summary: summary}
}

// collect fans symbols out to fetch workers and returns the snapshot stream.
// The channel closes once every worker has drained or the context ended.
func (r *Runner) collect(ctx context.Context, symbols []string) <-chan scoring.Snapshot {
	jobs := make(chan string)
	snaps := make(chan scoring.Snapshot)

	go func() {
		defer close(jobs)
		for _, symbol := range symbols {
			select {
			case jobs <- symbol:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for symbol := range jobs {
				snap := r.collector.Collect(ctx, symbol)
				if aborted(snap.QuoteErr) || aborted(snap.HistoryErr) {
					continue
				}
				snaps <- snap
			}
		}()
	}

	go func() {
		wg.Wait()
		close(snaps)
	}()

	return snaps
}

// aborted reports whether a fetch died because the run itself ended; such
// symbols are dropped rather than reported as provider failures.
func aborted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
