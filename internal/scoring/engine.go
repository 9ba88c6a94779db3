package scoring

import (
	"errors"
	"fmt"

	"tradescan/internal/contracts"
	"tradescan/internal/indicators"
	"tradescan/internal/strategyconfig"
	"tradescan/pkg/logger"
)

// Engine scores snapshots. It holds no per-symbol state and does no I/O;
// every rejection check here mirrors the short-circuits in Collector.
type Engine struct {
	cfg       *strategyconfig.Config
	sentiment SentimentScorer
	logger    *logger.Logger
}

// NewEngine creates an Engine. The sentiment scorer is injected so the
// keyword baseline can be swapped without touching the engine.
func NewEngine(cfg *strategyconfig.Config, sentiment SentimentScorer, log *logger.Logger) *Engine {
	return &Engine{cfg: cfg, sentiment: sentiment, logger: log}
}

// Score evaluates one snapshot against the benchmark. Admission gates run
// first; a rejected symbol carries its reason and never reaches the
// dimension calculators.
func (e *Engine) Score(snap Snapshot, bench contracts.ReferenceSeries) contracts.CompositeResult {
	result := contracts.CompositeResult{
		Symbol:     snap.Symbol,
		Instrument: snap.Instrument,
	}

	if snap.QuoteErr != nil {
		if errors.Is(snap.QuoteErr, contracts.ErrNotFound) {
			return rejected(result, contracts.RejectNotFound, "symbol unknown to provider")
		}
		return rejected(result, contracts.RejectQuoteUnavailable, snap.QuoteErr.Error())
	}

	result.Price = snap.Quote.Price
	result.DayChangePct = snap.Quote.DayChangePct

	f := e.cfg.Filters
	if snap.Quote.Price < f.MinPrice || snap.Quote.Price > f.MaxPrice {
		return rejected(result, contracts.RejectPriceOutOfRange,
			fmt.Sprintf("price %.2f outside [%.2f, %.2f]", snap.Quote.Price, f.MinPrice, f.MaxPrice))
	}

	if snap.HistoryErr != nil {
		return rejected(result, contracts.RejectHistoryUnavailable,
			fmt.Sprintf("history fetch failed: %v", snap.HistoryErr))
	}
	if snap.History.Insufficient(e.cfg.Windows.MinHistory) {
		return rejected(result, contracts.RejectInsufficientHistory,
			fmt.Sprintf("have %d bars, need %d", len(snap.History.Bars), e.cfg.Windows.MinHistory))
	}

	avgVolume := indicators.AvgVolume(snap.History.Bars, e.cfg.Windows.Volume)
	if avgVolume < f.MinAvgVolume {
		return rejected(result, contracts.RejectVolumeBelowFloor,
			fmt.Sprintf("avg volume %.0f below floor %.0f", avgVolume, f.MinAvgVolume))
	}

	closes := snap.History.Closes()
	subs := []contracts.SubScore{
		e.scoreMomentum(closes),
		e.scoreVolume(snap.History.Bars),
		e.scoreTechnical(closes),
		e.scoreVolatility(closes),
		e.scoreRelativeStrength(closes, bench),
		e.scoreSentiment(snap.aux(contracts.AuxNews)),
		e.scoreLiquidity(snap.History.Bars, snap.Quote),
		e.scoreFundamental(snap.aux(contracts.AuxFundamentals)),
		e.scoreShortInterest(snap.aux(contracts.AuxShortInterest)),
		e.scoreGrowth(snap.aux(contracts.AuxGrowth)),
		e.scoreOptions(snap.aux(contracts.AuxOptions)),
	}

	result.SubScores = make(map[contracts.Dimension]contracts.SubScore, len(subs))
	result.RawMetrics = make(map[string]float64)
	weights := e.cfg.Weights.ByDimension()
	for _, sub := range subs {
		result.SubScores[sub.Dimension] = sub
		result.WeightedTotal += weights[sub.Dimension] * sub.Value
		for k, v := range sub.Metrics {
			result.RawMetrics[string(sub.Dimension)+"."+k] = v
		}
	}

	result.Passed = true
	return result
}

// aux returns the tagged result for a kind, defaulting to Unavailable when
// the collector never reached the auxiliary stage.
func (s Snapshot) aux(kind contracts.AuxKind) contracts.AuxResult {
	if res, ok := s.Aux[kind]; ok {
		return res
	}
	return contracts.Unavailable(kind)
}

func rejected(r contracts.CompositeResult, reason contracts.RejectionReason, detail string) contracts.CompositeResult {
	r.Passed = false
	r.Reason = reason
	r.Detail = detail
	return r
}

// neutral builds the degraded sub-score for a dimension whose data never
// arrived.
func neutral(d contracts.Dimension) contracts.SubScore {
	return contracts.SubScore{Dimension: d, Value: contracts.NeutralScore, Degraded: true}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
