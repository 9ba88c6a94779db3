package scoring

import (
	"math"
	"reflect"
	"testing"
	"time"

	"tradescan/internal/contracts"
	"tradescan/internal/strategyconfig"
	"tradescan/pkg/logger"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := strategyconfig.Default()
	return NewEngine(cfg, NewKeywordScorer(cfg.Sentiment), logger.NewNop())
}

// rampBars builds flat history with a geometric ramp over the last rampLen
// bars, ending rampPct above the base price. The final bar's volume is
// spikeRatio times the baseline.
func rampBars(total, rampLen int, base, rampPct, baseVolume, spikeRatio float64) []contracts.Bar {
	bars := make([]contracts.Bar, total)
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	rate := math.Pow(1+rampPct, 1/float64(rampLen))

	price := base
	for i := range bars {
		if i >= total-rampLen {
			price *= rate
		}
		vol := baseVolume
		if i == total-1 {
			vol = baseVolume * spikeRatio
		}
		bars[i] = contracts.Bar{
			Date:   day.AddDate(0, 0, i),
			Open:   price,
			High:   price * 1.01,
			Low:    price * 0.99,
			Close:  price,
			Volume: vol,
		}
	}
	return bars
}

func strongSnapshot() Snapshot {
	bars := rampBars(90, 20, 100, 0.20, 1_000_000, 3)
	last := bars[len(bars)-1].Close
	return Snapshot{
		Symbol:  "RUNR",
		Quote:   contracts.Quote{Price: last, DayChangePct: 1.2, Volume: 3_000_000},
		History: contracts.HistoryResult{Bars: bars, Requested: 250},
	}
}

func TestScoreStrongMover(t *testing.T) {
	engine := newEngine(t)
	result := engine.Score(strongSnapshot(), contracts.ReferenceSeries{})

	if !result.Passed {
		t.Fatalf("strong mover rejected: %s (%s)", result.Reason, result.Detail)
	}
	if got := result.Score(contracts.DimMomentum); got <= 7 {
		t.Errorf("momentum = %.2f, want > 7 for a 20%% advance", got)
	}
	if got := result.Score(contracts.DimVolume); got <= 7 {
		t.Errorf("volume = %.2f, want > 7 for a 3x spike", got)
	}

	// Nothing auxiliary was fetched: those dimensions sit at neutral and are
	// flagged degraded, never zero.
	for _, dim := range []contracts.Dimension{
		contracts.DimSentiment, contracts.DimOptions, contracts.DimFundamental,
		contracts.DimShortInterest, contracts.DimGrowth, contracts.DimRelativeStrength,
	} {
		sub := result.SubScores[dim]
		if sub.Value != contracts.NeutralScore || !sub.Degraded {
			t.Errorf("%s = %.2f degraded=%v, want neutral degraded", dim, sub.Value, sub.Degraded)
		}
	}

	// The composite is exactly the configured weighting of the sub-scores.
	var want float64
	weights := engine.cfg.Weights.ByDimension()
	for dim, sub := range result.SubScores {
		want += weights[dim] * sub.Value
	}
	if math.Abs(result.WeightedTotal-want) > 1e-9 {
		t.Errorf("weighted total = %.6f, want %.6f", result.WeightedTotal, want)
	}
	if result.WeightedTotal < 0 || result.WeightedTotal > 10 {
		t.Errorf("weighted total %.2f out of range", result.WeightedTotal)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	engine := newEngine(t)
	snap := strongSnapshot()

	a := engine.Score(snap, contracts.ReferenceSeries{})
	b := engine.Score(snap, contracts.ReferenceSeries{})
	if !reflect.DeepEqual(a, b) {
		t.Error("same snapshot scored twice must be identical")
	}
}

func TestScoreRejections(t *testing.T) {
	engine := newEngine(t)
	goodBars := rampBars(90, 20, 100, 0.05, 1_000_000, 1)

	tests := []struct {
		name   string
		snap   Snapshot
		reason contracts.RejectionReason
	}{
		{
			"unknown symbol",
			Snapshot{Symbol: "ZZZZ", QuoteErr: contracts.ErrNotFound},
			contracts.RejectNotFound,
		},
		{
			"transient quote failure",
			Snapshot{Symbol: "FLKY", QuoteErr: contracts.ErrTransient},
			contracts.RejectQuoteUnavailable,
		},
		{
			"history fetch failure",
			Snapshot{
				Symbol:     "HGONE",
				Quote:      contracts.Quote{Price: 25},
				HistoryErr: contracts.ErrTransient,
			},
			contracts.RejectHistoryUnavailable,
		},
		{
			"penny stock",
			Snapshot{Symbol: "PNNY", Quote: contracts.Quote{Price: 0.50}},
			contracts.RejectPriceOutOfRange,
		},
		{
			"history too short",
			Snapshot{
				Symbol:  "IPO",
				Quote:   contracts.Quote{Price: 25},
				History: contracts.HistoryResult{Bars: goodBars[:10], Requested: 250},
			},
			contracts.RejectInsufficientHistory,
		},
		{
			"volume below floor",
			Snapshot{
				Symbol:  "THIN",
				Quote:   contracts.Quote{Price: 25},
				History: contracts.HistoryResult{Bars: rampBars(90, 20, 25, 0.05, 500, 1), Requested: 250},
			},
			contracts.RejectVolumeBelowFloor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Score(tt.snap, contracts.ReferenceSeries{})
			if result.Passed {
				t.Fatal("expected rejection")
			}
			if result.Reason != tt.reason {
				t.Errorf("reason = %s, want %s", result.Reason, tt.reason)
			}
			if len(result.SubScores) != 0 {
				t.Error("rejected symbol must not carry sub-scores")
			}
			if result.Detail == "" {
				t.Error("rejection must carry a detail message")
			}
		})
	}
}

func TestScoreBoundsOnDegenerateInput(t *testing.T) {
	engine := newEngine(t)

	// Violent series: price collapsing 30% a day on erratic volume.
	bars := make([]contracts.Bar, 60)
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	price := 5000.0
	for i := range bars {
		price *= 0.70
		vol := 200_000.0
		if i%7 == 0 {
			vol = 90_000_000
		}
		bars[i] = contracts.Bar{Date: day.AddDate(0, 0, i), Open: price, High: price, Low: price, Close: price, Volume: vol}
	}

	snap := Snapshot{
		Symbol:  "CRSH",
		Quote:   contracts.Quote{Price: 25, DayChangePct: -30},
		History: contracts.HistoryResult{Bars: bars, Requested: 250},
		Aux: map[contracts.AuxKind]contracts.AuxResult{
			contracts.AuxShortInterest: {
				Kind:          contracts.AuxShortInterest,
				State:         contracts.AuxPresent,
				ShortInterest: &contracts.ShortInterest{ShortFloatPct: 85, DaysToCover: 12},
			},
			contracts.AuxGrowth: {
				Kind:   contracts.AuxGrowth,
				State:  contracts.AuxPresent,
				Growth: &contracts.GrowthMetrics{RevenueGrowth: -5, EPSGrowth: -9, CAGR5Y: -3},
			},
		},
	}

	result := engine.Score(snap, contracts.ReferenceSeries{})
	if !result.Passed {
		t.Fatalf("unexpected rejection: %s", result.Reason)
	}
	for dim, sub := range result.SubScores {
		if sub.Value < 0 || sub.Value > 10 {
			t.Errorf("%s = %.2f, out of [0, 10]", dim, sub.Value)
		}
	}
	if result.WeightedTotal < 0 || result.WeightedTotal > 10 {
		t.Errorf("weighted total %.2f out of [0, 10]", result.WeightedTotal)
	}
}

func TestScoreRelativeStrengthAgainstBenchmark(t *testing.T) {
	engine := newEngine(t)
	snap := strongSnapshot()

	// Flat benchmark: the symbol's 20% run is pure excess return.
	bench := contracts.ReferenceSeries{Symbol: "SPY", Bars: rampBars(90, 20, 400, 0, 10_000_000, 1)}
	result := engine.Score(snap, bench)

	sub := result.SubScores[contracts.DimRelativeStrength]
	if sub.Degraded {
		t.Fatal("benchmark present, dimension must not degrade")
	}
	if sub.Value <= contracts.NeutralScore {
		t.Errorf("relative strength = %.2f, want above neutral against a flat benchmark", sub.Value)
	}
}
