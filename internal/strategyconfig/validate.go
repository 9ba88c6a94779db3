package strategyconfig

import (
	"fmt"
	"math"
)

// WeightEpsilon is the tolerance for the weight-sum check.
const WeightEpsilon = 1e-6

// ValidationError is an invalid-configuration failure. Fatal pre-flight: the
// run refuses to start before any fetching.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
}

// Validate checks every constraint the engine relies on. Validation happens
// once at load time, never per symbol.
func Validate(cfg *Config) error {
	if cfg.Meta.StrategyID == "" {
		return ValidationError{"meta.strategy_id", "required"}
	}
	if cfg.Benchmark.Symbol == "" {
		return ValidationError{"benchmark.symbol", "required"}
	}

	// === Windows ===
	w := cfg.Windows
	for field, v := range map[string]int{
		"windows.short":            w.Short,
		"windows.medium":           w.Medium,
		"windows.long":             w.Long,
		"windows.history_lookback": w.HistoryLookback,
		"windows.min_history":      w.MinHistory,
		"windows.rsi_period":       w.RSIPeriod,
		"windows.breakout_period":  w.BreakoutPeriod,
		"windows.volatility":       w.Volatility,
		"windows.volume":           w.Volume,
	} {
		if v <= 0 {
			return ValidationError{field, "must be > 0"}
		}
	}
	if !(w.Short < w.Medium && w.Medium < w.Long) {
		return ValidationError{"windows", "must satisfy short < medium < long"}
	}
	if w.HistoryLookback < w.MinHistory {
		return ValidationError{"windows.history_lookback", "must be >= min_history"}
	}

	// === Signals ===
	s := cfg.Signals
	if s.RSIOversold <= 0 || s.RSIOverbought >= 100 || s.RSIOversold >= s.RSIOverbought {
		return ValidationError{"signals", "RSI thresholds must satisfy 0 < oversold < overbought < 100"}
	}
	if s.VolumeSpikeMultiplier <= 1.0 {
		return ValidationError{"signals.volume_spike_multiplier", "must be > 1.0"}
	}
	if s.BreakoutThresholdPct < 0 || s.BreakoutThresholdPct > 0.5 {
		return ValidationError{"signals.breakout_threshold_pct", "must be in [0, 0.5]"}
	}
	b := s.VolBand
	if !(b.Low > 0 && b.Low < b.Peak && b.Peak < b.High) {
		return ValidationError{"signals.vol_band", "must satisfy 0 < low < peak < high"}
	}

	// === Weights ===
	wts := cfg.Weights.ByDimension()
	for dim, v := range wts {
		if v < 0 {
			return ValidationError{fmt.Sprintf("weights.%s", dim), "must be >= 0"}
		}
	}
	if sum := cfg.Weights.Sum(); math.Abs(sum-1.0) > WeightEpsilon {
		return ValidationError{"weights", fmt.Sprintf("must sum to 1.0, got %.6f", sum)}
	}

	// === Filters ===
	f := cfg.Filters
	if f.MinPrice <= 0 {
		return ValidationError{"filters.min_price", "must be > 0"}
	}
	if f.MaxPrice <= f.MinPrice {
		return ValidationError{"filters.max_price", "must be > min_price"}
	}
	if f.MinAvgVolume < 0 {
		return ValidationError{"filters.min_avg_volume", "must be >= 0"}
	}

	// === Ranking ===
	if cfg.Ranking.TopN <= 0 {
		return ValidationError{"ranking.top_n", "must be > 0"}
	}

	return nil
}
