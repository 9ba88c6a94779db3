package scoring

import (
	"tradescan/internal/contracts"
	"tradescan/internal/indicators"
)

// scoreTechnical rates chart structure: RSI zone, the moving-average stack,
// and a fresh breakout above prior resistance. Points accumulate from the
// neutral midpoint; an overbought RSI takes points back.
func (e *Engine) scoreTechnical(closes []float64) contracts.SubScore {
	w := e.cfg.Windows
	s := e.cfg.Signals

	rsi := indicators.RSI(closes, w.RSIPeriod)
	smaShort := indicators.SMA(closes, w.Short)
	smaMedium := indicators.SMA(closes, w.Medium)
	smaLong := indicators.SMA(closes, w.Long)
	breakout := indicators.Breakout(closes, w.BreakoutPeriod, s.BreakoutThresholdPct)
	price := closes[len(closes)-1]

	value := 5.0
	switch {
	case rsi >= s.RSIOverbought:
		value -= 1.5
	case rsi <= s.RSIOversold:
		value -= 0.5
	default:
		value += 1.5
	}

	if smaShort > 0 && price > smaShort {
		value += 0.5
	}
	if smaMedium > 0 && smaShort > smaMedium {
		value += 0.5
	}
	if smaLong > 0 && price > smaLong {
		value += 0.5
	}
	if breakout {
		value += 2
	}

	metrics := map[string]float64{
		"rsi":        rsi,
		"sma_short":  smaShort,
		"sma_medium": smaMedium,
		"sma_long":   smaLong,
	}
	if breakout {
		metrics["breakout"] = 1
	}

	return contracts.SubScore{
		Dimension: contracts.DimTechnical,
		Value:     clamp(value, 0, 10),
		Metrics:   metrics,
	}
}
