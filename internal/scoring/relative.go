package scoring

import (
	"tradescan/internal/contracts"
	"tradescan/internal/indicators"
)

// scoreRelativeStrength rates the symbol's medium-window return against the
// benchmark's. When the benchmark series is missing or too short the
// dimension degrades to neutral instead of pretending the market was flat.
func (e *Engine) scoreRelativeStrength(closes []float64, bench contracts.ReferenceSeries) contracts.SubScore {
	w := e.cfg.Windows.Medium
	if len(bench.Bars) < w+1 {
		return neutral(contracts.DimRelativeStrength)
	}

	benchCloses := make([]float64, len(bench.Bars))
	for i, b := range bench.Bars {
		benchCloses[i] = b.Close
	}

	rs := indicators.RelativeStrength(closes, benchCloses, w)
	value := 5 + 25*rs

	return contracts.SubScore{
		Dimension: contracts.DimRelativeStrength,
		Value:     clamp(value, 0, 10),
		Metrics:   map[string]float64{"excess_return": rs},
	}
}
