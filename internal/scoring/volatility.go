package scoring

import (
	"tradescan/internal/contracts"
	"tradescan/internal/indicators"
)

// scoreVolatility rates realized volatility against the configured band.
// The band is triangular: the score peaks where daily swings are wide
// enough to trade but climbs down on both sides, toward dead-flat symbols
// below Low and untradeable churn above High.
func (e *Engine) scoreVolatility(closes []float64) contracts.SubScore {
	vol := indicators.RealizedVol(closes, e.cfg.Windows.Volatility)
	b := e.cfg.Signals.VolBand

	var value float64
	switch {
	case vol <= 0:
		value = 1
	case vol < b.Low:
		value = 1 + 3*vol/b.Low
	case vol <= b.Peak:
		value = 4 + 6*(vol-b.Low)/(b.Peak-b.Low)
	case vol < b.High:
		value = 10 - 7*(vol-b.Peak)/(b.High-b.Peak)
	default:
		value = 2
	}

	return contracts.SubScore{
		Dimension: contracts.DimVolatility,
		Value:     clamp(value, 0, 10),
		Metrics:   map[string]float64{"realized_vol": vol},
	}
}
