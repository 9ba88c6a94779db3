package scoring

import (
	"tradescan/internal/contracts"
	"tradescan/internal/indicators"
)

// scoreMomentum rates the price trend: short, medium, and long window
// returns plus acceleration. A symbol drifting sideways lands at 5; a sharp
// multi-window advance saturates at 10.
func (e *Engine) scoreMomentum(closes []float64) contracts.SubScore {
	w := e.cfg.Windows
	rShort := indicators.Return(closes, w.Short)
	rMedium := indicators.Return(closes, w.Medium)
	rLong := indicators.Return(closes, w.Long)
	accel := indicators.Acceleration(closes, w.Short, w.Long)

	value := 5 + 30*rShort + 15*rMedium + 5*rLong + 10*accel

	return contracts.SubScore{
		Dimension: contracts.DimMomentum,
		Value:     clamp(value, 0, 10),
		Metrics: map[string]float64{
			"return_short":  rShort,
			"return_medium": rMedium,
			"return_long":   rLong,
			"acceleration":  accel,
		},
	}
}
