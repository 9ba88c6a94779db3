package scoring

import (
	"tradescan/internal/contracts"
	"tradescan/internal/indicators"
)

// scoreVolume rates activity: today's volume against the recent baseline
// plus the trend between the two most recent windows. A spike at or beyond
// the configured multiplier earns a bonus on top of the linear ramp.
func (e *Engine) scoreVolume(bars []contracts.Bar) contracts.SubScore {
	n := e.cfg.Windows.Volume
	ratio := indicators.VolumeRatio(bars, n)
	trend := indicators.VolumeTrend(bars, n)

	value := 5 + 2.5*(ratio-1) + 5*trend
	if ratio >= e.cfg.Signals.VolumeSpikeMultiplier {
		value += 1
	}

	return contracts.SubScore{
		Dimension: contracts.DimVolume,
		Value:     clamp(value, 0, 10),
		Metrics: map[string]float64{
			"volume_ratio": ratio,
			"volume_trend": trend,
		},
	}
}
