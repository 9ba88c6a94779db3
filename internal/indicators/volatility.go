package indicators

import (
	"math"

	"tradescan/internal/contracts"
)

// RealizedVol is the standard deviation of daily simple returns over the
// last window returns. Needs window+1 closes; returns 0 on short input.
// A flat series has zero volatility.
func RealizedVol(closes []float64, window int) float64 {
	if window <= 1 || len(closes) < window+1 {
		return 0
	}

	tail := closes[len(closes)-window-1:]
	returns := make([]float64, 0, window)
	for i := 1; i < len(tail); i++ {
		if tail[i-1] <= 0 {
			return 0
		}
		returns = append(returns, (tail[i]-tail[i-1])/tail[i-1])
	}

	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var variance float64
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns))

	return math.Sqrt(variance)
}

// ATR is Wilder's Average True Range over the trailing period, smoothed over
// the full series after the seed. Needs period+1 bars; returns 0 on short
// input.
func ATR(bars []contracts.Bar, period int) float64 {
	if period <= 0 || len(bars) < period+1 {
		return 0
	}

	trs := make([]float64, 0, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		hl := bars[i].High - bars[i].Low
		hc := math.Abs(bars[i].High - bars[i-1].Close)
		lc := math.Abs(bars[i].Low - bars[i-1].Close)
		trs = append(trs, math.Max(hl, math.Max(hc, lc)))
	}

	var atr float64
	for _, tr := range trs[:period] {
		atr += tr
	}
	atr /= float64(period)

	for _, tr := range trs[period:] {
		atr = (atr*float64(period-1) + tr) / float64(period)
	}
	return atr
}
