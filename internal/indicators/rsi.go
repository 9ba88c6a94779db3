package indicators

// RSI computes Wilder's Relative Strength Index over the trailing period.
// Needs period+1 closes; with fewer it returns exactly 50, the no-signal
// midpoint. Output is clamped to [0, 100].
func RSI(closes []float64, period int) float64 {
	if period <= 0 || len(closes) < period+1 {
		return 50
	}

	// Seed averages over the first `period` deltas of the window.
	window := closes[len(closes)-period-1:]
	var avgGain, avgLoss float64
	for i := 1; i < len(window); i++ {
		delta := window[i] - window[i-1]
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss -= delta
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	if avgLoss == 0 {
		if avgGain == 0 {
			return 50
		}
		return 100
	}

	rs := avgGain / avgLoss
	rsi := 100 - 100/(1+rs)
	return clamp(rsi, 0, 100)
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
