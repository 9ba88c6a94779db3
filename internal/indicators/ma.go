package indicators

// SMA is the simple moving average of the last n closes. Needs n bars;
// returns 0 on short input.
func SMA(closes []float64, n int) float64 {
	if n <= 0 || len(closes) < n {
		return 0
	}

	var sum float64
	for _, c := range closes[len(closes)-n:] {
		sum += c
	}
	return sum / float64(n)
}

// EMA is the exponential moving average of the closes with period n, seeded
// with the SMA of the first n values. Needs n bars; returns 0 on short input.
func EMA(closes []float64, n int) float64 {
	if n <= 0 || len(closes) < n {
		return 0
	}

	var seed float64
	for _, c := range closes[:n] {
		seed += c
	}
	ema := seed / float64(n)

	k := 2.0 / float64(n+1)
	for _, c := range closes[n:] {
		ema += k * (c - ema)
	}
	return ema
}

// RollingHigh is the highest close over the n bars preceding the latest bar.
// The latest bar is excluded so a fresh breakout compares against prior
// resistance, not itself. Needs n+1 bars; returns 0 on short input.
func RollingHigh(closes []float64, n int) float64 {
	if n <= 0 || len(closes) < n+1 {
		return 0
	}

	prior := closes[len(closes)-n-1 : len(closes)-1]
	high := prior[0]
	for _, c := range prior[1:] {
		if c > high {
			high = c
		}
	}
	return high
}

// Breakout reports whether the latest close clears the prior n-bar high by
// at least threshold (a fraction, e.g. 0.01 for 1%).
func Breakout(closes []float64, n int, threshold float64) bool {
	high := RollingHigh(closes, n)
	if high <= 0 {
		return false
	}
	return closes[len(closes)-1] > high*(1+threshold)
}
