package indicators

// RelativeStrength is the symbol's window return minus the benchmark's over
// the same window. Positive means the symbol outran the reference series.
func RelativeStrength(closes, benchmark []float64, window int) float64 {
	return Return(closes, window) - Return(benchmark, window)
}
