// Package indicators holds pure, stateless functions over ordered OHLCV
// series (oldest bar first). None of them do I/O. Each function documents
// the minimum history it needs; callers check sufficiency once up front, the
// functions themselves just fall back to a neutral value on short input.
package indicators

// Return is the fractional price change over the trailing window: the
// latest close against the close window bars earlier. Needs window+1 bars.
// Defined as 0 when the past price is not positive.
func Return(closes []float64, window int) float64 {
	if len(closes) < window+1 {
		return 0
	}

	current := closes[len(closes)-1]
	past := closes[len(closes)-1-window]
	if past <= 0 {
		return 0
	}

	return (current - past) / past
}

// Acceleration measures speed-up versus slow-down: the short-window return
// minus the long-window return pro-rated to the short window. Positive means
// the recent move is running ahead of the longer trend. Needs long+1 bars.
func Acceleration(closes []float64, short, long int) float64 {
	if long <= 0 {
		return 0
	}
	return Return(closes, short) - Return(closes, long)*float64(short)/float64(long)
}
