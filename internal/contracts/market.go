package contracts

import "time"

// Bar is one daily OHLCV record. Series are always ordered oldest first;
// provider adapters are responsible for normalizing payload order before
// anything downstream sees the bars.
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// Quote is a point-in-time snapshot for a symbol, one per run.
type Quote struct {
	Price        float64 `json:"price"`
	Bid          float64 `json:"bid"`
	Ask          float64 `json:"ask"`
	Volume       float64 `json:"volume"`
	DayChangePct float64 `json:"day_change_pct"`
}

// Instrument carries optional enrichment. Missing fields never block scoring.
type Instrument struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"company_name,omitempty"`
	Sector      string  `json:"sector,omitempty"`
	MarketCap   float64 `json:"market_cap,omitempty"`
}

// ReferenceSeries is the benchmark history shared read-only by every symbol
// in a run.
type ReferenceSeries struct {
	Symbol string
	Bars   []Bar
}

// HistoryResult is the typed outcome of a history fetch. A series shorter
// than what the caller asked for is a legitimate result, not an error.
type HistoryResult struct {
	Bars      []Bar
	Requested int
}

// Insufficient reports whether the series is too short for the given
// minimum lookback.
func (h HistoryResult) Insufficient(minBars int) bool {
	return len(h.Bars) < minBars
}

// Closes extracts the closing prices, oldest first.
func (h HistoryResult) Closes() []float64 {
	closes := make([]float64, len(h.Bars))
	for i, b := range h.Bars {
		closes[i] = b.Close
	}
	return closes
}
