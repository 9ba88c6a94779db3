package contracts

// AuxKind identifies one auxiliary dataset a symbol may or may not have.
type AuxKind string

const (
	AuxFundamentals  AuxKind = "fundamentals"
	AuxShortInterest AuxKind = "short_interest"
	AuxGrowth        AuxKind = "growth"
	AuxOptions       AuxKind = "options"
	AuxNews          AuxKind = "news"
)

// AuxState tags the outcome of an auxiliary fetch so scoring can never
// confuse "zero" with "missing".
type AuxState int

const (
	// AuxPresent means the payload was fetched and parsed.
	AuxPresent AuxState = iota
	// AuxUnavailable means the provider has no such dataset for the symbol
	// (no listed options, no reported short interest). Legitimate outcome.
	AuxUnavailable
	// AuxFailed means fetching failed after retries; the payload is unusable
	// for this run but the symbol itself is not rejected.
	AuxFailed
)

// AuxResult is the tagged result of FetchAuxiliary.
type AuxResult struct {
	Kind  AuxKind
	State AuxState
	Err   error // set only when State == AuxFailed

	Fundamentals  *Fundamentals
	ShortInterest *ShortInterest
	Growth        *GrowthMetrics
	Options       *OptionsSnapshot
	Headlines     []Headline
}

// Present reports whether a usable payload is attached.
func (a AuxResult) Present() bool { return a.State == AuxPresent }

// Unavailable builds the "provider has nothing" result for a kind.
func Unavailable(kind AuxKind) AuxResult {
	return AuxResult{Kind: kind, State: AuxUnavailable}
}

// Failed builds the degraded result for a kind after retries are exhausted.
func Failed(kind AuxKind, err error) AuxResult {
	return AuxResult{Kind: kind, State: AuxFailed, Err: err}
}

// Fundamentals holds the ratio snapshot used by the quality dimension.
type Fundamentals struct {
	ReturnOnEquity  float64 `json:"return_on_equity"`
	NetProfitMargin float64 `json:"net_profit_margin"`
	DebtToEquity    float64 `json:"debt_to_equity"`
	CurrentRatio    float64 `json:"current_ratio"`
	FreeCashFlowPS  float64 `json:"free_cash_flow_per_share"`
	PriceEarnings   float64 `json:"price_earnings"`
}

// ShortInterest holds the short posture snapshot.
type ShortInterest struct {
	ShortFloatPct float64 `json:"short_float_pct"` // short shares / float, in percent
	DaysToCover   float64 `json:"days_to_cover"`   // short shares / avg daily volume
	ChangeMonthly float64 `json:"change_monthly"`  // 1-month change in short interest, percent
}

// GrowthMetrics holds trailing growth rates, in percent.
type GrowthMetrics struct {
	RevenueGrowth float64 `json:"revenue_growth"`
	EPSGrowth     float64 `json:"eps_growth"`
	CAGR5Y        float64 `json:"cagr_5y"`
}

// OptionsSnapshot aggregates the near-dated chain for sentiment scoring.
type OptionsSnapshot struct {
	PutCallRatio float64 `json:"put_call_ratio"`
	ATMIV        float64 `json:"atm_iv"` // implied volatility, percent
	CallVolume   float64 `json:"call_volume"`
	PutVolume    float64 `json:"put_volume"`
	NetDelta     float64 `json:"net_delta"`
	Contracts    int     `json:"contracts"`
}

// TotalVolume is the combined option volume across the snapshot.
func (o OptionsSnapshot) TotalVolume() float64 {
	return o.CallVolume + o.PutVolume
}

// Headline is one news item for keyword sentiment.
type Headline struct {
	Title     string `json:"title"`
	Text      string `json:"text,omitempty"`
	Published string `json:"published,omitempty"`
}
