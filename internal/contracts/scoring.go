package contracts

// Dimension names one 0-10 scoring axis.
type Dimension string

const (
	DimMomentum         Dimension = "momentum"
	DimVolume           Dimension = "volume"
	DimTechnical        Dimension = "technical"
	DimVolatility       Dimension = "volatility"
	DimRelativeStrength Dimension = "relative_strength"
	DimSentiment        Dimension = "sentiment"
	DimLiquidity        Dimension = "liquidity"
	DimFundamental      Dimension = "fundamental"
	DimShortInterest    Dimension = "short_interest"
	DimGrowth           Dimension = "growth"
	DimOptions          Dimension = "options"
)

// Dimensions lists every scoring axis in report order.
func Dimensions() []Dimension {
	return []Dimension{
		DimMomentum, DimVolume, DimTechnical, DimVolatility,
		DimRelativeStrength, DimSentiment, DimLiquidity,
		DimFundamental, DimShortInterest, DimGrowth, DimOptions,
	}
}

// NeutralScore is the documented sub-score for a dimension whose auxiliary
// data is unavailable or degraded. Missing data lowers confidence, never
// validity.
const NeutralScore = 5.0

// SubScore is one dimension's evaluation plus the raw metrics behind it.
type SubScore struct {
	Dimension Dimension          `json:"dimension"`
	Value     float64            `json:"value"` // always in [0, 10]
	Degraded  bool               `json:"degraded,omitempty"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// RejectionReason names why a symbol never reached ranking.
type RejectionReason string

const (
	RejectNone                RejectionReason = ""
	RejectNotFound            RejectionReason = "not_found"
	RejectInsufficientHistory RejectionReason = "insufficient_history"
	RejectQuoteUnavailable    RejectionReason = "quote_unavailable"
	RejectHistoryUnavailable  RejectionReason = "history_unavailable"
	RejectPriceOutOfRange     RejectionReason = "price_out_of_range"
	RejectVolumeBelowFloor    RejectionReason = "volume_below_floor"
)

// CompositeResult is the per-symbol output handed to the report renderer and
// the qualitative analyzer. Produced once per symbol per run.
type CompositeResult struct {
	Symbol        string                 `json:"symbol"`
	Instrument    Instrument             `json:"instrument"`
	Price         float64                `json:"price"`
	DayChangePct  float64                `json:"day_change_pct"`
	SubScores     map[Dimension]SubScore `json:"sub_scores,omitempty"`
	WeightedTotal float64                `json:"weighted_total"`
	Passed        bool                   `json:"passed"`
	Reason        RejectionReason        `json:"rejection_reason,omitempty"`
	Detail        string                 `json:"rejection_detail,omitempty"`

	// RawMetrics carries indicator values for narrative context downstream.
	RawMetrics map[string]float64 `json:"raw_metrics,omitempty"`
}

// Score returns one dimension's value, or the neutral score when the
// dimension was never computed.
func (c CompositeResult) Score(d Dimension) float64 {
	if s, ok := c.SubScores[d]; ok {
		return s.Value
	}
	return NeutralScore
}
