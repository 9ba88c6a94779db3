package strategyconfig

import (
	"tradescan/internal/contracts"
)

// Config is the full run-scoped strategy: lookback windows, indicator
// thresholds, admission filters, dimension weights, and feature toggles.
// Loaded once per run and validated before any fetching starts.
type Config struct {
	Meta      Meta      `yaml:"meta" json:"meta"`
	Benchmark Benchmark `yaml:"benchmark" json:"benchmark"`
	Windows   Windows   `yaml:"windows" json:"windows"`
	Signals   Signals   `yaml:"signals" json:"signals"`
	Weights   Weights   `yaml:"weights" json:"weights"`
	Filters   Filters   `yaml:"filters" json:"filters"`
	Features  Features  `yaml:"features" json:"features"`
	Sentiment Sentiment `yaml:"sentiment" json:"sentiment"`
	Ranking   Ranking   `yaml:"ranking" json:"ranking"`
}

// Meta identifies the strategy file.
type Meta struct {
	StrategyID string `yaml:"strategy_id" json:"strategy_id"`
	Version    string `yaml:"version" json:"version"`
}

// Benchmark names the shared reference series.
type Benchmark struct {
	Symbol string `yaml:"symbol" json:"symbol"`
}

// Windows holds every lookback, in trading days (bars).
type Windows struct {
	Short           int `yaml:"short" json:"short"`
	Medium          int `yaml:"medium" json:"medium"`
	Long            int `yaml:"long" json:"long"`
	HistoryLookback int `yaml:"history_lookback" json:"history_lookback"` // bars requested per symbol
	MinHistory      int `yaml:"min_history" json:"min_history"`           // admission floor
	RSIPeriod       int `yaml:"rsi_period" json:"rsi_period"`
	BreakoutPeriod  int `yaml:"breakout_period" json:"breakout_period"`
	Volatility      int `yaml:"volatility" json:"volatility"`
	Volume          int `yaml:"volume" json:"volume"`
}

// Signals holds indicator thresholds and the volatility band.
type Signals struct {
	RSIOverbought         float64 `yaml:"rsi_overbought" json:"rsi_overbought"`
	RSIOversold           float64 `yaml:"rsi_oversold" json:"rsi_oversold"`
	VolumeSpikeMultiplier float64 `yaml:"volume_spike_multiplier" json:"volume_spike_multiplier"`
	BreakoutThresholdPct  float64 `yaml:"breakout_threshold_pct" json:"breakout_threshold_pct"`
	VolBand               VolBand `yaml:"vol_band" json:"vol_band"`
}

// VolBand is the realized-volatility sweet spot: the score peaks at Peak and
// falls off linearly toward Low and High. Daily return stdev, as a fraction.
type VolBand struct {
	Low  float64 `yaml:"low" json:"low"`
	Peak float64 `yaml:"peak" json:"peak"`
	High float64 `yaml:"high" json:"high"`
}

// Weights is the per-dimension weight vector. Strictly runtime
// configuration: presets differ materially, so the engine never hard-codes
// a distribution.
type Weights struct {
	Momentum         float64 `yaml:"momentum" json:"momentum"`
	Volume           float64 `yaml:"volume" json:"volume"`
	Technical        float64 `yaml:"technical" json:"technical"`
	Volatility       float64 `yaml:"volatility" json:"volatility"`
	RelativeStrength float64 `yaml:"relative_strength" json:"relative_strength"`
	Sentiment        float64 `yaml:"sentiment" json:"sentiment"`
	Liquidity        float64 `yaml:"liquidity" json:"liquidity"`
	Fundamental      float64 `yaml:"fundamental" json:"fundamental"`
	ShortInterest    float64 `yaml:"short_interest" json:"short_interest"`
	Growth           float64 `yaml:"growth" json:"growth"`
	Options          float64 `yaml:"options" json:"options"`
}

// Sum returns the total weight.
func (w Weights) Sum() float64 {
	return w.Momentum + w.Volume + w.Technical + w.Volatility +
		w.RelativeStrength + w.Sentiment + w.Liquidity +
		w.Fundamental + w.ShortInterest + w.Growth + w.Options
}

// ByDimension returns the vector keyed by dimension.
func (w Weights) ByDimension() map[contracts.Dimension]float64 {
	return map[contracts.Dimension]float64{
		contracts.DimMomentum:         w.Momentum,
		contracts.DimVolume:           w.Volume,
		contracts.DimTechnical:        w.Technical,
		contracts.DimVolatility:       w.Volatility,
		contracts.DimRelativeStrength: w.RelativeStrength,
		contracts.DimSentiment:        w.Sentiment,
		contracts.DimLiquidity:        w.Liquidity,
		contracts.DimFundamental:      w.Fundamental,
		contracts.DimShortInterest:    w.ShortInterest,
		contracts.DimGrowth:           w.Growth,
		contracts.DimOptions:          w.Options,
	}
}

// Filters are the admission gate bounds.
type Filters struct {
	MinPrice     float64 `yaml:"min_price" json:"min_price"`
	MaxPrice     float64 `yaml:"max_price" json:"max_price"`
	MinAvgVolume float64 `yaml:"min_avg_volume" json:"min_avg_volume"`
}

// Features toggles auxiliary-data dimensions. Disabled dimensions score
// neutral without spending rate budget.
type Features struct {
	Options      bool `yaml:"options" json:"options"`
	Fundamentals bool `yaml:"fundamentals" json:"fundamentals"`
}

// Sentiment holds the keyword polarity sets for headline scanning.
type Sentiment struct {
	Positive []string `yaml:"positive" json:"positive"`
	Negative []string `yaml:"negative" json:"negative"`
}

// Ranking controls the report cut.
type Ranking struct {
	TopN int `yaml:"top_n" json:"top_n"`
}

// Default returns the built-in preset. It exists for tests and for writing a
// starter strategy file; a real run loads its vector from YAML.
func Default() *Config {
	return &Config{
		Meta:      Meta{StrategyID: "short_term_default", Version: "1.0.0"},
		Benchmark: Benchmark{Symbol: "SPY"},
		Windows: Windows{
			Short:           5,
			Medium:          20,
			Long:            60,
			HistoryLookback: 250,
			MinHistory:      50,
			RSIPeriod:       14,
			BreakoutPeriod:  20,
			Volatility:      20,
			Volume:          20,
		},
		Signals: Signals{
			RSIOverbought:         70,
			RSIOversold:           30,
			VolumeSpikeMultiplier: 1.5,
			BreakoutThresholdPct:  0.01,
			VolBand:               VolBand{Low: 0.008, Peak: 0.025, High: 0.06},
		},
		Weights: Weights{
			Momentum:         0.20,
			Volume:           0.10,
			Technical:        0.15,
			Volatility:       0.08,
			RelativeStrength: 0.10,
			Sentiment:        0.10,
			Liquidity:        0.05,
			Fundamental:      0.10,
			ShortInterest:    0.05,
			Growth:           0.05,
			Options:          0.02,
		},
		Filters: Filters{
			MinPrice:     2.0,
			MaxPrice:     10000,
			MinAvgVolume: 100000,
		},
		Features: Features{Options: true, Fundamentals: true},
		Sentiment: Sentiment{
			Positive: []string{
				"beat", "exceed", "strong", "growth", "upgrade",
				"breakthrough", "record", "surge", "rally", "momentum",
				"bullish", "outperform", "expansion", "partnership",
				"acquisition", "approved", "launched",
			},
			Negative: []string{
				"miss", "weak", "decline", "downgrade", "concern",
				"investigation", "probe", "lawsuit", "recall", "cut",
				"bearish", "underperform", "loss", "delay", "suspended",
				"warning", "restructuring", "bankruptcy",
			},
		},
		Ranking: Ranking{TopN: 10},
	}
}
