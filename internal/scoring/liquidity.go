package scoring

import (
	"math"

	"tradescan/internal/contracts"
	"tradescan/internal/indicators"
)

// scoreLiquidity rates how much capital the symbol absorbs per session,
// on a log scale of average dollar volume, with a penalty for a wide quoted
// spread when bid and ask are available. Feeds without quote sides (the FMP
// quote payload has none) skip the penalty entirely.
func (e *Engine) scoreLiquidity(bars []contracts.Bar, quote contracts.Quote) contracts.SubScore {
	adv := indicators.AvgDollarVolume(bars, e.cfg.Windows.Volume)

	var value float64
	if adv > 0 {
		// $1M/day lands around 2.5, $100M around 7.5, $1B saturates.
		value = clamp((math.Log10(adv)-5)*2.5, 0, 10)
	}

	metrics := map[string]float64{"avg_dollar_volume": adv}

	if quote.Bid > 0 && quote.Ask > quote.Bid {
		mid := (quote.Bid + quote.Ask) / 2
		spreadPct := (quote.Ask - quote.Bid) / mid
		value -= clamp(spreadPct*200, 0, 2)
		metrics["spread_pct"] = spreadPct
	}

	return contracts.SubScore{
		Dimension: contracts.DimLiquidity,
		Value:     clamp(value, 0, 10),
		Metrics:   metrics,
	}
}
