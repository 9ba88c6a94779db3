package scoring

import "tradescan/internal/contracts"

// scoreGrowth rates trailing growth rates. Inputs are fractions (0.15 means
// 15% growth); revenue counts more than EPS because it is harder to
// engineer.
func (e *Engine) scoreGrowth(aux contracts.AuxResult) contracts.SubScore {
	if !aux.Present() {
		return neutral(contracts.DimGrowth)
	}
	g := aux.Growth

	value := 5 + 12*g.RevenueGrowth + 8*g.EPSGrowth + 2*g.CAGR5Y

	return contracts.SubScore{
		Dimension: contracts.DimGrowth,
		Value:     clamp(value, 0, 10),
		Metrics: map[string]float64{
			"revenue_growth": g.RevenueGrowth,
			"eps_growth":     g.EPSGrowth,
			"cagr_5y":        g.CAGR5Y,
		},
	}
}
