package scoring

import "tradescan/internal/contracts"

// scoreFundamental rates balance-sheet quality from TTM ratios. Points
// accumulate from the midpoint; heavy leverage and negative earnings pull
// the score back down.
func (e *Engine) scoreFundamental(aux contracts.AuxResult) contracts.SubScore {
	if !aux.Present() {
		return neutral(contracts.DimFundamental)
	}
	f := aux.Fundamentals

	value := 5.0
	switch {
	case f.ReturnOnEquity > 0.15:
		value += 1.5
	case f.ReturnOnEquity > 0:
		value += 0.5
	default:
		value -= 0.5
	}
	if f.NetProfitMargin > 0.10 {
		value += 1
	}
	switch {
	case f.DebtToEquity >= 0 && f.DebtToEquity < 1:
		value += 1
	case f.DebtToEquity > 2:
		value -= 1
	}
	if f.CurrentRatio > 1.5 {
		value += 0.5
	}
	if f.FreeCashFlowPS > 0 {
		value += 0.5
	}
	switch {
	case f.PriceEarnings > 0 && f.PriceEarnings <= 40:
		value += 0.5
	case f.PriceEarnings < 0:
		value -= 1
	}

	return contracts.SubScore{
		Dimension: contracts.DimFundamental,
		Value:     clamp(value, 0, 10),
		Metrics: map[string]float64{
			"roe":            f.ReturnOnEquity,
			"net_margin":     f.NetProfitMargin,
			"debt_to_equity": f.DebtToEquity,
			"pe":             f.PriceEarnings,
		},
	}
}
