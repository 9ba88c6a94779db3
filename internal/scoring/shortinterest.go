package scoring

import "tradescan/internal/contracts"

// scoreShortInterest rates squeeze potential. Moderate short float is the
// sweet spot: enough crowding to fuel a squeeze, not so much that the trade
// is consensus. A fast cover (low days-to-cover) adds, a slow one subtracts,
// and the monthly trend counts against building shorts and in favor of
// shrinking ones.
func (e *Engine) scoreShortInterest(aux contracts.AuxResult) contracts.SubScore {
	if !aux.Present() {
		return neutral(contracts.DimShortInterest)
	}
	si := aux.ShortInterest

	sf := si.ShortFloatPct
	var value float64
	switch {
	case sf < 2:
		value = 4
	case sf < 10:
		value = 5 + (sf-2)*0.25
	case sf < 20:
		value = 7 + (sf-10)*0.2
	default:
		value = 9 - clamp((sf-20)*0.2, 0, 4)
	}

	// Zero days-to-cover means the feed had no figure, not an instant cover.
	switch dtc := si.DaysToCover; {
	case dtc <= 0:
	case dtc < 3:
		value += 0.5
	case dtc > 6:
		value -= 0.5
	}

	value -= clamp(si.ChangeMonthly*0.02, -1, 1)

	return contracts.SubScore{
		Dimension: contracts.DimShortInterest,
		Value:     clamp(value, 0, 10),
		Metrics: map[string]float64{
			"short_float_pct": sf,
			"days_to_cover":   si.DaysToCover,
			"change_monthly":  si.ChangeMonthly,
		},
	}
}
