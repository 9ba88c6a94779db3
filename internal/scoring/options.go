package scoring

import "tradescan/internal/contracts"

// minOptionVolume is the conviction floor: a chain trading fewer contracts
// than this carries no readable signal.
const minOptionVolume = 100

// scoreOptions rates option-flow posture as a point buildup: put/call ratio
// carries up to 4 points, the implied-volatility band up to 3, absolute chain
// volume up to 2, and net delta up to 1. Mid-range IV beats both a sleepy
// chain and a panic chain. A symbol with no listed chain scores neutral, the
// same as any other missing dataset.
func (e *Engine) scoreOptions(aux contracts.AuxResult) contracts.SubScore {
	if !aux.Present() {
		return neutral(contracts.DimOptions)
	}
	o := aux.Options

	if o.TotalVolume() < minOptionVolume {
		return contracts.SubScore{
			Dimension: contracts.DimOptions,
			Value:     contracts.NeutralScore,
			Degraded:  true,
			Metrics:   map[string]float64{"total_volume": o.TotalVolume()},
		}
	}

	var value float64
	switch pcr := o.PutCallRatio; {
	case pcr < 0.7:
		value += 4
	case pcr < 0.85:
		value += 3
	case pcr < 1.0:
		value += 2
	case pcr < 1.2:
		value += 1.5
	case pcr < 1.5:
		value += 1
	}

	if iv := o.ATMIV; iv > 0 {
		switch {
		case iv >= 20 && iv <= 40:
			value += 3
		case iv > 40 && iv <= 50:
			value += 2
		case (iv >= 15 && iv < 20) || (iv > 50 && iv <= 60):
			value += 1
		default:
			value += 0.5
		}
	}

	switch vol := o.TotalVolume(); {
	case vol > 10000:
		value += 2
	case vol > 5000:
		value += 1.5
	case vol > 1000:
		value += 1
	default:
		value += 0.5
	}

	switch {
	case o.NetDelta > 100:
		value += 1
	case o.NetDelta > 0:
		value += 0.7
	case o.NetDelta > -100:
		value += 0.3
	}

	return contracts.SubScore{
		Dimension: contracts.DimOptions,
		Value:     clamp(value, 0, 10),
		Metrics: map[string]float64{
			"put_call_ratio": o.PutCallRatio,
			"atm_iv":         o.ATMIV,
			"net_delta":      o.NetDelta,
			"total_volume":   o.TotalVolume(),
		},
	}
}
