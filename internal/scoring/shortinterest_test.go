package scoring

import (
	"testing"

	"tradescan/internal/contracts"
)

func shortAux(si contracts.ShortInterest) contracts.AuxResult {
	return contracts.AuxResult{
		Kind:          contracts.AuxShortInterest,
		State:         contracts.AuxPresent,
		ShortInterest: &si,
	}
}

func TestScoreShortInterestSweetSpot(t *testing.T) {
	engine := newEngine(t)

	low := engine.scoreShortInterest(shortAux(contracts.ShortInterest{ShortFloatPct: 1})).Value
	moderate := engine.scoreShortInterest(shortAux(contracts.ShortInterest{ShortFloatPct: 18})).Value
	extreme := engine.scoreShortInterest(shortAux(contracts.ShortInterest{ShortFloatPct: 60})).Value

	if moderate <= low {
		t.Errorf("moderate short float = %.2f, low = %.2f; squeeze setup must outscore a clean float", moderate, low)
	}
	if moderate <= extreme {
		t.Errorf("moderate short float = %.2f, extreme = %.2f; consensus crowding must score lower", moderate, extreme)
	}
}

func TestScoreShortInterestFastCoverBeatsSlow(t *testing.T) {
	engine := newEngine(t)

	fast := engine.scoreShortInterest(shortAux(contracts.ShortInterest{ShortFloatPct: 15, DaysToCover: 1.5})).Value
	slow := engine.scoreShortInterest(shortAux(contracts.ShortInterest{ShortFloatPct: 15, DaysToCover: 9})).Value
	if fast <= slow {
		t.Errorf("days-to-cover 1.5 = %.2f, 9 = %.2f; the fast cover must score higher", fast, slow)
	}

	// A feed without the figure leaves it zero; no adjustment either way.
	unknown := engine.scoreShortInterest(shortAux(contracts.ShortInterest{ShortFloatPct: 15})).Value
	if unknown <= slow || unknown >= fast {
		t.Errorf("unknown days-to-cover = %.2f, want between %.2f and %.2f", unknown, slow, fast)
	}
}

func TestScoreShortInterestTrendDirection(t *testing.T) {
	engine := newEngine(t)

	falling := engine.scoreShortInterest(shortAux(contracts.ShortInterest{ShortFloatPct: 15, DaysToCover: 2, ChangeMonthly: -60})).Value
	flat := engine.scoreShortInterest(shortAux(contracts.ShortInterest{ShortFloatPct: 15, DaysToCover: 2})).Value
	rising := engine.scoreShortInterest(shortAux(contracts.ShortInterest{ShortFloatPct: 15, DaysToCover: 2, ChangeMonthly: 60})).Value

	if falling <= flat {
		t.Errorf("falling short interest = %.2f, flat = %.2f; shrinking shorts must score higher", falling, flat)
	}
	if rising >= flat {
		t.Errorf("rising short interest = %.2f, flat = %.2f; building shorts must score lower", rising, flat)
	}
}

func TestScoreShortInterestMissingIsNeutral(t *testing.T) {
	engine := newEngine(t)

	sub := engine.scoreShortInterest(contracts.Unavailable(contracts.AuxShortInterest))
	if sub.Value != contracts.NeutralScore || !sub.Degraded {
		t.Errorf("missing short interest: %.2f degraded=%v, want neutral degraded", sub.Value, sub.Degraded)
	}
}
