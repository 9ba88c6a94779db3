package contracts

import "context"

// MarketData is the rate-limited client contract. Any adapter that fills the
// Bar/Quote/Instrument/AuxResult shapes satisfies the scoring engine; there is
// no fixed vendor schema at this boundary.
type MarketData interface {
	// FetchQuote returns the point-in-time snapshot for a symbol. Fails with
	// ErrNotFound or ErrTransient.
	FetchQuote(ctx context.Context, symbol string) (Quote, error)

	// FetchHistory returns up to lookbackDays daily bars, oldest first. A
	// short series is reported through HistoryResult, not an error.
	FetchHistory(ctx context.Context, symbol string, lookbackDays int) (HistoryResult, error)

	// FetchInstrument returns optional enrichment; absence never blocks
	// scoring, so a bare Instrument{Symbol: symbol} is a valid result.
	FetchInstrument(ctx context.Context, symbol string) Instrument

	// FetchAuxiliary returns the tagged result for one auxiliary kind. It
	// never returns a Go error: failures are folded into AuxResult.State.
	FetchAuxiliary(ctx context.Context, symbol string, kind AuxKind) AuxResult
}
