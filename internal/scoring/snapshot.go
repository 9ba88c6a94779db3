// Package scoring turns one symbol's fetched data into a composite 0-10
// result. Fetching and scoring are separate stages: Collector does all the
// I/O under the shared rate budget, Engine is pure math over the snapshot so
// identical snapshots always score identically.
package scoring

import (
	"context"

	"tradescan/internal/contracts"
	"tradescan/internal/indicators"
	"tradescan/internal/strategyconfig"
	"tradescan/pkg/logger"
)

// Snapshot bundles everything fetched for one symbol. Fetch failures ride
// along as fields; the engine decides what they mean.
type Snapshot struct {
	Symbol string

	Quote    contracts.Quote
	QuoteErr error

	History    contracts.HistoryResult
	HistoryErr error

	Instrument contracts.Instrument
	Aux        map[contracts.AuxKind]contracts.AuxResult
}

// Collector is the fetch stage. It short-circuits on doomed symbols so a
// rejected ticker never spends auxiliary rate budget.
type Collector struct {
	data   contracts.MarketData
	cfg    *strategyconfig.Config
	logger *logger.Logger
}

// NewCollector creates a Collector.
func NewCollector(data contracts.MarketData, cfg *strategyconfig.Config, log *logger.Logger) *Collector {
	return &Collector{data: data, cfg: cfg, logger: log}
}

// Collect fetches the snapshot for one symbol: quote first, then history,
// then auxiliary kinds, stopping at the first condition that already rejects
// the symbol. The checks mirror Engine.Score exactly.
func (c *Collector) Collect(ctx context.Context, symbol string) Snapshot {
	snap := Snapshot{Symbol: symbol}

	snap.Quote, snap.QuoteErr = c.data.FetchQuote(ctx, symbol)
	if snap.QuoteErr != nil {
		return snap
	}

	f := c.cfg.Filters
	if snap.Quote.Price < f.MinPrice || snap.Quote.Price > f.MaxPrice {
		return snap
	}

	snap.History, snap.HistoryErr = c.data.FetchHistory(ctx, symbol, c.cfg.Windows.HistoryLookback)
	if snap.HistoryErr != nil || snap.History.Insufficient(c.cfg.Windows.MinHistory) {
		return snap
	}
	if indicators.AvgVolume(snap.History.Bars, c.cfg.Windows.Volume) < f.MinAvgVolume {
		return snap
	}

	snap.Instrument = c.data.FetchInstrument(ctx, symbol)

	snap.Aux = make(map[contracts.AuxKind]contracts.AuxResult)
	for _, kind := range []contracts.AuxKind{
		contracts.AuxFundamentals,
		contracts.AuxGrowth,
		contracts.AuxShortInterest,
		contracts.AuxOptions,
		contracts.AuxNews,
	} {
		snap.Aux[kind] = c.data.FetchAuxiliary(ctx, symbol, kind)
	}

	return snap
}

// CollectBenchmark fetches the shared reference series once per run. On
// failure the run proceeds; relative strength degrades to neutral for every
// symbol.
func (c *Collector) CollectBenchmark(ctx context.Context) (contracts.ReferenceSeries, error) {
	symbol := c.cfg.Benchmark.Symbol
	hist, err := c.data.FetchHistory(ctx, symbol, c.cfg.Windows.HistoryLookback)
	if err != nil {
		c.logger.WithError(err).WithField("symbol", symbol).Warn("benchmark fetch failed, relative strength degrades")
		return contracts.ReferenceSeries{Symbol: symbol}, err
	}
	return contracts.ReferenceSeries{Symbol: symbol, Bars: hist.Bars}, nil
}
