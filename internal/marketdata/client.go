// Package marketdata composes the provider adapters into the single client
// contract the scan runs against. Routing lives here: quotes, history,
// profiles, fundamentals, growth, and news come from FMP; the options chain
// from Polygon; short interest from FinViz, with the settlement trend filled
// in from Polygon when that adapter is equipped.
package marketdata

import (
	"context"
	"errors"

	"tradescan/internal/contracts"
	"tradescan/internal/marketdata/finviz"
	"tradescan/internal/marketdata/fmp"
	"tradescan/internal/marketdata/polygon"
	"tradescan/pkg/config"
	"tradescan/pkg/httputil"
	"tradescan/pkg/logger"
)

// Toggles turns auxiliary kinds off without spending rate budget. A disabled
// kind is Unavailable before any request leaves the process.
type Toggles struct {
	Options      bool
	Fundamentals bool
}

// Client implements contracts.MarketData over the provider split.
type Client struct {
	fmp     *fmp.Client
	polygon *polygon.Client // nil when no API key is configured
	finviz  *finviz.Client
	toggles Toggles
	logger  *logger.Logger
}

// New wires the adapters onto one shared rate-limited HTTP client. The
// Polygon adapter is only constructed when its key is present.
func New(cfg *config.Config, http *httputil.Client, toggles Toggles, log *logger.Logger) *Client {
	c := &Client{
		fmp:     fmp.New(cfg.FMP, http),
		finviz:  finviz.New(cfg.FinViz, http),
		toggles: toggles,
		logger:  log,
	}
	if cfg.OptionsEnabled() {
		c.polygon = polygon.New(cfg.Polygon, http)
	}
	return c
}

// FetchQuote returns the point-in-time snapshot for a symbol.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (contracts.Quote, error) {
	return c.fmp.FetchQuote(ctx, symbol)
}

// FetchHistory returns daily bars, oldest first.
func (c *Client) FetchHistory(ctx context.Context, symbol string, lookbackDays int) (contracts.HistoryResult, error) {
	return c.fmp.FetchHistory(ctx, symbol, lookbackDays)
}

// FetchInstrument returns company enrichment. A failed profile lookup is
// logged and swallowed: scoring proceeds on a bare instrument.
func (c *Client) FetchInstrument(ctx context.Context, symbol string) contracts.Instrument {
	inst, err := c.fmp.FetchProfile(ctx, symbol)
	if err != nil {
		c.logger.WithError(err).WithField("symbol", symbol).Debug("profile lookup failed, continuing bare")
		return contracts.Instrument{Symbol: symbol}
	}
	return inst
}

// FetchAuxiliary resolves one auxiliary kind into a tagged result. Disabled
// or unequipped kinds are Unavailable; a provider NotFound is Unavailable
// (the dataset legitimately does not exist); anything else is Failed.
func (c *Client) FetchAuxiliary(ctx context.Context, symbol string, kind contracts.AuxKind) contracts.AuxResult {
	switch kind {
	case contracts.AuxFundamentals:
		if !c.toggles.Fundamentals {
			return contracts.Unavailable(kind)
		}
		payload, err := c.fmp.FetchFundamentals(ctx, symbol)
		if err != nil {
			return c.auxFailure(symbol, kind, err)
		}
		return contracts.AuxResult{Kind: kind, State: contracts.AuxPresent, Fundamentals: payload}

	case contracts.AuxGrowth:
		if !c.toggles.Fundamentals {
			return contracts.Unavailable(kind)
		}
		payload, err := c.fmp.FetchGrowth(ctx, symbol)
		if err != nil {
			return c.auxFailure(symbol, kind, err)
		}
		return contracts.AuxResult{Kind: kind, State: contracts.AuxPresent, Growth: payload}

	case contracts.AuxShortInterest:
		payload, err := c.finviz.FetchShortInterest(ctx, symbol)
		if c.polygon != nil {
			trend, terr := c.polygon.FetchShortInterest(ctx, symbol)
			switch {
			case terr != nil:
				c.logger.WithError(terr).WithField("symbol", symbol).Debug("short interest trend lookup failed, continuing without")
			case err != nil:
				// Scrape failed but the settlement feed answered.
				payload, err = trend, nil
			default:
				payload.ChangeMonthly = trend.ChangeMonthly
				if payload.DaysToCover == 0 {
					payload.DaysToCover = trend.DaysToCover
				}
			}
		}
		if err != nil {
			return c.auxFailure(symbol, kind, err)
		}
		return contracts.AuxResult{Kind: kind, State: contracts.AuxPresent, ShortInterest: payload}

	case contracts.AuxOptions:
		if !c.toggles.Options || c.polygon == nil {
			return contracts.Unavailable(kind)
		}
		payload, err := c.polygon.FetchOptionsSnapshot(ctx, symbol)
		if err != nil {
			return c.auxFailure(symbol, kind, err)
		}
		return contracts.AuxResult{Kind: kind, State: contracts.AuxPresent, Options: payload}

	case contracts.AuxNews:
		headlines, err := c.fmp.FetchNews(ctx, symbol)
		if err != nil {
			return c.auxFailure(symbol, kind, err)
		}
		if len(headlines) == 0 {
			return contracts.Unavailable(kind)
		}
		return contracts.AuxResult{Kind: kind, State: contracts.AuxPresent, Headlines: headlines}
	}

	return contracts.Unavailable(kind)
}

func (c *Client) auxFailure(symbol string, kind contracts.AuxKind, err error) contracts.AuxResult {
	if errors.Is(err, contracts.ErrNotFound) {
		return contracts.Unavailable(kind)
	}
	c.logger.WithError(err).WithFields(map[string]interface{}{
		"symbol": symbol,
		"kind":   string(kind),
	}).Warn("auxiliary fetch degraded")
	return contracts.Failed(kind, err)
}
