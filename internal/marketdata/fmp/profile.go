package fmp

import (
	"context"
	"fmt"

	"tradescan/internal/contracts"
)

type profileResponse struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"companyName"`
	Sector      string  `json:"sector"`
	MktCap      float64 `json:"mktCap"`
}

// FetchProfile returns company enrichment. Absence never blocks scoring.
func (c *Client) FetchProfile(ctx context.Context, symbol string) (contracts.Instrument, error) {
	var profiles []profileResponse
	u := c.endpoint("/profile/"+symbol, nil)
	if err := c.http.GetJSON(ctx, u, &profiles); err != nil {
		return contracts.Instrument{}, fmt.Errorf("fmp profile %s: %w", symbol, err)
	}
	if len(profiles) == 0 {
		return contracts.Instrument{}, fmt.Errorf("fmp profile %s: %w", symbol, contracts.ErrNotFound)
	}

	p := profiles[0]
	return contracts.Instrument{
		Symbol:      symbol,
		CompanyName: p.CompanyName,
		Sector:      p.Sector,
		MarketCap:   p.MktCap,
	}, nil
}
