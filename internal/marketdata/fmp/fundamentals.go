package fmp

import (
	"context"
	"fmt"
	"net/url"

	"tradescan/internal/contracts"
)

type ratiosResponse struct {
	ReturnOnEquityTTM         float64 `json:"returnOnEquityTTM"`
	NetProfitMarginTTM        float64 `json:"netProfitMarginTTM"`
	DebtEquityRatioTTM        float64 `json:"debtEquityRatioTTM"`
	CurrentRatioTTM           float64 `json:"currentRatioTTM"`
	FreeCashFlowPerShareTTM   float64 `json:"freeCashFlowPerShareTTM"`
	PriceEarningsRatioTTM     float64 `json:"priceEarningsRatioTTM"`
}

// FetchFundamentals returns trailing-twelve-month ratios.
func (c *Client) FetchFundamentals(ctx context.Context, symbol string) (*contracts.Fundamentals, error) {
	var ratios []ratiosResponse
	u := c.endpoint("/ratios-ttm/"+symbol, nil)
	if err := c.http.GetJSON(ctx, u, &ratios); err != nil {
		return nil, fmt.Errorf("fmp ratios %s: %w", symbol, err)
	}
	if len(ratios) == 0 {
		return nil, fmt.Errorf("fmp ratios %s: %w", symbol, contracts.ErrNotFound)
	}

	r := ratios[0]
	return &contracts.Fundamentals{
		ReturnOnEquity:  r.ReturnOnEquityTTM,
		NetProfitMargin: r.NetProfitMarginTTM,
		DebtToEquity:    r.DebtEquityRatioTTM,
		CurrentRatio:    r.CurrentRatioTTM,
		FreeCashFlowPS:  r.FreeCashFlowPerShareTTM,
		PriceEarnings:   r.PriceEarningsRatioTTM,
	}, nil
}

type growthResponse struct {
	RevenueGrowth              float64 `json:"revenueGrowth"`
	EPSGrowth                  float64 `json:"epsgrowth"`
	FiveYRevenueGrowthPerShare float64 `json:"fiveYRevenueGrowthPerShare"`
}

// FetchGrowth returns the most recent annual growth metrics.
func (c *Client) FetchGrowth(ctx context.Context, symbol string) (*contracts.GrowthMetrics, error) {
	params := url.Values{}
	params.Set("limit", "1")

	var rows []growthResponse
	u := c.endpoint("/financial-growth/"+symbol, params)
	if err := c.http.GetJSON(ctx, u, &rows); err != nil {
		return nil, fmt.Errorf("fmp growth %s: %w", symbol, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("fmp growth %s: %w", symbol, contracts.ErrNotFound)
	}

	g := rows[0]
	return &contracts.GrowthMetrics{
		RevenueGrowth: g.RevenueGrowth,
		EPSGrowth:     g.EPSGrowth,
		CAGR5Y:        g.FiveYRevenueGrowthPerShare,
	}, nil
}
