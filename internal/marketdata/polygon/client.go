// Package polygon adapts the Polygon.io options snapshot and short-interest
// endpoints; everything else comes from other providers.
package polygon

import (
	"context"
	"fmt"
	"math"
	"net/url"

	"tradescan/internal/contracts"
	"tradescan/pkg/config"
	"tradescan/pkg/httputil"
)

const (
	snapshotLimit = 250

	// Two settlements are enough to read the month-over-month direction.
	shortInterestLimit = 2
)

// Client talks to Polygon through the shared rate-limited HTTP client.
type Client struct {
	http    *httputil.Client
	baseURL string
	apiKey  string
}

// New creates a Polygon client.
func New(cfg config.PolygonConfig, http *httputil.Client) *Client {
	return &Client{
		http:    http,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

type snapshotResponse struct {
	Results []struct {
		Details struct {
			ContractType string  `json:"contract_type"`
			StrikePrice  float64 `json:"strike_price"`
		} `json:"details"`
		Day struct {
			Volume int64 `json:"volume"`
		} `json:"day"`
		Greeks struct {
			Delta float64 `json:"delta"`
		} `json:"greeks"`
		ImpliedVolatility float64 `json:"implied_volatility"`
		UnderlyingAsset   struct {
			Price float64 `json:"price"`
		} `json:"underlying_asset"`
	} `json:"results"`
}

// FetchOptionsSnapshot aggregates the option chain into a single snapshot:
// put/call volume split, volume-weighted net delta, and the implied
// volatility of the contract nearest the money. A symbol with no listed
// chain returns ErrNotFound; the caller folds that into Unavailable.
func (c *Client) FetchOptionsSnapshot(ctx context.Context, symbol string) (*contracts.OptionsSnapshot, error) {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", snapshotLimit))
	params.Set("apiKey", c.apiKey)
	u := fmt.Sprintf("%s/v3/snapshot/options/%s?%s", c.baseURL, symbol, params.Encode())

	var resp snapshotResponse
	if err := c.http.GetJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("polygon options %s: %w", symbol, err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("polygon options %s: no listed chain: %w", symbol, contracts.ErrNotFound)
	}

	snap := &contracts.OptionsSnapshot{Contracts: len(resp.Results)}
	var atmDistance = math.MaxFloat64
	for _, r := range resp.Results {
		switch r.Details.ContractType {
		case "call":
			snap.CallVolume += float64(r.Day.Volume)
		case "put":
			snap.PutVolume += float64(r.Day.Volume)
		}
		snap.NetDelta += r.Greeks.Delta * float64(r.Day.Volume)

		if r.UnderlyingAsset.Price > 0 && r.ImpliedVolatility > 0 {
			d := math.Abs(r.Details.StrikePrice - r.UnderlyingAsset.Price)
			if d < atmDistance {
				atmDistance = d
				// Polygon reports IV as a decimal; the snapshot carries percent.
				snap.ATMIV = r.ImpliedVolatility * 100
			}
		}
	}

	if snap.CallVolume > 0 {
		snap.PutCallRatio = snap.PutVolume / snap.CallVolume
	}
	return snap, nil
}

type shortInterestResponse struct {
	Results []struct {
		SettlementDate string  `json:"settlement_date"`
		ShortInterest  float64 `json:"short_interest"`
		AvgDailyVolume float64 `json:"avg_daily_volume"`
		DaysToCover    float64 `json:"days_to_cover"`
	} `json:"results"`
}

// FetchShortInterest returns the latest bi-monthly short posture with the
// change against the prior settlement. The feed carries no short float; the
// caller merges that in from the scrape.
func (c *Client) FetchShortInterest(ctx context.Context, symbol string) (*contracts.ShortInterest, error) {
	params := url.Values{}
	params.Set("ticker", symbol)
	params.Set("limit", fmt.Sprintf("%d", shortInterestLimit))
	params.Set("apiKey", c.apiKey)
	u := fmt.Sprintf("%s/stocks/v1/short-interest?%s", c.baseURL, params.Encode())

	var resp shortInterestResponse
	if err := c.http.GetJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("polygon short interest %s: %w", symbol, err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("polygon short interest %s: no records: %w", symbol, contracts.ErrNotFound)
	}

	latest := resp.Results[0]
	si := &contracts.ShortInterest{DaysToCover: latest.DaysToCover}
	if len(resp.Results) >= 2 && resp.Results[1].ShortInterest > 0 {
		prev := resp.Results[1].ShortInterest
		si.ChangeMonthly = (latest.ShortInterest - prev) / prev * 100
	}
	return si, nil
}
