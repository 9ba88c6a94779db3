package fmp

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"tradescan/internal/contracts"
)

type historyResponse struct {
	Symbol     string `json:"symbol"`
	Historical []struct {
		Date   string  `json:"date"`
		Open   float64 `json:"open"`
		High   float64 `json:"high"`
		Low    float64 `json:"low"`
		Close  float64 `json:"close"`
		Volume float64 `json:"volume"`
	} `json:"historical"`
}

// FetchHistory returns up to lookbackDays daily bars. FMP delivers newest
// first; bars are reversed to the oldest-first order everything downstream
// assumes. A short series is a valid HistoryResult, not an error.
func (c *Client) FetchHistory(ctx context.Context, symbol string, lookbackDays int) (contracts.HistoryResult, error) {
	params := url.Values{}
	params.Set("timeseries", strconv.Itoa(lookbackDays))

	var resp historyResponse
	u := c.endpoint("/historical-price-full/"+symbol, params)
	if err := c.http.GetJSON(ctx, u, &resp); err != nil {
		return contracts.HistoryResult{}, fmt.Errorf("fmp history %s: %w", symbol, err)
	}

	bars := make([]contracts.Bar, 0, len(resp.Historical))
	for i := len(resp.Historical) - 1; i >= 0; i-- {
		h := resp.Historical[i]
		date, err := time.Parse("2006-01-02", h.Date)
		if err != nil {
			return contracts.HistoryResult{}, fmt.Errorf("fmp history %s: bad date %q: %w", symbol, h.Date, contracts.ErrMalformedPayload)
		}
		bars = append(bars, contracts.Bar{
			Date:   date,
			Open:   h.Open,
			High:   h.High,
			Low:    h.Low,
			Close:  h.Close,
			Volume: h.Volume,
		})
	}

	return contracts.HistoryResult{Bars: bars, Requested: lookbackDays}, nil
}
