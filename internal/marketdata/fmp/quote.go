package fmp

import (
	"context"
	"fmt"

	"tradescan/internal/contracts"
)

type quoteResponse struct {
	Symbol            string  `json:"symbol"`
	Price             float64 `json:"price"`
	ChangesPercentage float64 `json:"changesPercentage"`
	Volume            float64 `json:"volume"`
	Name              string  `json:"name"`
}

// FetchQuote returns the current snapshot for a symbol. FMP answers with a
// one-element array; an empty array means the symbol does not exist. The
// payload carries no bid/ask, so those Quote fields stay zero on this feed.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (contracts.Quote, error) {
	var quotes []quoteResponse
	url := c.endpoint("/quote/"+symbol, nil)
	if err := c.http.GetJSON(ctx, url, &quotes); err != nil {
		return contracts.Quote{}, fmt.Errorf("fmp quote %s: %w", symbol, err)
	}
	if len(quotes) == 0 {
		return contracts.Quote{}, fmt.Errorf("fmp quote %s: %w", symbol, contracts.ErrNotFound)
	}

	q := quotes[0]
	return contracts.Quote{
		Price:        q.Price,
		Volume:       q.Volume,
		DayChangePct: q.ChangesPercentage,
	}, nil
}
