package fmp

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"tradescan/internal/contracts"
)

const newsLimit = 20

type newsResponse struct {
	Title         string `json:"title"`
	Text          string `json:"text"`
	PublishedDate string `json:"publishedDate"`
}

// FetchNews returns recent headlines for a symbol, newest first as the
// provider serves them.
func (c *Client) FetchNews(ctx context.Context, symbol string) ([]contracts.Headline, error) {
	params := url.Values{}
	params.Set("tickers", symbol)
	params.Set("limit", strconv.Itoa(newsLimit))

	var rows []newsResponse
	u := c.endpoint("/stock_news", params)
	if err := c.http.GetJSON(ctx, u, &rows); err != nil {
		return nil, fmt.Errorf("fmp news %s: %w", symbol, err)
	}

	headlines := make([]contracts.Headline, 0, len(rows))
	for _, row := range rows {
		headlines = append(headlines, contracts.Headline{
			Title:     row.Title,
			Text:      row.Text,
			Published: row.PublishedDate,
		})
	}
	return headlines, nil
}
