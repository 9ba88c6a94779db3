// Package finviz scrapes the FinViz quote page for short-interest figures
// that the JSON providers do not carry.
package finviz

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tradescan/internal/contracts"
	"tradescan/pkg/config"
	"tradescan/pkg/httputil"
)

// Client scrapes FinViz through the shared rate-limited HTTP client.
type Client struct {
	http    *httputil.Client
	baseURL string
}

// New creates a FinViz client. No API key: the quote page is public.
func New(cfg config.FinVizConfig, http *httputil.Client) *Client {
	return &Client{http: http, baseURL: cfg.BaseURL}
}

// FetchShortInterest parses the snapshot table on the quote page. The table
// is a flat grid of label/value cell pairs; values like "12.34%" and "3.10"
// sit next to their labels.
func (c *Client) FetchShortInterest(ctx context.Context, symbol string) (*contracts.ShortInterest, error) {
	u := fmt.Sprintf("%s/quote.ashx?t=%s", c.baseURL, symbol)
	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("finviz %s: %w: %v", symbol, contracts.ErrTransient, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("finviz %s: %w", symbol, contracts.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("finviz %s: %w: status %d", symbol, contracts.ErrTransient, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("finviz %s: %w: %v", symbol, contracts.ErrMalformedPayload, err)
	}

	fields := snapshotFields(doc)
	if len(fields) == 0 {
		return nil, fmt.Errorf("finviz %s: snapshot table missing: %w", symbol, contracts.ErrMalformedPayload)
	}

	si := &contracts.ShortInterest{}
	var parsed bool
	if v, ok := parsePercent(fields["Short Float"]); ok {
		si.ShortFloatPct = v
		parsed = true
	}
	if v, ok := parseNumber(fields["Short Ratio"]); ok {
		si.DaysToCover = v
		parsed = true
	}
	if !parsed {
		return nil, fmt.Errorf("finviz %s: short figures missing: %w", symbol, contracts.ErrMalformedPayload)
	}
	return si, nil
}

// snapshotFields flattens the label/value grid into a map.
func snapshotFields(doc *goquery.Document) map[string]string {
	fields := make(map[string]string)
	cells := doc.Find("table.snapshot-table2 td")
	for i := 0; i+1 < cells.Length(); i += 2 {
		label := strings.TrimSpace(cells.Eq(i).Text())
		value := strings.TrimSpace(cells.Eq(i + 1).Text())
		if label != "" {
			fields[label] = value
		}
	}
	return fields
}

func parsePercent(s string) (float64, bool) {
	return parseNumber(strings.TrimSuffix(strings.TrimSpace(s), "%"))
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
