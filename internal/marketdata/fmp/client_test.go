package fmp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tradescan/internal/contracts"
	"tradescan/pkg/config"
	"tradescan/pkg/httputil"
	"tradescan/pkg/logger"
	"tradescan/pkg/ratelimit"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	limiter, err := ratelimit.New(6000, ratelimit.SystemClock{})
	if err != nil {
		t.Fatal(err)
	}
	httpClient := httputil.New(limiter, logger.NewNop(), 5*time.Second).
		WithRetry(httputil.RetryConfig{MaxRetries: 0, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond})

	return New(config.FMPConfig{APIKey: "test-key", BaseURL: server.URL}, httpClient)
}

func TestFetchQuote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quote/AAPL" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("apikey") != "test-key" {
			t.Error("missing apikey query parameter")
		}
		w.Write([]byte(`[{"symbol":"AAPL","price":187.45,"changesPercentage":2.3,"volume":52000000,"name":"Apple Inc."}]`))
	})

	quote, err := client.FetchQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("FetchQuote failed: %v", err)
	}
	if quote.Price != 187.45 {
		t.Errorf("price = %v, want 187.45", quote.Price)
	}
	if quote.DayChangePct != 2.3 {
		t.Errorf("day change = %v, want 2.3", quote.DayChangePct)
	}
	if quote.Volume != 52000000 {
		t.Errorf("volume = %v, want 52000000", quote.Volume)
	}
}

func TestFetchQuoteUnknownSymbol(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := client.FetchQuote(context.Background(), "ZZZZ")
	if !errors.Is(err, contracts.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchHistoryReversesToOldestFirst(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("timeseries"); got != "250" {
			t.Errorf("timeseries = %s, want 250", got)
		}
		w.Write([]byte(`{
			"symbol": "AAPL",
			"historical": [
				{"date":"2026-08-24","open":186,"high":189,"low":185,"close":187.45,"volume":52000000},
				{"date":"2026-08-21","open":183,"high":186,"low":182,"close":185.10,"volume":48000000},
				{"date":"2026-08-20","open":181,"high":184,"low":180,"close":183.00,"volume":45000000}
			]
		}`))
	})

	hist, err := client.FetchHistory(context.Background(), "AAPL", 250)
	if err != nil {
		t.Fatalf("FetchHistory failed: %v", err)
	}
	if len(hist.Bars) != 3 {
		t.Fatalf("got %d bars, want 3", len(hist.Bars))
	}
	first := hist.Bars[0].Date.Format("2006-01-02")
	last := hist.Bars[2].Date.Format("2006-01-02")
	if first != "2026-08-20" || last != "2026-08-24" {
		t.Errorf("bars not oldest-first: %s .. %s", first, last)
	}
	if !hist.Insufficient(50) {
		t.Error("3 bars against a 50-bar floor must be insufficient")
	}
}

func TestFetchHistoryMalformed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"historical": "oops`))
	})

	_, err := client.FetchHistory(context.Background(), "AAPL", 100)
	if !errors.Is(err, contracts.ErrMalformedPayload) {
		t.Errorf("expected ErrMalformedPayload, got %v", err)
	}
	if !contracts.IsTransient(err) {
		t.Error("malformed payload must count as transient for degradation")
	}
}

func TestFetchProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"symbol":"AAPL","companyName":"Apple Inc.","sector":"Technology","mktCap":2900000000000}]`))
	})

	inst, err := client.FetchProfile(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("FetchProfile failed: %v", err)
	}
	if inst.CompanyName != "Apple Inc." || inst.Sector != "Technology" {
		t.Errorf("unexpected instrument: %+v", inst)
	}
}

func TestFetchFundamentals(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"returnOnEquityTTM":0.45,"netProfitMarginTTM":0.25,"debtEquityRatioTTM":1.2,"currentRatioTTM":1.1,"freeCashFlowPerShareTTM":6.2,"priceEarningsRatioTTM":28.5}]`))
	})

	f, err := client.FetchFundamentals(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("FetchFundamentals failed: %v", err)
	}
	if f.ReturnOnEquity != 0.45 || f.PriceEarnings != 28.5 {
		t.Errorf("unexpected fundamentals: %+v", f)
	}
}

func TestFetchNews(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("tickers"); got != "AAPL" {
			t.Errorf("tickers = %s", got)
		}
		w.Write([]byte(`[
			{"title":"Apple beats estimates","text":"Record quarter","publishedDate":"2026-08-24 09:30:00"},
			{"title":"Analyst downgrade","text":"Valuation concern","publishedDate":"2026-08-23 14:00:00"}
		]`))
	})

	headlines, err := client.FetchNews(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("FetchNews failed: %v", err)
	}
	if len(headlines) != 2 {
		t.Fatalf("got %d headlines, want 2", len(headlines))
	}
	if headlines[0].Title != "Apple beats estimates" {
		t.Errorf("title = %s", headlines[0].Title)
	}
	if headlines[0].Published != "2026-08-24 09:30:00" {
		t.Errorf("published = %s", headlines[0].Published)
	}
}
