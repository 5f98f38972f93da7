package sectickers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"govfunding_backend/internal/shared/ratelimiter"
)

func testLimiter() *ratelimiter.RateLimiter {
	return ratelimiter.NewRateLimiter(1000, time.Second)
}

func TestSECTickers_ListCompanies_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "test-agent/1.0" {
			t.Errorf("expected SEC User-Agent, got %q", ua)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		// Keys intentionally out of order: the client must restore numeric order
		_, _ = w.Write([]byte(`{
			"2": {"cik_str": 1045810, "ticker": "NVDA", "title": "NVIDIA CORP"},
			"0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."},
			"1": {"cik_str": 789019, "ticker": "MSFT", "title": "MICROSOFT CORP"}
		}`))
	}))
	defer server.Close()

	cfg := Config{TickersURL: server.URL, UserAgent: "test-agent/1.0"}
	repo := NewSECTickers(cfg, server.Client(), testLimiter())

	companies, err := repo.ListCompanies(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(companies) != 3 {
		t.Fatalf("expected 3 companies, got %d", len(companies))
	}
	wantOrder := []string{"AAPL", "MSFT", "NVDA"}
	for i, want := range wantOrder {
		if companies[i].Ticker != want {
			t.Errorf("companies[%d] = %s, want %s", i, companies[i].Ticker, want)
		}
	}
	if companies[0].CIK != 320193 || companies[0].Title != "Apple Inc." {
		t.Errorf("unexpected company: %+v", companies[0])
	}
}

func TestSECTickers_ListCompanies_HTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	cfg := Config{TickersURL: server.URL, UserAgent: "test-agent/1.0"}
	repo := NewSECTickers(cfg, server.Client(), testLimiter())

	_, err := repo.ListCompanies(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "sec tickers http") {
		t.Errorf("expected HTTP error message, got %v", err)
	}
}

func TestSECTickers_ListCompanies_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	cfg := Config{TickersURL: server.URL, UserAgent: "test-agent/1.0"}
	repo := NewSECTickers(cfg, server.Client(), testLimiter())

	_, err := repo.ListCompanies(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
