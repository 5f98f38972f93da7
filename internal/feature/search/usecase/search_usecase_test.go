package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"govfunding_backend/internal/feature/search/domain/entity"
	"govfunding_backend/internal/feature/search/usecase"
)

// mockTickerDirectoryRepository はTickerDirectoryRepositoryインターフェースの
// モック実装です。
type mockTickerDirectoryRepository struct {
	ListCompaniesFunc func(ctx context.Context) ([]entity.Company, error)
}

func (m *mockTickerDirectoryRepository) ListCompanies(ctx context.Context) ([]entity.Company, error) {
	return m.ListCompaniesFunc(ctx)
}

func directory() []entity.Company {
	return []entity.Company{
		{CIK: 320193, Ticker: "AAPL", Title: "Apple Inc."},
		{CIK: 789019, Ticker: "MSFT", Title: "MICROSOFT CORP"},
		{CIK: 936468, Ticker: "LMT", Title: "LOCKHEED MARTIN CORP"},
		{CIK: 1045810, Ticker: "NVDA", Title: "NVIDIA CORP"},
	}
}

// TestSearchUsecase_Search はティッカーと社名の部分一致をテストします。
func TestSearchUsecase_Search(t *testing.T) {
	repo := &mockTickerDirectoryRepository{
		ListCompaniesFunc: func(ctx context.Context) ([]entity.Company, error) {
			return directory(), nil
		},
	}
	uc := usecase.NewSearchUsecase(repo)

	tests := []struct {
		name        string
		query       string
		wantTickers []string
	}{
		{name: "ticker match", query: "aapl", wantTickers: []string{"AAPL"}},
		{name: "title match", query: "lockheed", wantTickers: []string{"LMT"}},
		{name: "substring matches several", query: "corp", wantTickers: []string{"MSFT", "LMT", "NVDA"}},
		{name: "no match", query: "ZZZZZ", wantTickers: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Search(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.wantTickers) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.wantTickers))
			}
			for i, want := range tt.wantTickers {
				if got[i].Ticker != want {
					t.Errorf("result[%d] = %s, want %s", i, got[i].Ticker, want)
				}
			}
		})
	}
}

// TestSearchUsecase_Search_CapsResults は結果件数の上限をテストします。
func TestSearchUsecase_Search_CapsResults(t *testing.T) {
	many := make([]entity.Company, 0, 20)
	for i := 0; i < 20; i++ {
		many = append(many, entity.Company{CIK: i, Ticker: fmt.Sprintf("T%02d", i), Title: "MATCH EVERYTHING CORP"})
	}
	repo := &mockTickerDirectoryRepository{
		ListCompaniesFunc: func(ctx context.Context) ([]entity.Company, error) {
			return many, nil
		},
	}
	uc := usecase.NewSearchUsecase(repo)

	got, err := uc.Search(context.Background(), "match")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != usecase.MaxResults {
		t.Errorf("got %d results, want %d", len(got), usecase.MaxResults)
	}
	// ディレクトリの順序を保って先頭から返す
	if got[0].Ticker != "T00" {
		t.Errorf("expected directory order preserved, got %s first", got[0].Ticker)
	}
}

// TestSearchUsecase_Search_UpstreamError は上流エラーの伝播をテストします。
func TestSearchUsecase_Search_UpstreamError(t *testing.T) {
	wantErr := errors.New("sec tickers http 503")
	repo := &mockTickerDirectoryRepository{
		ListCompaniesFunc: func(ctx context.Context) ([]entity.Company, error) {
			return nil, wantErr
		},
	}
	uc := usecase.NewSearchUsecase(repo)

	_, err := uc.Search(context.Background(), "AAPL")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
