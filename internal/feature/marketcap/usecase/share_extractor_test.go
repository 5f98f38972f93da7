package usecase_test

import (
	"errors"
	"testing"
	"time"

	"govfunding_backend/internal/feature/marketcap/domain/entity"
	"govfunding_backend/internal/feature/marketcap/usecase"
)

// facts はテスト用のファクトツリーを簡潔に組み立てるヘルパーです。
func facts(taxonomy, tag, unit string, entries ...entity.FactEntry) entity.CompanyFacts {
	return entity.CompanyFacts{
		taxonomy: {
			tag: entity.FactTag{Units: map[string][]entity.FactEntry{unit: entries}},
		},
	}
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// TestExtractShareSnapshots_Basic は単一タグからの抽出とソート順をテストします。
func TestExtractShareSnapshots_Basic(t *testing.T) {
	f := facts("us-gaap", "CommonStockSharesOutstanding", "shares",
		entity.FactEntry{End: "2023-06-30", Val: 1010, Form: "10-Q"},
		entity.FactEntry{End: "2023-03-31", Val: 1000, Form: "10-Q"},
	)

	snaps, err := usecase.ExtractShareSnapshots(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snaps))
	}
	if !snaps[0].ReportDate.Equal(date("2023-03-31")) || snaps[0].Shares != 1000 {
		t.Errorf("snapshot[0] mismatch: %+v", snaps[0])
	}
	if !snaps[1].ReportDate.Equal(date("2023-06-30")) || snaps[1].Shares != 1010 {
		t.Errorf("snapshot[1] mismatch: %+v", snaps[1])
	}
}

// TestExtractShareSnapshots_FormFilter は10-K/10-Q以外のフォームが
// 除外されることをテストします。
func TestExtractShareSnapshots_FormFilter(t *testing.T) {
	f := facts("dei", "EntityCommonStockSharesOutstanding", "shares",
		entity.FactEntry{End: "2023-03-31", Val: 500, Form: "8-K"},
		entity.FactEntry{End: "2023-06-30", Val: 600, Form: "10-K"},
		entity.FactEntry{End: "2023-09-30", Val: 700, Form: "S-1"},
	)

	snaps, err := usecase.ExtractShareSnapshots(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(snaps))
	}
	if snaps[0].Shares != 600 || snaps[0].SourceForm != "10-K" {
		t.Errorf("unexpected snapshot: %+v", snaps[0])
	}
}

// TestExtractShareSnapshots_PureUnitFallback は "shares" 単位が無い場合に
// "pure" 単位へフォールバックすることをテストします。
func TestExtractShareSnapshots_PureUnitFallback(t *testing.T) {
	f := facts("dei", "EntityCommonStockSharesOutstanding", "pure",
		entity.FactEntry{End: "2022-12-31", Val: 42, Form: "10-K"},
	)

	snaps, err := usecase.ExtractShareSnapshots(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != 1 || snaps[0].Shares != 42 {
		t.Fatalf("unexpected snapshots: %+v", snaps)
	}
}

// TestExtractShareSnapshots_LastSourceWins は同じ期末日を複数ソースが
// 報告した場合に走査順の後方が勝つことをテストします。
func TestExtractShareSnapshots_LastSourceWins(t *testing.T) {
	f := entity.CompanyFacts{
		"dei": {
			"EntityCommonStockSharesOutstanding": entity.FactTag{Units: map[string][]entity.FactEntry{
				"shares": {{End: "2023-03-31", Val: 100, Form: "10-Q"}},
			}},
		},
		"us-gaap": {
			"CommonStockSharesOutstanding": entity.FactTag{Units: map[string][]entity.FactEntry{
				"shares": {{End: "2023-03-31", Val: 200, Form: "10-Q"}},
			}},
		},
	}

	snaps, err := usecase.ExtractShareSnapshots(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(snaps))
	}
	// us-gaap は走査順で dei より後なので上書きする
	if snaps[0].Shares != 200 {
		t.Errorf("expected 200 (us-gaap wins), got %v", snaps[0].Shares)
	}
}

// TestExtractShareSnapshots_NoData は認識できるタグが無い場合に
// ErrNoShareData を返すことをテストします。
func TestExtractShareSnapshots_NoData(t *testing.T) {
	tests := []struct {
		name  string
		facts entity.CompanyFacts
	}{
		{name: "empty tree", facts: entity.CompanyFacts{}},
		{name: "nil tree", facts: nil},
		{
			name: "unrelated tag only",
			facts: facts("us-gaap", "Revenues", "USD",
				entity.FactEntry{End: "2023-03-31", Val: 1e9, Form: "10-Q"}),
		},
		{
			name: "recognized tag but wrong forms",
			facts: facts("dei", "EntityCommonStockSharesOutstanding", "shares",
				entity.FactEntry{End: "2023-03-31", Val: 100, Form: "8-K"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := usecase.ExtractShareSnapshots(tt.facts)
			if !errors.Is(err, usecase.ErrNoShareData) {
				t.Errorf("expected ErrNoShareData, got %v", err)
			}
		})
	}
}
