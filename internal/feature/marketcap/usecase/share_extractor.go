package usecase

import (
	"sort"
	"time"

	"govfunding_backend/internal/feature/marketcap/domain/entity"
)

// factSources は走査する (タクソノミー, タグ) の優先順リストです。
// 同じ期末日を複数のソースが報告した場合、リストの後方が前方を上書きします。
var factSources = []struct{ taxonomy, tag string }{
	{"dei", "EntityCommonStockSharesOutstanding"},
	{"dei", "CommonStockSharesOutstanding"},
	{"us-gaap", "EntityCommonStockSharesOutstanding"},
	{"us-gaap", "CommonStockSharesOutstanding"},
}

// acceptedForms は株式数の根拠として採用する提出フォームです。
// 8-K などのノイズを除外します。
var acceptedForms = map[string]bool{
	"10-K": true,
	"10-Q": true,
}

// ExtractShareSnapshots は企業ファクトツリーから発行済株式数の観測値を抽出し、
// 期末日の昇順で返します。単位は "shares" を優先し、無ければ "pure" を使います。
// 認識できるタグが1つも無い場合は ErrNoShareData を返します。
func ExtractShareSnapshots(facts entity.CompanyFacts) ([]entity.ShareSnapshot, error) {
	type observation struct {
		val  float64
		form string
	}
	byDate := make(map[string]observation)

	for _, src := range factSources {
		tag, ok := facts[src.taxonomy][src.tag]
		if !ok {
			continue
		}
		entries, ok := tag.Units["shares"]
		if !ok {
			entries = tag.Units["pure"]
		}
		for _, e := range entries {
			if !acceptedForms[e.Form] {
				continue
			}
			// 後勝ち: 同一期末日は後から走査したソースで上書き
			byDate[e.End] = observation{val: e.Val, form: e.Form}
		}
	}

	if len(byDate) == 0 {
		return nil, ErrNoShareData
	}

	snapshots := make([]entity.ShareSnapshot, 0, len(byDate))
	for end, obs := range byDate {
		t, err := time.Parse("2006-01-02", end)
		if err != nil {
			// 不正な期末日の行だけを捨て、バッチ全体は落とさない
			continue
		}
		snapshots = append(snapshots, entity.ShareSnapshot{
			ReportDate: t,
			Shares:     obs.val,
			SourceForm: obs.form,
		})
	}
	if len(snapshots) == 0 {
		return nil, ErrNoShareData
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].ReportDate.Before(snapshots[j].ReportDate)
	})
	return snapshots, nil
}
