// Package usecase は時価総額ヒストリー算出のビジネスロジックを実装します。
package usecase

import "errors"

// ErrNoShareData is returned when the filing facts contain none of the
// recognized taxonomy/tag/form combinations. It is distinct from transport
// errors so callers can map it to a not-found response.
var ErrNoShareData = errors.New("no share data found in filings")
