package bar

import (
	"context"

	barDomain "github.com/muhammadchandra19/stock-data/internal/domain/bar"
)

//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock

// BarRepository represents the repository interface for daily bars.
type BarRepository interface {
	// UpsertBatch writes bars in one transaction. On conflict with an existing
	// (symbol, date) every price and volume column is replaced. Bars sharing
	// a (symbol, date) within the batch resolve to the last one.
	UpsertBatch(ctx context.Context, bars []*barDomain.DailyBar) error
	// DeleteAll removes every stored bar.
	DeleteAll(ctx context.Context) error
	// Latest returns up to limit bars for symbol ordered by date descending.
	Latest(ctx context.Context, symbol string, limit int) ([]*barDomain.DailyBar, error)
}
