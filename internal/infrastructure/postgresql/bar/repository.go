package bar

import (
	"context"

	barDomain "github.com/muhammadchandra19/stock-data/internal/domain/bar"
	"github.com/muhammadchandra19/stock-data/pkg/errors"
	"github.com/muhammadchandra19/stock-data/pkg/logger"
	"github.com/muhammadchandra19/stock-data/pkg/postgresql"
)

const tableName = "stock_data"

var (
	conflictColumns = []string{"symbol", "date"}
	valueColumns    = []string{"open", "high", "low", "close", "volume"}
	selectColumns   = []string{"date", "open", "high", "low", "close", "volume"}
)

// Repository is the PostgreSQL repository for daily bars.
type Repository struct {
	db     postgresql.PostgreSQLClient
	logger logger.Interface
}

// NewRepository creates a new bar repository.
func NewRepository(db postgresql.PostgreSQLClient, log logger.Interface) *Repository {
	return &Repository{
		db:     db,
		logger: log,
	}
}

// UpsertBatch writes every bar inside a single transaction.
func (r *Repository) UpsertBatch(ctx context.Context, bars []*barDomain.DailyBar) error {
	if len(bars) == 0 {
		return nil
	}
	bars = lastPerKey(bars)

	builder := postgresql.NewInsertBuilder().
		Into(tableName).
		Columns(append(append([]string{}, conflictColumns...), valueColumns...)...)
	for _, b := range bars {
		builder.Values(b.Symbol, barDomain.Day(b.Date), b.Open, b.High, b.Low, b.Close, b.Volume)
	}
	query, args := builder.
		OnConflict(conflictColumns...).
		OnConflictDoUpdateExcluded(valueColumns...).
		Build()

	err := postgresql.WithTx(ctx, r.db, func(txCtx context.Context) error {
		_, err := r.db.Exec(txCtx, query, args...)
		return err
	})
	if err != nil {
		return errors.Wrapf(err, "upsert %d bars", len(bars))
	}

	r.logger.Debug("bars upserted", logger.NewField("count", len(bars)))
	return nil
}

// lastPerKey collapses bars sharing a (symbol, date) to the last one given.
// A single INSERT ... ON CONFLICT may not touch the same row twice.
func lastPerKey(bars []*barDomain.DailyBar) []*barDomain.DailyBar {
	index := make(map[barDomain.Key]int, len(bars))
	out := make([]*barDomain.DailyBar, 0, len(bars))
	for _, b := range bars {
		key := b.Key()
		if i, ok := index[key]; ok {
			out[i] = b
			continue
		}
		index[key] = len(out)
		out = append(out, b)
	}
	return out
}

// DeleteAll removes every row from the bar table.
func (r *Repository) DeleteAll(ctx context.Context) error {
	query, args := postgresql.NewDeleteBuilder().From(tableName).Build()

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(err, "delete bars")
	}

	r.logger.Info("existing bars cleared", logger.NewField("count", tag.RowsAffected()))
	return nil
}

// Latest returns the newest bars for symbol. An unknown symbol yields an empty slice.
func (r *Repository) Latest(ctx context.Context, symbol string, limit int) ([]*barDomain.DailyBar, error) {
	query, args := postgresql.NewQueryBuilder().
		Select(selectColumns...).
		From(tableName).
		Where("symbol = ?", symbol).
		OrderBy("date", true).
		Limit(limit).
		Build()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	defer rows.Close()

	bars := make([]*barDomain.DailyBar, 0, max(limit, 0))
	for rows.Next() {
		b := &barDomain.DailyBar{Symbol: symbol}
		if err := rows.Scan(&b.Date, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, errors.Wrapf(err, "scan bar")
		}
		bars = append(bars, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.TracerFromError(err)
	}

	return bars, nil
}
