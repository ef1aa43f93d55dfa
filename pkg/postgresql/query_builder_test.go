package postgresql_test

import (
	"testing"

	"github.com/muhammadchandra19/stock-data/pkg/postgresql"
	"github.com/stretchr/testify/assert"
)

func TestQueryBuilder_Build(t *testing.T) {
	testCases := []struct {
		name      string
		build     func() postgresql.QueryBuilder
		wantQuery string
		wantArgs  []any
	}{
		{
			name: "select all",
			build: func() postgresql.QueryBuilder {
				return postgresql.NewQueryBuilder().From("stock_data")
			},
			wantQuery: "SELECT * FROM stock_data",
			wantArgs:  []any{},
		},
		{
			name: "latest bars for symbol",
			build: func() postgresql.QueryBuilder {
				return postgresql.NewQueryBuilder().
					Select("date", "open", "high", "low", "close", "volume").
					From("stock_data").
					Where("symbol = ?", "AAPL").
					OrderBy("date", true).
					Limit(30)
			},
			wantQuery: "SELECT date, open, high, low, close, volume FROM stock_data WHERE symbol = $1 ORDER BY date DESC LIMIT $2",
			wantArgs:  []any{"AAPL", 30},
		},
		{
			name: "multiple conditions ascending",
			build: func() postgresql.QueryBuilder {
				return postgresql.NewQueryBuilder().
					Select("symbol").
					From("stock_data").
					Where("date >= ?", "2025-04-11").
					Where("volume BETWEEN ? AND ?", 1, 2).
					OrderBy("symbol")
			},
			wantQuery: "SELECT symbol FROM stock_data WHERE date >= $1 AND volume BETWEEN $2 AND $3 ORDER BY symbol ASC",
			wantArgs:  []any{"2025-04-11", 1, 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, args := tc.build().Build()
			assert.Equal(t, tc.wantQuery, query)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestInsertBuilder_Build(t *testing.T) {
	query, args := postgresql.NewInsertBuilder().
		Into("stock_data").
		Columns("symbol", "date", "close").
		Values("AAPL", "2025-04-11", 1.5).
		Values("MSFT", "2025-04-11", 2.5).
		OnConflict("symbol", "date").
		OnConflictDoUpdateExcluded("close").
		Build()

	assert.Equal(t,
		"INSERT INTO stock_data (symbol, date, close) VALUES ($1, $2, $3), ($4, $5, $6) "+
			"ON CONFLICT (symbol, date) DO UPDATE SET close = EXCLUDED.close",
		query)
	assert.Equal(t, []any{"AAPL", "2025-04-11", 1.5, "MSFT", "2025-04-11", 2.5}, args)
}

func TestDeleteBuilder_Build(t *testing.T) {
	query, args := postgresql.NewDeleteBuilder().From("stock_data").Build()
	assert.Equal(t, "DELETE FROM stock_data", query)
	assert.Empty(t, args)

	query, args = postgresql.NewDeleteBuilder().
		From("stock_data").
		Where("symbol = ?", "NVDA").
		Where("date < ?", "2025-05-11").
		Build()
	assert.Equal(t, "DELETE FROM stock_data WHERE symbol = $1 AND date < $2", query)
	assert.Equal(t, []any{"NVDA", "2025-05-11"}, args)
}
