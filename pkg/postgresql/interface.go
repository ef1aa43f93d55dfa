package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// RowsInterface wraps pgx.Rows for mocking
type RowsInterface interface {
	Next() bool
	Scan(dest ...any) error
	Close()
	Err() error
}

// RowsWrapper wraps pgx.Rows to implement RowsInterface
type RowsWrapper struct {
	rows pgx.Rows
}

// NewRowsWrapper creates a new RowsWrapper.
func NewRowsWrapper(rows pgx.Rows) RowsInterface {
	return &RowsWrapper{rows: rows}
}

// Next returns true if there are more rows to read.
func (r *RowsWrapper) Next() bool {
	return r.rows.Next()
}

// Scan scans the next row into the given destination.
func (r *RowsWrapper) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

// Close closes the RowsWrapper.
func (r *RowsWrapper) Close() {
	r.rows.Close()
}

// Err returns the error from the RowsWrapper.
func (r *RowsWrapper) Err() error {
	return r.rows.Err()
}

// PostgreSQLClient defines the interface for PostgreSQL operations.
type PostgreSQLClient interface {
	// Basic query operations
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (RowsInterface, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row

	// Transaction operations
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)

	// Connection management
	Ping(ctx context.Context) error
	Close(ctx context.Context) error

	// Database introspection
	DatabaseName() string
	Host() string
	Port() int
}

// Connector opens a fresh client for every call.
type Connector interface {
	Connect(ctx context.Context) (PostgreSQLClient, error)
}

// ConnectorFunc adapts a function to the Connector interface.
type ConnectorFunc func(ctx context.Context) (PostgreSQLClient, error)

// Connect calls f(ctx).
func (f ConnectorFunc) Connect(ctx context.Context) (PostgreSQLClient, error) {
	return f(ctx)
}

// NewConnector returns a Connector dialing with the given configuration.
func NewConnector(config Config) Connector {
	return ConnectorFunc(func(ctx context.Context) (PostgreSQLClient, error) {
		return NewClient(ctx, config)
	})
}

// QueryBuilder provides a fluent interface for building queries
type QueryBuilder interface {
	Select(columns ...string) QueryBuilder
	From(table string) QueryBuilder
	Where(condition string, args ...any) QueryBuilder
	OrderBy(column string, desc ...bool) QueryBuilder
	Limit(limit int) QueryBuilder
	Build() (string, []any)
}

// InsertBuilder provides a fluent interface for building INSERT queries
type InsertBuilder interface {
	Into(table string) InsertBuilder
	Columns(columns ...string) InsertBuilder
	Values(values ...any) InsertBuilder
	OnConflict(columns ...string) InsertBuilder
	OnConflictDoUpdateExcluded(columns ...string) InsertBuilder
	Build() (string, []any)
}

// DeleteBuilder provides a fluent interface for building DELETE queries
type DeleteBuilder interface {
	From(table string) DeleteBuilder
	Where(condition string, args ...any) DeleteBuilder
	Build() (string, []any)
}
