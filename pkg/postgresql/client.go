package postgresql

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Client is a PostgreSQL client bound to a single connection.
type Client struct {
	conn   *pgx.Conn
	config Config
}

// Config is the PostgreSQL client configuration.
type Config struct {
	Host     string `env:"HOST" envDefault:"localhost" validate:"required"`
	Port     int    `env:"PORT" envDefault:"5432" validate:"gt=0,lte=65535"`
	Database string `env:"DATABASE" envDefault:"stock_db" validate:"required"`
	Username string `env:"USERNAME" envDefault:"stock_user" validate:"required"`
	Password string `env:"PASSWORD" envDefault:"stock_pass"`

	// SSL configuration
	SSLMode     string `env:"SSL_MODE" envDefault:"disable"`
	SSLCert     string `env:"SSL_CERT"`
	SSLKey      string `env:"SSL_KEY"`
	SSLRootCert string `env:"SSL_ROOT_CERT"`

	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"5s"`

	// Application name for connection tracking
	ApplicationName string `env:"APPLICATION_NAME" envDefault:"stock-data"`

	SearchPath string `env:"SEARCH_PATH" envDefault:"public"`
}

// Ensure Client implements PostgreSQLClient interface
var _ PostgreSQLClient = (*Client)(nil)

// NewClient opens a new connection using the given configuration.
func NewClient(ctx context.Context, config Config) (PostgreSQLClient, error) {
	return connect(ctx, buildConnectionString(config), config)
}

// NewClientFromConnString opens a new connection from a raw connection string.
func NewClientFromConnString(ctx context.Context, connString string) (PostgreSQLClient, error) {
	return connect(ctx, connString, Config{})
}

func connect(ctx context.Context, connString string, config Config) (*Client, error) {
	pgxConfig, err := pgx.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgresql config: %w", err)
	}

	if config.ConnectTimeout > 0 {
		pgxConfig.ConnectTimeout = config.ConnectTimeout
	}
	if config.ApplicationName != "" {
		pgxConfig.RuntimeParams["application_name"] = config.ApplicationName
	}
	if config.SearchPath != "" {
		pgxConfig.RuntimeParams["search_path"] = config.SearchPath
	}

	conn, err := pgx.ConnectConfig(ctx, pgxConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgresql: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("failed to ping postgresql: %w", err)
	}

	if config.Database == "" {
		cc := conn.Config()
		config.Host = cc.Host
		config.Port = int(cc.Port)
		config.Database = cc.Database
	}

	return &Client{
		conn:   conn,
		config: config,
	}, nil
}

// buildConnectionString constructs the PostgreSQL connection URL. User info
// and query values are escaped so any password survives parsing.
func buildConnectionString(config Config) string {
	sslMode := config.SSLMode
	if sslMode == "" {
		sslMode = "prefer"
	}

	params := url.Values{}
	params.Set("sslmode", sslMode)
	if config.SSLCert != "" {
		params.Set("sslcert", config.SSLCert)
	}
	if config.SSLKey != "" {
		params.Set("sslkey", config.SSLKey)
	}
	if config.SSLRootCert != "" {
		params.Set("sslrootcert", config.SSLRootCert)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(config.Username, config.Password),
		Host:     net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
		Path:     "/" + config.Database,
		RawQuery: params.Encode(),
	}
	return u.String()
}

// DatabaseName returns the database name.
func (c *Client) DatabaseName() string {
	return c.config.Database
}

// Host returns the host.
func (c *Client) Host() string {
	return c.config.Host
}

// Port returns the port.
func (c *Client) Port() int {
	return c.config.Port
}

// Close closes the underlying connection.
func (c *Client) Close(ctx context.Context) error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close(ctx)
}

// Ping checks the connection is still alive.
func (c *Client) Ping(ctx context.Context) error {
	return c.conn.Ping(ctx)
}

// Exec executes a query without returning any rows
func (c *Client) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx, ok := GetTx(ctx); ok {
		return tx.Exec(ctx, sql, args...)
	}
	return c.conn.Exec(ctx, sql, args...)
}

// Query executes a query that returns rows.
func (c *Client) Query(ctx context.Context, sql string, args ...any) (RowsInterface, error) {
	if tx, ok := GetTx(ctx); ok {
		rows, err := tx.Query(ctx, sql, args...)
		if err != nil {
			return nil, err
		}
		return NewRowsWrapper(rows), nil
	}

	rows, err := c.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return NewRowsWrapper(rows), nil
}

// QueryRow executes a query that is expected to return at most one row
func (c *Client) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx, ok := GetTx(ctx); ok {
		return tx.QueryRow(ctx, sql, args...)
	}
	return c.conn.QueryRow(ctx, sql, args...)
}

// Begin starts a transaction
func (c *Client) Begin(ctx context.Context) (pgx.Tx, error) {
	return c.conn.Begin(ctx)
}

// BeginTx starts a transaction with specific options
func (c *Client) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return c.conn.BeginTx(ctx, txOptions)
}
