// Package pgtest runs a disposable PostgreSQL server for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/muhammadchandra19/stock-data/pkg/postgresql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestContainer wraps a PostgreSQL testcontainer with utilities
type TestContainer struct {
	Container testcontainers.Container
	Client    postgresql.PostgreSQLClient
	ConnStr   string
	Config    postgresql.Config
	ctx       context.Context
}

// TestContainerConfig holds configuration for the test container
type TestContainerConfig struct {
	Image            string
	Database         string
	Username         string
	Password         string
	MigrationsPath   string // Path to migration files
	MigrationPattern string // Pattern to match migration files (default: "*.up.sql")
	StartupTimeout   time.Duration
}

// DefaultTestContainerConfig returns a default configuration
func DefaultTestContainerConfig() *TestContainerConfig {
	return &TestContainerConfig{
		Image:            "postgres:15-alpine",
		Database:         "stock_test_db",
		Username:         "stock_test_user",
		Password:         "stock_test_pass",
		MigrationPattern: "*.up.sql",
		StartupTimeout:   3 * time.Minute,
	}
}

// NewTestContainer creates and starts a new PostgreSQL test container
func NewTestContainer(ctx context.Context, config *TestContainerConfig) (*TestContainer, error) {
	if config == nil {
		config = DefaultTestContainerConfig()
	}

	container, err := postgres.Run(ctx, config.Image,
		postgres.WithDatabase(config.Database),
		postgres.WithUsername(config.Username),
		postgres.WithPassword(config.Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(config.StartupTimeout),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	client, err := postgresql.NewClientFromConnString(ctx, connStr)
	if err != nil {
		container.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	tc := &TestContainer{
		Container: container,
		Client:    client,
		ConnStr:   connStr,
		Config: postgresql.Config{
			Host:     host,
			Port:     port.Int(),
			Database: config.Database,
			Username: config.Username,
			Password: config.Password,
			SSLMode:  "disable",
		},
		ctx: ctx,
	}

	if config.MigrationsPath != "" {
		if err := tc.RunMigrations(config.MigrationsPath, config.MigrationPattern); err != nil {
			tc.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return tc, nil
}

// Close closes the connection and terminates the container
func (tc *TestContainer) Close() error {
	var errs []string

	if tc.Client != nil {
		if err := tc.Client.Close(tc.ctx); err != nil {
			errs = append(errs, fmt.Sprintf("failed to close client: %v", err))
		}
	}

	if tc.Container != nil {
		if err := tc.Container.Terminate(tc.ctx); err != nil {
			errs = append(errs, fmt.Sprintf("failed to terminate container: %v", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("cleanup errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// Connector dials a fresh connection to the container for every call,
// built from Config the same way the services build theirs.
func (tc *TestContainer) Connector() postgresql.Connector {
	return postgresql.NewConnector(tc.Config)
}

// RunMigrations runs SQL migration files from the specified directory
func (tc *TestContainer) RunMigrations(migrationsPath, pattern string) error {
	if pattern == "" {
		pattern = "*.up.sql"
	}

	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		return fmt.Errorf("migrations path does not exist: %s", migrationsPath)
	}

	files, err := migrationFiles(migrationsPath, pattern)
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no migration files found in %s with pattern %s", migrationsPath, pattern)
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		for _, stmt := range splitStatements(string(content)) {
			if _, err := tc.Client.Exec(tc.ctx, stmt); err != nil {
				return fmt.Errorf("failed to execute statement in %s: %w\nStatement: %s",
					filepath.Base(file), err, stmt)
			}
		}
	}

	return nil
}

// Truncate empties the given tables.
func (tc *TestContainer) Truncate(tables ...string) error {
	for _, table := range tables {
		if _, err := tc.Client.Exec(tc.ctx, fmt.Sprintf("TRUNCATE TABLE %s", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}
	return nil
}

// splitStatements drops comment lines and splits on statement-terminating semicolons.
func splitStatements(sql string) []string {
	var statements []string
	var current strings.Builder

	for _, line := range strings.Split(sql, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}

		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(line, ";") {
			statements = append(statements, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}

	if rest := strings.TrimSpace(current.String()); rest != "" {
		statements = append(statements, rest)
	}

	return statements
}

// migrationFiles returns sorted paths of files matching the pattern
func migrationFiles(migrationsPath, pattern string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(migrationsPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		matched, err := filepath.Match(pattern, filepath.Base(path))
		if err != nil {
			return err
		}
		if matched {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// timestamp-prefixed names sort in apply order
	sort.Strings(files)

	return files, nil
}
