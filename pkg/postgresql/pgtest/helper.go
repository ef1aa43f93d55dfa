package pgtest

import (
	"context"
	"testing"

	"github.com/muhammadchandra19/stock-data/pkg/postgresql"
	"github.com/stretchr/testify/require"
)

// TestHelper provides common testing utilities
type TestHelper struct {
	Container *TestContainer
	T         *testing.T
}

// NewTestHelperWithConfig creates a new test helper with custom configuration.
// The test is skipped in short mode.
func NewTestHelperWithConfig(t *testing.T, config *TestContainerConfig) *TestHelper {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	container, err := NewTestContainer(context.Background(), config)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Close(); err != nil {
			t.Logf("Failed to close test container: %v", err)
		}
	})

	return &TestHelper{
		Container: container,
		T:         t,
	}
}

// NewTestHelperWithMigrations creates a test helper and runs migrations from the specified path
func NewTestHelperWithMigrations(t *testing.T, migrationsPath string) *TestHelper {
	config := DefaultTestContainerConfig()
	config.MigrationsPath = migrationsPath
	return NewTestHelperWithConfig(t, config)
}

// CleanupTables truncates the given tables between tests
func (h *TestHelper) CleanupTables(tables ...string) {
	require.NoError(h.T, h.Container.Truncate(tables...))
}

// GetClient returns the shared PostgreSQL client
func (h *TestHelper) GetClient() postgresql.PostgreSQLClient {
	return h.Container.Client
}

// GetConnector returns a connector dialing the test database
func (h *TestHelper) GetConnector() postgresql.Connector {
	return h.Container.Connector()
}
