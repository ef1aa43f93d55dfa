package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/muhammadchandra19/stock-data/pkg/postgresql"
	mockPg "github.com/muhammadchandra19/stock-data/pkg/postgresql/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type versionRow struct {
	version string
	err     error
}

func (r versionRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.version
	return nil
}

func TestCheckHealth(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		mockFn   func(db *mockPg.MockPostgreSQLClient)
		assertFn func(t *testing.T, h *postgresql.HealthCheck)
	}{
		{
			name: "healthy",
			mockFn: func(db *mockPg.MockPostgreSQLClient) {
				db.EXPECT().Ping(ctx).Return(nil)
				db.EXPECT().QueryRow(ctx, "SELECT version()").Return(versionRow{version: "PostgreSQL 15.4"})
			},
			assertFn: func(t *testing.T, h *postgresql.HealthCheck) {
				assert.True(t, h.IsHealthy())
				assert.Equal(t, "PostgreSQL 15.4", h.Version)
				assert.Empty(t, h.Error)
			},
		},
		{
			name: "ping fails",
			mockFn: func(db *mockPg.MockPostgreSQLClient) {
				db.EXPECT().Ping(ctx).Return(errors.New("connection refused"))
			},
			assertFn: func(t *testing.T, h *postgresql.HealthCheck) {
				assert.False(t, h.IsHealthy())
				assert.Equal(t, "ping failed: connection refused", h.Error)
			},
		},
		{
			name: "version query fails",
			mockFn: func(db *mockPg.MockPostgreSQLClient) {
				db.EXPECT().Ping(ctx).Return(nil)
				db.EXPECT().QueryRow(ctx, "SELECT version()").Return(versionRow{err: errors.New("boom")})
			},
			assertFn: func(t *testing.T, h *postgresql.HealthCheck) {
				assert.Equal(t, postgresql.StatusUnhealthy, h.Status)
				assert.Equal(t, "version query failed: boom", h.Error)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			db := mockPg.NewMockPostgreSQLClient(ctrl)
			db.EXPECT().DatabaseName().Return("stock_db")
			db.EXPECT().Host().Return("localhost")
			db.EXPECT().Port().Return(5432)
			tc.mockFn(db)

			h := postgresql.CheckHealth(ctx, db)
			assert.Equal(t, "stock_db", h.DatabaseName)
			assert.Equal(t, "localhost", h.Host)
			assert.Equal(t, 5432, h.Port)
			tc.assertFn(t, h)
		})
	}
}
