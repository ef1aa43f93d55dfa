package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/muhammadchandra19/stock-data/pkg/postgresql"
	mockPg "github.com/muhammadchandra19/stock-data/pkg/postgresql/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// fakeTx records commit and rollback calls; any other pgx.Tx method panics.
type fakeTx struct {
	pgx.Tx
	committed   bool
	rolledBack  bool
	commitErr   error
	rollbackErr error
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	return f.commitErr
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	f.rolledBack = true
	return f.rollbackErr
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name           string
		tx             *fakeTx
		beginErr       error
		fnErr          error
		wantErr        string
		wantCommitted  bool
		wantRolledBack bool
	}{
		{
			name:          "commit on success",
			tx:            &fakeTx{},
			wantCommitted: true,
		},
		{
			name:           "rollback on failure",
			tx:             &fakeTx{},
			fnErr:          errors.New("insert failed"),
			wantErr:        "insert failed",
			wantRolledBack: true,
		},
		{
			name:           "rollback failure is reported",
			tx:             &fakeTx{rollbackErr: errors.New("conn closed")},
			fnErr:          errors.New("insert failed"),
			wantErr:        "transaction failed: insert failed, rollback failed: conn closed",
			wantRolledBack: true,
		},
		{
			name:     "begin failure",
			beginErr: errors.New("refused"),
			wantErr:  "failed to begin transaction: refused",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			db := mockPg.NewMockPostgreSQLClient(ctrl)
			if tc.beginErr != nil {
				db.EXPECT().Begin(ctx).Return(nil, tc.beginErr)
			} else {
				db.EXPECT().Begin(ctx).Return(tc.tx, nil)
			}

			called := false
			err := postgresql.WithTx(ctx, db, func(txCtx context.Context) error {
				called = true
				tx, ok := postgresql.GetTx(txCtx)
				assert.True(t, ok)
				assert.Same(t, tc.tx, tx)
				return tc.fnErr
			})

			if tc.wantErr != "" {
				assert.EqualError(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}

			if tc.tx != nil {
				assert.True(t, called)
				assert.Equal(t, tc.wantCommitted, tc.tx.committed)
				assert.Equal(t, tc.wantRolledBack, tc.tx.rolledBack)
			} else {
				assert.False(t, called)
			}
		})
	}
}

func TestGetTx_Missing(t *testing.T) {
	_, ok := postgresql.GetTx(context.Background())
	assert.False(t, ok)

	tx := postgresql.NewTransaction(nil)
	assert.EqualError(t, tx.Commit(context.Background()), "no transaction found in context")
	assert.EqualError(t, tx.Rollback(context.Background()), "no transaction found in context")
}
