package pgsql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/voyago/trip_planner_app/internal/repositories/database/pgsql"
)

// stubTx implements pgx.Tx for the methods the base repository touches; the
// embedded interface covers the rest.
type stubTx struct {
	pgx.Tx
	rollbackErr error
}

func (t *stubTx) Rollback(ctx context.Context) error {
	return t.rollbackErr
}

func TestRollback_IgnoresClosedTx(t *testing.T) {
	repo := &pgsql.BaseRepository{}

	// Deferred rollback after a successful commit sees ErrTxClosed.
	err := repo.Rollback(context.Background(), &stubTx{rollbackErr: pgx.ErrTxClosed})
	assert.NoError(t, err)

	err = repo.Rollback(context.Background(), &stubTx{rollbackErr: nil})
	assert.NoError(t, err)
}

func TestRollback_SurfacesRealFailures(t *testing.T) {
	repo := &pgsql.BaseRepository{}

	err := repo.Rollback(context.Background(), &stubTx{rollbackErr: errors.New("connection reset")})
	assert.Error(t, err)
}
