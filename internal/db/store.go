package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/cyphera/cyphera-wallets/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Store is the durable store: every query plus transactional execution.
type Store interface {
	Querier
	// ExecTx runs fn inside one serializable transaction. The Querier handed
	// to fn is bound to the transaction; fn's error rolls everything back.
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

// SQLStore implements Store on a pgx connection pool.
type SQLStore struct {
	*Queries
	pool *pgxpool.Pool
}

// NewStore creates a Store backed by pool.
func NewStore(pool *pgxpool.Pool) *SQLStore {
	return &SQLStore{
		Queries: New(pool),
		pool:    pool,
	}
}

// Pool exposes the underlying pool for health checks.
func (s *SQLStore) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *SQLStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		// After a commit Rollback returns ErrTxClosed.
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction", zap.Error(rollbackErr))
		}
	}()

	if err := fn(s.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

var _ Store = (*SQLStore)(nil)
