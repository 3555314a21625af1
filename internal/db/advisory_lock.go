package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/cyphera/cyphera-wallets/internal/logger"
)

const advisoryUnlockTimeout = 5 * time.Second

// AdvisoryLocker takes session-level Postgres advisory locks keyed by name.
// Each held lock pins one pool connection until released.
type AdvisoryLocker struct {
	pool *pgxpool.Pool
}

func NewAdvisoryLocker(pool *pgxpool.Pool) *AdvisoryLocker {
	return &AdvisoryLocker{pool: pool}
}

// Lock blocks until the lock for name is held or ctx is done.
func (l *AdvisoryLocker) Lock(ctx context.Context, name string) (func(), error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock(hashtextextended($1, 0))", name); err != nil {
		// The session may still hold the lock if only the reply was lost.
		conn.Conn().Close(context.Background())
		conn.Release()
		return nil, fmt.Errorf("failed to take advisory lock %s: %w", name, err)
	}

	return func() {
		unlockCtx, cancel := context.WithTimeout(context.Background(), advisoryUnlockTimeout)
		defer cancel()
		if _, err := conn.Exec(unlockCtx, "SELECT pg_advisory_unlock(hashtextextended($1, 0))", name); err != nil {
			logger.Log.Error("Failed to release advisory lock", zap.String("lock", name), zap.Error(err))
			conn.Conn().Close(unlockCtx)
		}
		conn.Release()
	}, nil
}
