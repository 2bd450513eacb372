package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/meetwith/scheduler-backend/internal/model"
	"go.uber.org/zap"
)

const sessionPrefix = "session:"
const accountSessionsPrefix = "account_sessions:"

// RefreshTokenRepository stores refresh sessions mapped to account addresses,
// expiring with the configured session TTL.
type RefreshTokenRepository struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
	ttl    time.Duration
}

func NewRefreshTokenRepository(pool *redis.Pool, logger *zap.SugaredLogger, ttl time.Duration) *RefreshTokenRepository {
	return &RefreshTokenRepository{
		pool:   pool,
		logger: logger,
		ttl:    ttl,
	}
}

func (r *RefreshTokenRepository) Add(ctx context.Context, session, address string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get conn: %w", err)
	}
	defer r.closeConn(conn)

	reply, err := redis.String(conn.Do("SET", sessionPrefix+session, address, "NX", "PX", r.ttl.Milliseconds()))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return model.ErrAlreadyExists
		}
		return fmt.Errorf("set session: %w", err)
	}
	if reply != "OK" {
		return model.ErrAlreadyExists
	}

	if _, err := conn.Do("SADD", accountSessionsPrefix+address, session); err != nil {
		return fmt.Errorf("track session: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) Get(ctx context.Context, session string) (string, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return "", fmt.Errorf("get conn: %w", err)
	}
	defer r.closeConn(conn)

	address, err := redis.String(conn.Do("GET", sessionPrefix+session))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return "", model.ErrNoRecord
		}
		return "", fmt.Errorf("get session: %w", err)
	}

	return address, nil
}

func (r *RefreshTokenRepository) Refresh(ctx context.Context, old, new string) error {
	address, err := r.Get(ctx, old)
	if err != nil {
		return err
	}

	if err := r.Add(ctx, new, address); err != nil {
		return err
	}

	return r.Delete(ctx, old)
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, session string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get conn: %w", err)
	}
	defer r.closeConn(conn)

	address, err := redis.String(conn.Do("GET", sessionPrefix+session))
	if err != nil && !errors.Is(err, redis.ErrNil) {
		return fmt.Errorf("get session: %w", err)
	}

	if _, err := conn.Do("DEL", sessionPrefix+session); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	if address != "" {
		if _, err := conn.Do("SREM", accountSessionsPrefix+address, session); err != nil {
			return fmt.Errorf("untrack session: %w", err)
		}
	}

	return nil
}

func (r *RefreshTokenRepository) DeleteByAddress(ctx context.Context, address string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get conn: %w", err)
	}
	defer r.closeConn(conn)

	sessions, err := redis.Strings(conn.Do("SMEMBERS", accountSessionsPrefix+address))
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	for _, s := range sessions {
		if _, err := conn.Do("DEL", sessionPrefix+s); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}

	if _, err := conn.Do("DEL", accountSessionsPrefix+address); err != nil {
		return fmt.Errorf("delete session set: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) closeConn(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		r.logger.Errorw("failed closing redis connection", "err", err)
	}
}
