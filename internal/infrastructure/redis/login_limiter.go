// Package redis limita los intentos de login con una ventana fija en Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewClient crea y valida la conexión a Redis desde una URL redis://.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// LoginLimiter cuenta intentos por clave (IP o email) en ventanas de duración fija.
type LoginLimiter struct {
	rdb    redis.Cmdable
	limit  int64
	window time.Duration
	prefix string
}

// NewLoginLimiter permite limit intentos por ventana.
func NewLoginLimiter(rdb redis.Cmdable, limit int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{rdb: rdb, limit: int64(limit), window: window, prefix: "gelato:login:"}
}

// Allow registra un intento y devuelve false si la clave superó el límite en la ventana actual.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.prefix + key
	var incr *redis.IntCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("login limiter: %w", err)
	}
	return incr.Val() <= l.limit, nil
}

// Reset borra el contador de la clave (tras un login correcto).
func (l *LoginLimiter) Reset(ctx context.Context, key string) error {
	if err := l.rdb.Del(ctx, l.prefix+key).Err(); err != nil {
		return fmt.Errorf("login limiter reset: %w", err)
	}
	return nil
}
