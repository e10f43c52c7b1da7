package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// NewClient conecta no Redis. Sem Redis a API continua funcionando, apenas
// sem cache de disponibilidade.
func NewClient(addr, password string, log *zap.Logger) *redis.Client {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, availability cache disabled",
			zap.String("addr", addr),
			zap.Error(err),
		)
		return nil
	}

	return rdb
}
