package infra

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type Redis struct {
	Client *redis.Client
}

func NewRedis(config RedisConfig) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info().Str("addr", config.Addr).Msg("Connected to Redis!")

	return &Redis{
		Client: rdb,
	}, nil
}

// IncrWithTTL 計數加一並重設過期時間，回傳加一後的值
func (r *Redis) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := r.Client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("incr %s: %w", key, err)
	}
	return incr.Val(), nil
}

// GetCounters 批次讀取計數，不存在的 key 視為 0
func (r *Redis) GetCounters(ctx context.Context, keys ...string) ([]int64, error) {
	values, err := r.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("mget: %w", err)
	}
	counts := make([]int64, len(keys))
	for i, v := range values {
		if str, ok := v.(string); ok {
			counts[i], _ = strconv.ParseInt(str, 10, 64)
		}
	}
	return counts, nil
}

func (r *Redis) Close() error {
	return r.Client.Close()
}
