package database

import (
	"context"
	"time"

	"github.com/Madhav-Gupta-28/noemie-shop-go/config"
	"github.com/Madhav-Gupta-28/noemie-shop-go/logger"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis builds a client from cfg and pings it.
func ConnectRedis(cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	opts.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second
	opts.DialTimeout = time.Duration(cfg.DialTimeout) * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info().Str("addr", opts.Addr).Msg("connected to Redis")
	return client, nil
}
