package receipts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tawonga-banda/pharmacy-pos/internal/config"
	"github.com/tawonga-banda/pharmacy-pos/internal/models"
)

// RedisSink pushes rendered receipts onto a Redis list so an external
// printer/audit process can drain them.
type RedisSink struct {
	client redis.Cmdable
	list   string
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", slog.Any("error", err))
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis", slog.String("addr", cfg.Redis.Addr))

	return client, nil
}

func NewRedisSink(client redis.Cmdable, list string) *RedisSink {
	return &RedisSink{client: client, list: list}
}

func (s *RedisSink) Name() string { return "redis" }

func (s *RedisSink) Publish(ctx context.Context, receipt *models.Receipt, rendered string) error {

	if err := s.client.LPush(ctx, s.list, rendered).Err(); err != nil {
		return fmt.Errorf("pushing receipt %s to list %q: %w", receipt.ID, s.list, err)
	}

	return nil
}
