package health

import (
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/tawonga-banda/pharmacy-pos/internal/config"
)

func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	options := []health.Option{
		health.WithComponent(health.Component{
			Name:    "pharmacy-pos",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
	}

	if cfg.Redis.Enabled {
		options = append(options, health.WithChecks(
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(healthRedis.Config{
					DSN: fmt.Sprintf("redis://%s/%d", cfg.Redis.Addr, cfg.Redis.DB),
				}),
			},
		))
	}

	h, err := health.New(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
