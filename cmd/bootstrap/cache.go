package bootstrap

import (
	"context"

	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/infra/cache"
	"physio-scheduler/internal/infra/readstore"
	"physio-scheduler/internal/pkg/config"
	"physio-scheduler/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
		fx.Annotate(
			NewTemplateCache,
			fx.As(new(shared.TemplateCache)),
			fx.As(new(availability.TemplateSource)),
		),
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}

func NewTemplateCache(client *redis.Client, store *readstore.ScheduleReadStore, cfg config.Config) *cache.TemplateCache {
	return cache.NewTemplateCache(client, store, cfg.Redis.TemplateCacheTTL)
}
