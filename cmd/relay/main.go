package main

import (
	"context"
	"log/slog"
	"os"

	"physio-scheduler/cmd/bootstrap"
	"physio-scheduler/internal/infra/mq"
	"physio-scheduler/internal/infra/outbox"
	"physio-scheduler/internal/infra/repository"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
	"physio-scheduler/internal/infra/uow"
	"physio-scheduler/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

func newPublisher(lc fx.Lifecycle, cfg config.Config) (*mq.Publisher, error) {
	pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func newRelay(pool *pgxpool.Pool, pub *mq.Publisher, cfg config.Config) *outbox.Relay {
	q := sqlc.New()
	return outbox.NewRelay(
		uow.NewPostgresUoW(pool, q),
		repository.NewNotificationRepository(q, pool),
		pub,
		outbox.Settings{
			Interval:    cfg.MQ.Interval,
			BatchSize:   cfg.MQ.BatchSize,
			MaxAttempts: cfg.MQ.MaxAttempts,
		},
	)
}

func startRelay(lc fx.Lifecycle, relay *outbox.Relay, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("📮 アウトボックスリレーを起動します")
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			logger.Info("🛑 アウトボックスリレーを停止します")
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.MetricsModule,
		fx.Provide(
			newPublisher,
			newRelay,
		),
		fx.Invoke(
			startRelay,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("リレーの起動に失敗しました", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("リレーの停止に失敗しました", "error", err)
	}

	slog.Info("リレーが正常に停止しました")
}
