package outbox

import (
	"context"
	"log/slog"
	"time"

	"physio-scheduler/internal/infra/metrics"
	"physio-scheduler/internal/infra/repository"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
	"physio-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type JobStore interface {
	ClaimDue(ctx context.Context, tx sqlc.DBTX, limit int32) ([]repository.NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	MarkRetry(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, maxAttempts int32) error
}

type MessagePublisher interface {
	Publish(ctx context.Context, routingKey, messageID string, body []byte) error
}

type Settings struct {
	Interval    time.Duration
	BatchSize   int32
	MaxAttempts int32
}

// Relay drains notification_jobs to the broker. Delivery is at-least-once:
// a publish followed by a failed commit is sent again on the next tick.
type Relay struct {
	uow      shared.UnitOfWork
	store    JobStore
	pub      MessagePublisher
	settings Settings
}

func NewRelay(uow shared.UnitOfWork, store JobStore, pub MessagePublisher, settings Settings) *Relay {
	return &Relay{uow: uow, store: store, pub: pub, settings: settings}
}

func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.settings.Interval)
	defer ticker.Stop()

	for {
		if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
			slog.Error("outbox relay tick failed", "error", err.Error())
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce publishes one batch and reports how many jobs were sent.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		jobs, err := r.store.ClaimDue(ctx, tx.DB(), r.settings.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if pubErr := r.pub.Publish(ctx, job.Topic, job.ID.String(), job.Payload); pubErr != nil {
				slog.Warn("outbox publish failed",
					"job_id", job.ID.String(),
					"topic", job.Topic,
					"attempt", job.Attempts+1,
					"error", pubErr.Error())
				metrics.IncOutboxPublished(job.Topic, "error")
				if err := r.store.MarkRetry(ctx, tx.DB(), job.ID, pubErr.Error(), r.settings.MaxAttempts); err != nil {
					return err
				}
				continue
			}

			metrics.IncOutboxPublished(job.Topic, "sent")
			if err := r.store.MarkSent(ctx, tx.DB(), job.ID); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if sent > 0 {
		slog.Info("outbox batch published", "count", sent)
	}
	return sent, nil
}
