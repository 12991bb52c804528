package repository

import (
	"context"
	"time"

	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/infra"
	"physio-scheduler/internal/infra/repository/converter"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
)

type TemplateWriteQueries interface {
	UpsertTemplateRule(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertTemplateRuleParams) error
}

type TemplateRepository struct {
	queries TemplateWriteQueries
	db      sqlc.DBTX
}

func NewTemplateRepository(queries TemplateWriteQueries, db sqlc.DBTX) *TemplateRepository {
	return &TemplateRepository{
		queries: queries,
		db:      db,
	}
}

// Replace writes all seven rows. Atomicity comes from the caller's transaction.
func (r *TemplateRepository) Replace(ctx context.Context, tx sqlc.DBTX, tpl availability.WeeklyTemplate, at time.Time) error {
	for _, rule := range tpl.Ordered() {
		params := converter.TemplateRuleToParams(tpl.ProviderID, rule, at)
		if err := r.queries.UpsertTemplateRule(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to upsert template rule", err)
		}
	}
	return nil
}
