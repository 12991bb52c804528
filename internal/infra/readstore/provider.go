package readstore

import (
	"context"

	"physio-scheduler/internal/infra"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
	"physio-scheduler/internal/pkg/pgconv"
	"physio-scheduler/internal/usecase/shared"
)

type ProviderReadQueries interface {
	GetProvider(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Providers, error)
}

type ProviderReadStore struct {
	queries ProviderReadQueries
	db      sqlc.DBTX
}

func NewProviderReadStore(queries ProviderReadQueries, db sqlc.DBTX) *ProviderReadStore {
	return &ProviderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProviderReadStore) ProviderByID(ctx context.Context, id int64) (*shared.ProviderSnapshot, error) {
	row, err := r.queries.GetProvider(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("provider not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get provider", err)
	}
	return &shared.ProviderSnapshot{
		ID:          row.ID,
		DisplayName: row.DisplayName,
		PriceCents:  row.PriceCents,
		IsActive:    row.IsActive,
	}, nil
}
