package shared

import (
	"context"

	"physio-scheduler/internal/domain/availability"
)

// ProviderDirectory reads the replicated provider profile.
type ProviderDirectory interface {
	ProviderByID(ctx context.Context, id int64) (*ProviderSnapshot, error)
}

// TemplateCache drops a cached weekly template after it is replaced.
type TemplateCache interface {
	availability.TemplateSource
	Invalidate(ctx context.Context, providerID int64) error
}
