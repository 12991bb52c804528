package shared

type ProviderSnapshot struct {
	ID          int64
	DisplayName string
	PriceCents  int64
	IsActive    bool
}
