package ports

import (
	"context"

	"github.com/casabierta/realty-api/internal/core/domain"
)

// ListPropertiesFilter carries all query parameters for listing properties.
// Visibility is always resolved by the service layer before the repository
// is called: the repository itself performs no authorization.
type ListPropertiesFilter struct {
	// ViewerUID restricts private records to those whose allow-list contains
	// the uid. Empty means anonymous: only public records match.
	ViewerUID string
	// IncludePrivate lifts the visibility filter entirely (admin listing).
	IncludePrivate bool
	City           string // optional: filter by city
	MaxPrice       float64
	Page           int // 1-based
	Limit          int // max rows per page (capped at 100 by service)
}

// PropertyRepository defines persistence operations for property records.
// It is a thin I/O facade: all access decisions live in the access service.
type PropertyRepository interface {
	Get(ctx context.Context, id string) (*domain.Property, error)
	Create(ctx context.Context, p *domain.Property) (string, error)
	Update(ctx context.Context, id string, p *domain.Property) error
	Delete(ctx context.Context, id string) error
	// List returns a page of properties matching filter and the total count.
	List(ctx context.Context, filter ListPropertiesFilter) ([]*domain.Property, int64, error)
}
