package ports

import (
	"context"

	"github.com/casabierta/realty-api/internal/core/domain"
)

// CoordinatesInput holds geographic coordinates.
type CoordinatesInput struct {
	Lat float64
	Lng float64
}

// AddressInput holds a physical location.
type AddressInput struct {
	Address     string
	City        string
	State       string
	ZipCode     string
	Coordinates CoordinatesInput
}

// PropertyInput carries all data needed to create or update a listing.
type PropertyInput struct {
	Title        string
	Description  string
	Price        float64
	Currency     string
	Location     AddressInput
	AreaSqM      float64
	Bedrooms     int
	Bathrooms    int
	Images       []string
	IsPublic     bool
	AllowedUsers []string
}

// ListPropertiesInput carries all parameters for the browse endpoint.
type ListPropertiesInput struct {
	// Identity of the caller, nil when the request carries no valid session.
	Identity *domain.Identity
	City     string
	MaxPrice float64
	Page     int
	Limit    int
}

// ListPropertiesResult is returned by ListProperties.
type ListPropertiesResult struct {
	Items      []*domain.Property
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PropertyService defines use-case operations for property records.
// Mutating operations assume the caller has already been authenticated as an
// admin at the endpoint layer.
type PropertyService interface {
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	CreateProperty(ctx context.Context, input PropertyInput, actor domain.Identity) (string, error)
	UpdateProperty(ctx context.Context, id string, input PropertyInput, actor domain.Identity) error
	DeleteProperty(ctx context.Context, id string, actor domain.Identity) error
	ListProperties(ctx context.Context, input ListPropertiesInput) (*ListPropertiesResult, error)
}
