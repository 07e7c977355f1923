package ports

import (
	"context"

	"github.com/casabierta/realty-api/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUID(ctx context.Context, uid string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateRole sets the stored role. Outstanding session credentials keep
	// the role they were issued with.
	UpdateRole(ctx context.Context, uid, role string) error
}
