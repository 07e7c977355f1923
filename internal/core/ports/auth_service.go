package ports

import (
	"context"

	"github.com/casabierta/realty-api/internal/core/domain"
)

// AuthService implements account registration, login and role management.
type AuthService interface {
	// Register creates a new account with the default public role.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed session credential
	// together with the stored user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes all outstanding credentials for the user.
	Logout(ctx context.Context, uid string) error
	// ChangeRole sets targetUID's role. Only an admin actor may call this,
	// and only premium or admin may be assigned; violations yield
	// domain.ErrForbidden or domain.ErrInvalidRole.
	ChangeRole(ctx context.Context, actor domain.Identity, targetUID, role string) error
}
