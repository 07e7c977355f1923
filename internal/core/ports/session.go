package ports

import (
	"context"

	"github.com/casabierta/realty-api/internal/core/domain"
)

// SessionStore issues and validates opaque, signed session credentials.
type SessionStore interface {
	// Issue exchanges a resolved identity for a signed session credential.
	Issue(identity domain.Identity) (string, error)
	// Verify decodes and validates the credential's signature and expiry.
	// When checkRevocation is true it additionally confirms the credential
	// has not been revoked since issuance. Any validation failure yields
	// domain.ErrInvalidSession.
	Verify(ctx context.Context, credential string, checkRevocation bool) (*domain.Identity, error)
	// Revoke invalidates all outstanding credentials for a user.
	Revoke(ctx context.Context, uid string) error
}

// RevocationList records per-user revocation cut-offs. A credential issued at
// or before the recorded cut-off is invalid.
type RevocationList interface {
	Revoke(ctx context.Context, uid string) error
	// RevokedSince reports whether credentials issued at issuedAtUnix seconds
	// are revoked for uid.
	RevokedSince(ctx context.Context, uid string, issuedAtUnix int64) (bool, error)
}
