package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/casabierta/realty-api/internal/core/domain"
	"github.com/casabierta/realty-api/internal/core/ports"
)

const DefaultSessionTTL = time.Hour

// SessionService signs and verifies session credentials (HS256 JWTs) and
// delegates revocation bookkeeping to a RevocationList.
type SessionService struct {
	secret     string
	ttl        time.Duration
	revocation ports.RevocationList
	now        func() time.Time
}

func NewSessionService(secret string, ttl time.Duration, revocation ports.RevocationList) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{secret: secret, ttl: ttl, revocation: revocation, now: time.Now}
}

// TTL returns the credential lifetime, which is also the cookie max-age.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Issue exchanges a resolved identity for a signed session credential.
func (s *SessionService) Issue(identity domain.Identity) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"uid":  identity.UID,
		"role": identity.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

// Verify validates signature and expiry, and optionally checks the revocation
// list. Every validation failure collapses to domain.ErrInvalidSession; only
// a revocation-backend fault surfaces as its own error.
func (s *SessionService) Verify(ctx context.Context, credential string, checkRevocation bool) (*domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(credential, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidSession
	}

	uid, _ := claims["uid"].(string)
	role, _ := claims["role"].(string)
	if uid == "" || !domain.ValidRole(role) {
		return nil, domain.ErrInvalidSession
	}

	issuedAt := int64(0)
	if iat, ok := claims["iat"].(float64); ok {
		issuedAt = int64(iat)
	}

	if checkRevocation {
		revoked, err := s.revocation.RevokedSince(ctx, uid, issuedAt)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, domain.ErrInvalidSession
		}
	}

	return &domain.Identity{
		UID:      uid,
		Role:     role,
		IssuedAt: time.Unix(issuedAt, 0).UTC(),
	}, nil
}

// Revoke invalidates all outstanding credentials for a user.
func (s *SessionService) Revoke(ctx context.Context, uid string) error {
	return s.revocation.Revoke(ctx, uid)
}
