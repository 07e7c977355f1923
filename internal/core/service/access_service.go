package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/casabierta/realty-api/internal/core/domain"
	"github.com/casabierta/realty-api/internal/core/ports"
)

// AccessService evaluates property visibility decisions.
type AccessService struct {
	repo   ports.PropertyRepository
	logger zerolog.Logger
}

func NewAccessService(repo ports.PropertyRepository, logger zerolog.Logger) *AccessService {
	return &AccessService{repo: repo, logger: logger}
}

// Decide evaluates the access decision for a record snapshot and an identity.
// It is a pure function; the evaluation order is deliberate:
//
//  1. missing record wins over everything, so a 404 never leaks into a login
//     prompt;
//  2. public status is checked before authentication, so public listings never
//     require a session;
//  3. the admin override runs before the allow-list, so admins never need
//     explicit enumeration.
//
// Membership is exact string equality on uid, no normalization.
func Decide(record *domain.Property, identity *domain.Identity) domain.AccessDecision {
	if record == nil {
		return domain.AccessNotFound
	}
	if record.IsPublic {
		return domain.AccessAllowed
	}
	if identity == nil {
		return domain.AccessUnauthenticated
	}
	if identity.Role == domain.RoleAdmin {
		return domain.AccessAllowed
	}
	for _, uid := range record.AllowedUsers {
		if uid == identity.UID {
			return domain.AccessAllowed
		}
	}
	return domain.AccessUnauthorized
}

// Check looks up the record and evaluates Decide against it. Store errors
// other than not-found are propagated as internal faults.
func (s *AccessService) Check(ctx context.Context, propertyID string, identity *domain.Identity) (domain.AccessDecision, error) {
	record, err := s.repo.Get(ctx, propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			return domain.AccessNotFound, nil
		}
		s.logger.Error().Err(err).Str("property_id", propertyID).Msg("record lookup failed")
		return "", err
	}

	decision := Decide(record, identity)
	s.logger.Debug().
		Str("property_id", propertyID).
		Str("decision", string(decision)).
		Msg("access decision")
	return decision, nil
}
