package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/casabierta/realty-api/internal/core/domain"
	"github.com/casabierta/realty-api/internal/core/ports"
)

// LeadService captures contact-form submissions. Rate limiting happens in the
// transport layer; this service enforces only the consent contract.
type LeadService struct {
	repo   ports.LeadRepository
	logger zerolog.Logger
}

func NewLeadService(repo ports.LeadRepository, logger zerolog.Logger) *LeadService {
	return &LeadService{repo: repo, logger: logger}
}

// Capture stores a lead. Submissions without explicit consent are rejected
// before any write.
func (s *LeadService) Capture(ctx context.Context, input ports.LeadInput) (string, error) {
	if !input.Consent {
		return "", domain.ErrConsentRequired
	}

	lead := &domain.Lead{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Message:    input.Message,
		PropertyID: input.PropertyID,
		Consent:    true,
		ClientIP:   input.ClientIP,
		CreatedAt:  time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, lead)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to store lead")
		return "", err
	}

	s.logger.Info().Str("lead_id", id).Str("property_id", input.PropertyID).Msg("lead captured")
	return id, nil
}
