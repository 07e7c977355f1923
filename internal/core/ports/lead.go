package ports

import (
	"context"

	"github.com/casabierta/realty-api/internal/core/domain"
)

// LeadInput is the DTO passed from the transport layer to LeadService.
type LeadInput struct {
	Name       string
	Email      string
	Phone      string
	Message    string
	PropertyID string
	Consent    bool
	ClientIP   string
}

// LeadRepository persists contact-form submissions.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) (string, error)
}

// LeadService captures leads from the public contact form.
type LeadService interface {
	Capture(ctx context.Context, input LeadInput) (string, error)
}
