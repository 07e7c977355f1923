package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/casabierta/realty-api/internal/core/domain"
	"github.com/casabierta/realty-api/internal/core/ports"
)

type stubLeadRepo struct {
	leads     []*domain.Lead
	createErr error
}

func (r *stubLeadRepo) Create(_ context.Context, lead *domain.Lead) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	clone := *lead
	clone.ID = "lead-1"
	r.leads = append(r.leads, &clone)
	return clone.ID, nil
}

func TestLeadService_Capture_RequiresConsent(t *testing.T) {
	repo := &stubLeadRepo{}
	svc := NewLeadService(repo, zerolog.Nop())

	_, err := svc.Capture(context.Background(), ports.LeadInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Interested in the loft",
		Consent: false,
	})
	if !errors.Is(err, domain.ErrConsentRequired) {
		t.Fatalf("expected ErrConsentRequired, got %v", err)
	}
	if len(repo.leads) != 0 {
		t.Fatalf("lead stored without consent")
	}
}

func TestLeadService_Capture_StoresSubmission(t *testing.T) {
	repo := &stubLeadRepo{}
	svc := NewLeadService(repo, zerolog.Nop())

	id, err := svc.Capture(context.Background(), ports.LeadInput{
		Name:       "Jane",
		Email:      "jane@example.com",
		Phone:      "555-0100",
		Message:    "Interested in the loft",
		PropertyID: "p1",
		Consent:    true,
		ClientIP:   "203.0.113.7",
	})
	if err != nil {
		t.Fatalf("Capture returned error: %v", err)
	}
	if id == "" {
		t.Fatalf("expected lead id")
	}

	stored := repo.leads[0]
	if !stored.Consent {
		t.Fatalf("consent not recorded")
	}
	if stored.ClientIP != "203.0.113.7" || stored.PropertyID != "p1" {
		t.Fatalf("lead fields not stored: %+v", stored)
	}
	if stored.CreatedAt.IsZero() {
		t.Fatalf("created_at not set")
	}
}

func TestLeadService_Capture_StoreError(t *testing.T) {
	repo := &stubLeadRepo{createErr: errors.New("store down")}
	svc := NewLeadService(repo, zerolog.Nop())

	if _, err := svc.Capture(context.Background(), ports.LeadInput{
		Name: "Jane", Email: "jane@example.com", Message: "hi", Consent: true,
	}); err == nil {
		t.Fatalf("expected store error to propagate")
	}
}
