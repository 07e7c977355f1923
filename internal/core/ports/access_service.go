package ports

import (
	"context"

	"github.com/casabierta/realty-api/internal/core/domain"
)

// AccessService decides whether a caller may view a property record.
type AccessService interface {
	// Check looks up the record and evaluates the access decision for the
	// given identity (nil when the request carries no valid session). The
	// returned error is non-nil only on internal faults (store unreachable);
	// every policy outcome is expressed through the decision value.
	Check(ctx context.Context, propertyID string, identity *domain.Identity) (domain.AccessDecision, error)
}
