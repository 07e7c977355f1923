package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/casabierta/realty-api/internal/core/domain"
	"github.com/casabierta/realty-api/internal/core/ports"
)

const maxListLimit = 100

// PropertyService implements listing CRUD and the visibility-scoped browse
// query. Admin enforcement for mutations happens at the endpoint layer; this
// service applies only the visibility invariant to the data it writes.
type PropertyService struct {
	repo   ports.PropertyRepository
	logger zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, logger zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, logger: logger}
}

func (s *PropertyService) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.Get(ctx, id)
}

func (s *PropertyService) CreateProperty(ctx context.Context, input ports.PropertyInput, actor domain.Identity) (string, error) {
	now := time.Now().UTC()
	p := fromInput(input)
	p.CreatedBy = actor.UID
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Normalize()

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create property")
		return "", err
	}

	s.logger.Info().Str("property_id", id).Str("actor_uid", actor.UID).Msg("property created")
	return id, nil
}

func (s *PropertyService) UpdateProperty(ctx context.Context, id string, input ports.PropertyInput, actor domain.Identity) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	p := fromInput(input)
	p.ID = existing.ID
	p.CreatedBy = existing.CreatedBy
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	p.Normalize()

	if err := s.repo.Update(ctx, id, p); err != nil {
		return err
	}

	s.logger.Info().Str("property_id", id).Str("actor_uid", actor.UID).Msg("property updated")
	return nil
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id string, actor domain.Identity) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("property_id", id).Str("actor_uid", actor.UID).Msg("property deleted")
	return nil
}

// ListProperties returns the page of listings visible to the caller: public
// records for everyone, allow-listed records for the identity's uid, and the
// full collection for admins.
func (s *PropertyService) ListProperties(ctx context.Context, input ports.ListPropertiesInput) (*ports.ListPropertiesResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	filter := ports.ListPropertiesFilter{
		City:     input.City,
		MaxPrice: input.MaxPrice,
		Page:     page,
		Limit:    limit,
	}
	if input.Identity != nil {
		if input.Identity.Role == domain.RoleAdmin {
			filter.IncludePrivate = true
		} else {
			filter.ViewerUID = input.Identity.UID
		}
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListPropertiesResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func fromInput(input ports.PropertyInput) *domain.Property {
	return &domain.Property{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Currency:    input.Currency,
		Location: domain.Address{
			Address: input.Location.Address,
			City:    input.Location.City,
			State:   input.Location.State,
			ZipCode: input.Location.ZipCode,
			Coordinates: domain.Coordinates{
				Lat: input.Location.Coordinates.Lat,
				Lng: input.Location.Coordinates.Lng,
			},
		},
		AreaSqM:      input.AreaSqM,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		Images:       input.Images,
		IsPublic:     input.IsPublic,
		AllowedUsers: input.AllowedUsers,
	}
}
