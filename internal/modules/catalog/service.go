package catalog

import (
	"context"
	"errors"

	"concierge/internal/domain"

	"gorm.io/gorm"
)

// Service covers the three catalogues: offered services, client
// properties and assignable providers. Everything is soft-deleted so
// historical requests and reservations keep valid references.
type Service struct {
	services   ServiceRepositoryInterface
	properties PropertyRepositoryInterface
	providers  ProviderRepositoryInterface
	users      UserGetter
}

func NewService(
	services ServiceRepositoryInterface,
	properties PropertyRepositoryInterface,
	providers ProviderRepositoryInterface,
	users UserGetter,
) *Service {
	return &Service{
		services:   services,
		properties: properties,
		providers:  providers,
		users:      users,
	}
}

func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	svc := &domain.Service{
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		DurationEstimate: req.DurationEstimate,
		IsActive:         true,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

// ListServices returns the public catalogue; includeInactive widens it to
// the admin view.
func (s *Service) ListServices(ctx context.Context, includeInactive bool) ([]*domain.Service, error) {
	if includeInactive {
		return s.services.ListAll(ctx)
	}
	return s.services.ListActive(ctx)
}

func (s *Service) UpdateService(ctx context.Context, id int64, req UpdateServiceRequest) (*domain.Service, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.DurationEstimate != nil {
		fields["duration_estimate"] = *req.DurationEstimate
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if len(fields) == 0 {
		return s.GetService(ctx, id)
	}

	if err := s.services.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.GetService(ctx, id)
}

func (s *Service) DeactivateService(ctx context.Context, id int64) error {
	if err := s.services.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
