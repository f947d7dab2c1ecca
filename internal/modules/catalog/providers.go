package catalog

import (
	"context"
	"errors"

	"concierge/internal/domain"

	"gorm.io/gorm"
)

func (s *Service) CreateProvider(ctx context.Context, req CreateProviderRequest) (*domain.ServiceProvider, error) {
	p := &domain.ServiceProvider{
		Name:         req.Name,
		Speciality:   req.Speciality,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		IsActive:     true,
	}
	if err := s.providers.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetProvider(ctx context.Context, id int64) (*domain.ServiceProvider, error) {
	p, err := s.providers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) ListProviders(ctx context.Context, includeInactive bool) ([]*domain.ServiceProvider, error) {
	if includeInactive {
		return s.providers.ListAll(ctx)
	}
	return s.providers.ListActive(ctx)
}

func (s *Service) UpdateProvider(ctx context.Context, id int64, req UpdateProviderRequest) (*domain.ServiceProvider, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Speciality != nil {
		fields["speciality"] = *req.Speciality
	}
	if req.ContactEmail != nil {
		fields["contact_email"] = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		fields["contact_phone"] = *req.ContactPhone
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if len(fields) == 0 {
		return s.GetProvider(ctx, id)
	}

	if err := s.providers.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.GetProvider(ctx, id)
}

// DeactivateProvider retires a provider from future assignment without
// touching reservations already carrying them.
func (s *Service) DeactivateProvider(ctx context.Context, id int64) error {
	if err := s.providers.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
