package catalog

import (
	"context"

	"concierge/internal/domain"
	"concierge/internal/repository"
)

type ServiceRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListActive(ctx context.Context) ([]*domain.Service, error)
	ListAll(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	Deactivate(ctx context.Context, id int64) error
}

type PropertyRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Property, error)
	ListAll(ctx context.Context) ([]*repository.PropertyDetail, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	Deactivate(ctx context.Context, id int64) error
}

type ProviderRepositoryInterface interface {
	Create(ctx context.Context, p *domain.ServiceProvider) error
	GetByID(ctx context.Context, id int64) (*domain.ServiceProvider, error)
	ListActive(ctx context.Context) ([]*domain.ServiceProvider, error)
	ListAll(ctx context.Context) ([]*domain.ServiceProvider, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	Deactivate(ctx context.Context, id int64) error
}

// UserGetter checks that an owner account exists before attaching a
// property to it.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
