package repository

import (
	"context"
	"time"

	"concierge/internal/domain"

	"gorm.io/gorm"
)

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

type providerModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Speciality   *string   `gorm:"column:speciality"`
	ContactEmail *string   `gorm:"column:contact_email"`
	ContactPhone *string   `gorm:"column:contact_phone"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (providerModel) TableName() string { return "service_providers" }

func toDomainProvider(m providerModel) *domain.ServiceProvider {
	deref := func(p *string) string {
		if p != nil {
			return *p
		}
		return ""
	}

	return &domain.ServiceProvider{
		ID:           m.ID,
		Name:         m.Name,
		Speciality:   deref(m.Speciality),
		ContactEmail: deref(m.ContactEmail),
		ContactPhone: deref(m.ContactPhone),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toProviderModel(p *domain.ServiceProvider) providerModel {
	opt := func(s string) *string {
		if s == "" {
			return nil
		}
		v := s
		return &v
	}

	return providerModel{
		ID:           p.ID,
		Name:         p.Name,
		Speciality:   opt(p.Speciality),
		ContactEmail: opt(p.ContactEmail),
		ContactPhone: opt(p.ContactPhone),
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *ProviderRepository) Create(ctx context.Context, p *domain.ServiceProvider) error {
	m := toProviderModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProvider(m)
	return nil
}

func (r *ProviderRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceProvider, error) {
	var m providerModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProvider(m), nil
}

func (r *ProviderRepository) ListActive(ctx context.Context) ([]*domain.ServiceProvider, error) {
	return r.list(ctx, true)
}

func (r *ProviderRepository) ListAll(ctx context.Context) ([]*domain.ServiceProvider, error) {
	return r.list(ctx, false)
}

func (r *ProviderRepository) list(ctx context.Context, activeOnly bool) ([]*domain.ServiceProvider, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var models []providerModel
	if tx := q.Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	providers := make([]*domain.ServiceProvider, 0, len(models))
	for _, m := range models {
		providers = append(providers, toDomainProvider(m))
	}
	return providers, nil
}

func (r *ProviderRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	fields["updated_at"] = time.Now()
	tx := r.db.WithContext(ctx).
		Model(&providerModel{}).
		Where("id = ?", id).
		Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Deactivate retires a provider without touching reservations already
// assigned to them.
func (r *ProviderRepository) Deactivate(ctx context.Context, id int64) error {
	return r.Update(ctx, id, map[string]any{"is_active": false})
}
