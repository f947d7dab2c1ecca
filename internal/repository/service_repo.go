package repository

import (
	"context"
	"time"

	"concierge/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	Name             string    `gorm:"column:name"`
	Description      *string   `gorm:"column:description"`
	Price            float64   `gorm:"column:price"`
	DurationEstimate *string   `gorm:"column:duration_estimate"`
	IsActive         bool      `gorm:"column:is_active"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) *domain.Service {
	var desc, dur string
	if m.Description != nil {
		desc = *m.Description
	}
	if m.DurationEstimate != nil {
		dur = *m.DurationEstimate
	}

	return &domain.Service{
		ID:               m.ID,
		Name:             m.Name,
		Description:      desc,
		Price:            m.Price,
		DurationEstimate: dur,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toServiceModel(s *domain.Service) serviceModel {
	var desc, dur *string
	if s.Description != "" {
		v := s.Description
		desc = &v
	}
	if s.DurationEstimate != "" {
		v := s.DurationEstimate
		dur = &v
	}

	return serviceModel{
		ID:               s.ID,
		Name:             s.Name,
		Description:      desc,
		Price:            s.Price,
		DurationEstimate: dur,
		IsActive:         s.IsActive,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainService(m)
	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainService(m), nil
}

// ListActive is the public catalogue view.
func (r *ServiceRepository) ListActive(ctx context.Context) ([]*domain.Service, error) {
	return r.list(ctx, true)
}

// ListAll includes deactivated services, for the admin view.
func (r *ServiceRepository) ListAll(ctx context.Context) ([]*domain.Service, error) {
	return r.list(ctx, false)
}

func (r *ServiceRepository) list(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var models []serviceModel
	if tx := q.Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	services := make([]*domain.Service, 0, len(models))
	for _, m := range models {
		services = append(services, toDomainService(m))
	}
	return services, nil
}

// Update applies the given column set to one service. Returns
// gorm.ErrRecordNotFound when the id does not exist.
func (r *ServiceRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	fields["updated_at"] = time.Now()
	tx := r.db.WithContext(ctx).
		Model(&serviceModel{}).
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

// Deactivate soft-deletes a service. Historical requests keep their
// foreign key.
func (r *ServiceRepository) Deactivate(ctx context.Context, id int64) error {
	return r.Update(ctx, id, map[string]any{"is_active": false})
}
