package repository

import (
	"context"
	"time"

	"concierge/internal/domain"

	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

type leadModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	Email           string    `gorm:"column:email"`
	Name            *string   `gorm:"column:name"`
	Phone           *string   `gorm:"column:phone"`
	PropertyType    *string   `gorm:"column:property_type"`
	Surface         *string   `gorm:"column:surface"`
	ServiceInterest *string   `gorm:"column:service_interest"`
	Message         *string   `gorm:"column:message"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (leadModel) TableName() string { return "leads" }

func toDomainLead(m leadModel) *domain.Lead {
	deref := func(p *string) string {
		if p != nil {
			return *p
		}
		return ""
	}

	return &domain.Lead{
		ID:              m.ID,
		Email:           m.Email,
		Name:            deref(m.Name),
		Phone:           deref(m.Phone),
		PropertyType:    deref(m.PropertyType),
		Surface:         deref(m.Surface),
		ServiceInterest: deref(m.ServiceInterest),
		Message:         deref(m.Message),
		CreatedAt:       m.CreatedAt,
	}
}

func toLeadModel(l *domain.Lead) leadModel {
	opt := func(s string) *string {
		if s == "" {
			return nil
		}
		v := s
		return &v
	}

	return leadModel{
		ID:              l.ID,
		Email:           l.Email,
		Name:            opt(l.Name),
		Phone:           opt(l.Phone),
		PropertyType:    opt(l.PropertyType),
		Surface:         opt(l.Surface),
		ServiceInterest: opt(l.ServiceInterest),
		Message:         opt(l.Message),
		CreatedAt:       l.CreatedAt,
	}
}

func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	m := toLeadModel(l)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*l = *toDomainLead(m)
	return nil
}

// List returns all leads, newest first.
func (r *LeadRepository) List(ctx context.Context) ([]*domain.Lead, error) {
	var models []leadModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	leads := make([]*domain.Lead, 0, len(models))
	for _, m := range models {
		leads = append(leads, toDomainLead(m))
	}
	return leads, nil
}
