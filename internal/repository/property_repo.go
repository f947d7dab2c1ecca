package repository

import (
	"context"
	"time"

	"concierge/internal/domain"

	"gorm.io/gorm"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

type propertyModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	OwnerID   int64     `gorm:"column:owner_id"`
	Address   string    `gorm:"column:address"`
	Surface   *float64  `gorm:"column:surface"`
	NumRooms  *int      `gorm:"column:num_rooms"`
	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (propertyModel) TableName() string { return "properties" }

// PropertyDetail is the admin listing row, a property joined with its
// owner's identity.
type PropertyDetail struct {
	domain.Property
	OwnerFirstName string `json:"owner_first_name"`
	OwnerLastName  string `json:"owner_last_name"`
	OwnerEmail     string `json:"owner_email"`
}

func toDomainProperty(m propertyModel) *domain.Property {
	var surface float64
	if m.Surface != nil {
		surface = *m.Surface
	}
	var rooms int
	if m.NumRooms != nil {
		rooms = *m.NumRooms
	}

	return &domain.Property{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Address:   m.Address,
		Surface:   surface,
		NumRooms:  rooms,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toPropertyModel(p *domain.Property) propertyModel {
	var surface *float64
	if p.Surface > 0 {
		v := p.Surface
		surface = &v
	}
	var rooms *int
	if p.NumRooms > 0 {
		v := p.NumRooms
		rooms = &v
	}

	return propertyModel{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Address:   p.Address,
		Surface:   surface,
		NumRooms:  rooms,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	m := toPropertyModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProperty(m)
	return nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	var m propertyModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProperty(m), nil
}

// ListByOwner returns the owner's active properties, newest first.
func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Property, error) {
	var models []propertyModel
	tx := r.db.WithContext(ctx).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	properties := make([]*domain.Property, 0, len(models))
	for _, m := range models {
		properties = append(properties, toDomainProperty(m))
	}
	return properties, nil
}

type propertyDetailRow struct {
	ID        int64     `gorm:"column:id"`
	OwnerID   int64     `gorm:"column:owner_id"`
	Address   string    `gorm:"column:address"`
	Surface   *float64  `gorm:"column:surface"`
	NumRooms  *int      `gorm:"column:num_rooms"`
	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	OwnerFirstName string `gorm:"column:owner_first_name"`
	OwnerLastName  string `gorm:"column:owner_last_name"`
	OwnerEmail     string `gorm:"column:owner_email"`
}

// ListAll returns every property, active or not, with owner identity for
// the admin view.
func (r *PropertyRepository) ListAll(ctx context.Context) ([]*PropertyDetail, error) {
	var rows []propertyDetailRow
	tx := r.db.WithContext(ctx).
		Table("properties").
		Select(`properties.*,
			users.first_name AS owner_first_name,
			users.last_name  AS owner_last_name,
			users.email      AS owner_email`).
		Joins("JOIN users ON users.id = properties.owner_id").
		Order("properties.created_at DESC").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	details := make([]*PropertyDetail, 0, len(rows))
	for _, row := range rows {
		p := toDomainProperty(propertyModel{
			ID:        row.ID,
			OwnerID:   row.OwnerID,
			Address:   row.Address,
			Surface:   row.Surface,
			NumRooms:  row.NumRooms,
			IsActive:  row.IsActive,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
		details = append(details, &PropertyDetail{
			Property:       *p,
			OwnerFirstName: row.OwnerFirstName,
			OwnerLastName:  row.OwnerLastName,
			OwnerEmail:     row.OwnerEmail,
		})
	}
	return details, nil
}

// Update applies the given column set to one property. Returns
// gorm.ErrRecordNotFound when the id does not exist.
func (r *PropertyRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	fields["updated_at"] = time.Now()
	tx := r.db.WithContext(ctx).
		Model(&propertyModel{}).
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

func (r *PropertyRepository) Deactivate(ctx context.Context, id int64) error {
	return r.Update(ctx, id, map[string]any{"is_active": false})
}
