package repository

import (
	"context"
	"time"

	"concierge/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	RequestID     *int64     `gorm:"column:request_id"`
	UserID        int64      `gorm:"column:user_id"`
	PropertyID    *int64     `gorm:"column:property_id"`
	ServiceID     *int64     `gorm:"column:service_id"`
	ProviderID    *int64     `gorm:"column:provider_id"`
	ScheduledDate time.Time  `gorm:"column:scheduled_date"`
	Status        string     `gorm:"column:status"`
	TotalPrice    float64    `gorm:"column:total_price"`
	Notes         *string    `gorm:"column:notes"`
	AssignedAt    *time.Time `gorm:"column:assigned_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (reservationModel) TableName() string { return "reservations" }

// ReservationDetail is a reservation joined with service, provider and
// client context for listings.
type ReservationDetail struct {
	domain.Reservation
	ServiceName     string `json:"service_name,omitempty"`
	ProviderName    string `json:"provider_name,omitempty"`
	PropertyAddress string `json:"property_address,omitempty"`
	ClientFirstName string `json:"client_first_name,omitempty"`
	ClientLastName  string `json:"client_last_name,omitempty"`
	ClientEmail     string `json:"client_email,omitempty"`
}

func toDomainReservation(m reservationModel) *domain.Reservation {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Reservation{
		ID:            m.ID,
		RequestID:     m.RequestID,
		UserID:        m.UserID,
		PropertyID:    m.PropertyID,
		ServiceID:     m.ServiceID,
		ProviderID:    m.ProviderID,
		ScheduledDate: m.ScheduledDate,
		Status:        domain.ReservationStatus(m.Status),
		TotalPrice:    m.TotalPrice,
		Notes:         notes,
		AssignedAt:    m.AssignedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toReservationModel(res *domain.Reservation) reservationModel {
	var notes *string
	if res.Notes != "" {
		v := res.Notes
		notes = &v
	}

	return reservationModel{
		ID:            res.ID,
		RequestID:     res.RequestID,
		UserID:        res.UserID,
		PropertyID:    res.PropertyID,
		ServiceID:     res.ServiceID,
		ProviderID:    res.ProviderID,
		ScheduledDate: res.ScheduledDate,
		Status:        string(res.Status),
		TotalPrice:    res.TotalPrice,
		Notes:         notes,
		AssignedAt:    res.AssignedAt,
		CreatedAt:     res.CreatedAt,
		UpdatedAt:     res.UpdatedAt,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

// AssignProvider sets or replaces the provider, moves the reservation to
// the given status and refreshes assigned_at.
func (r *ReservationRepository) AssignProvider(ctx context.Context, id, providerID int64, status domain.ReservationStatus, assignedAt time.Time) error {
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"provider_id": providerID,
			"status":      string(status),
			"assigned_at": assignedAt,
			"updated_at":  time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateStatus sets the status column. Returns gorm.ErrRecordNotFound when
// the id does not exist.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type reservationDetailRow struct {
	ID            int64      `gorm:"column:id"`
	RequestID     *int64     `gorm:"column:request_id"`
	UserID        int64      `gorm:"column:user_id"`
	PropertyID    *int64     `gorm:"column:property_id"`
	ServiceID     *int64     `gorm:"column:service_id"`
	ProviderID    *int64     `gorm:"column:provider_id"`
	ScheduledDate time.Time  `gorm:"column:scheduled_date"`
	Status        string     `gorm:"column:status"`
	TotalPrice    float64    `gorm:"column:total_price"`
	Notes         *string    `gorm:"column:notes"`
	AssignedAt    *time.Time `gorm:"column:assigned_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`

	ServiceName     *string `gorm:"column:service_name"`
	ProviderName    *string `gorm:"column:provider_name"`
	PropertyAddress *string `gorm:"column:property_address"`
	ClientFirstName *string `gorm:"column:client_first_name"`
	ClientLastName  *string `gorm:"column:client_last_name"`
	ClientEmail     *string `gorm:"column:client_email"`
}

// ListForUser returns a client's reservations with detail, newest first.
func (r *ReservationRepository) ListForUser(ctx context.Context, userID int64) ([]*ReservationDetail, error) {
	return r.listDetail(ctx, &userID)
}

// ListForAdmin returns all reservations with client identity.
func (r *ReservationRepository) ListForAdmin(ctx context.Context) ([]*ReservationDetail, error) {
	return r.listDetail(ctx, nil)
}

func (r *ReservationRepository) listDetail(ctx context.Context, userID *int64) ([]*ReservationDetail, error) {
	q := r.db.WithContext(ctx).
		Table("reservations").
		Select(`reservations.*,
			services.name AS service_name,
			service_providers.name AS provider_name,
			properties.address AS property_address,
			users.first_name AS client_first_name,
			users.last_name  AS client_last_name,
			users.email      AS client_email`).
		Joins("LEFT JOIN services ON services.id = reservations.service_id").
		Joins("LEFT JOIN service_providers ON service_providers.id = reservations.provider_id").
		Joins("LEFT JOIN properties ON properties.id = reservations.property_id").
		Joins("JOIN users ON users.id = reservations.user_id").
		Order("reservations.scheduled_date DESC")

	if userID != nil {
		q = q.Where("reservations.user_id = ?", *userID)
	}

	var rows []reservationDetailRow
	if tx := q.Scan(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	deref := func(p *string) string {
		if p != nil {
			return *p
		}
		return ""
	}

	details := make([]*ReservationDetail, 0, len(rows))
	for _, row := range rows {
		res := toDomainReservation(reservationModel{
			ID:            row.ID,
			RequestID:     row.RequestID,
			UserID:        row.UserID,
			PropertyID:    row.PropertyID,
			ServiceID:     row.ServiceID,
			ProviderID:    row.ProviderID,
			ScheduledDate: row.ScheduledDate,
			Status:        row.Status,
			TotalPrice:    row.TotalPrice,
			Notes:         row.Notes,
			AssignedAt:    row.AssignedAt,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		})
		details = append(details, &ReservationDetail{
			Reservation:     *res,
			ServiceName:     deref(row.ServiceName),
			ProviderName:    deref(row.ProviderName),
			PropertyAddress: deref(row.PropertyAddress),
			ClientFirstName: deref(row.ClientFirstName),
			ClientLastName:  deref(row.ClientLastName),
			ClientEmail:     deref(row.ClientEmail),
		})
	}
	return details, nil
}

// SumCompletedPriceByUser totals the completed reservations billed to one
// client, the gross side of the revenue report.
func (r *ReservationRepository) SumCompletedPriceByUser(ctx context.Context, userID int64) (float64, error) {
	var total *float64
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Select("SUM(total_price)").
		Where("user_id = ? AND status = ?", userID, string(domain.ReservationCompleted)).
		Scan(&total)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
