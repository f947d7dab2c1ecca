package repository

import (
	"context"
	"time"

	"concierge/internal/domain"

	"gorm.io/gorm"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

type requestModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	UserID        int64     `gorm:"column:user_id"`
	PropertyID    *int64    `gorm:"column:property_id"`
	ServiceID     int64     `gorm:"column:service_id"`
	ScheduledDate time.Time `gorm:"column:scheduled_date"`
	Notes         *string   `gorm:"column:notes"`
	Status        string    `gorm:"column:status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (requestModel) TableName() string { return "service_requests" }

// RequestDetail is a request joined with its service name and property
// address for listings.
type RequestDetail struct {
	domain.Request
	ServiceName     string  `json:"service_name"`
	ServicePrice    float64 `json:"service_price"`
	PropertyAddress string  `json:"property_address,omitempty"`
	ClientFirstName string  `json:"client_first_name,omitempty"`
	ClientLastName  string  `json:"client_last_name,omitempty"`
	ClientEmail     string  `json:"client_email,omitempty"`
}

func toDomainRequest(m requestModel) *domain.Request {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Request{
		ID:            m.ID,
		UserID:        m.UserID,
		PropertyID:    m.PropertyID,
		ServiceID:     m.ServiceID,
		ScheduledDate: m.ScheduledDate,
		Notes:         notes,
		Status:        domain.RequestStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toRequestModel(req *domain.Request) requestModel {
	var notes *string
	if req.Notes != "" {
		v := req.Notes
		notes = &v
	}

	return requestModel{
		ID:            req.ID,
		UserID:        req.UserID,
		PropertyID:    req.PropertyID,
		ServiceID:     req.ServiceID,
		ScheduledDate: req.ScheduledDate,
		Notes:         notes,
		Status:        string(req.Status),
		CreatedAt:     req.CreatedAt,
		UpdatedAt:     req.UpdatedAt,
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.Request) error {
	m := toRequestModel(req)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*req = *toDomainRequest(m)
	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	var m requestModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRequest(m), nil
}

type requestDetailRow struct {
	ID            int64     `gorm:"column:id"`
	UserID        int64     `gorm:"column:user_id"`
	PropertyID    *int64    `gorm:"column:property_id"`
	ServiceID     int64     `gorm:"column:service_id"`
	ScheduledDate time.Time `gorm:"column:scheduled_date"`
	Notes         *string   `gorm:"column:notes"`
	Status        string    `gorm:"column:status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`

	ServiceName     string  `gorm:"column:service_name"`
	ServicePrice    float64 `gorm:"column:service_price"`
	PropertyAddress *string `gorm:"column:property_address"`
	ClientFirstName *string `gorm:"column:client_first_name"`
	ClientLastName  *string `gorm:"column:client_last_name"`
	ClientEmail     *string `gorm:"column:client_email"`
}

// ListByUser returns a client's requests with service and property detail,
// newest first.
func (r *RequestRepository) ListByUser(ctx context.Context, userID int64) ([]*RequestDetail, error) {
	return r.listDetail(ctx, &userID)
}

// ListAll returns every request with client identity for the admin view.
func (r *RequestRepository) ListAll(ctx context.Context) ([]*RequestDetail, error) {
	return r.listDetail(ctx, nil)
}

func (r *RequestRepository) listDetail(ctx context.Context, userID *int64) ([]*RequestDetail, error) {
	q := r.db.WithContext(ctx).
		Table("service_requests").
		Select(`service_requests.*,
			services.name    AS service_name,
			services.price   AS service_price,
			properties.address AS property_address,
			users.first_name AS client_first_name,
			users.last_name  AS client_last_name,
			users.email      AS client_email`).
		Joins("JOIN services ON services.id = service_requests.service_id").
		Joins("LEFT JOIN properties ON properties.id = service_requests.property_id").
		Joins("JOIN users ON users.id = service_requests.user_id").
		Order("service_requests.created_at DESC")

	if userID != nil {
		q = q.Where("service_requests.user_id = ?", *userID)
	}

	var rows []requestDetailRow
	if tx := q.Scan(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	deref := func(p *string) string {
		if p != nil {
			return *p
		}
		return ""
	}

	details := make([]*RequestDetail, 0, len(rows))
	for _, row := range rows {
		req := toDomainRequest(requestModel{
			ID:            row.ID,
			UserID:        row.UserID,
			PropertyID:    row.PropertyID,
			ServiceID:     row.ServiceID,
			ScheduledDate: row.ScheduledDate,
			Notes:         row.Notes,
			Status:        row.Status,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		})
		details = append(details, &RequestDetail{
			Request:         *req,
			ServiceName:     row.ServiceName,
			ServicePrice:    row.ServicePrice,
			PropertyAddress: deref(row.PropertyAddress),
			ClientFirstName: deref(row.ClientFirstName),
			ClientLastName:  deref(row.ClientLastName),
			ClientEmail:     deref(row.ClientEmail),
		})
	}
	return details, nil
}

// UpdateStatus sets the status column. Returns gorm.ErrRecordNotFound when
// the id does not exist.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&requestModel{}).
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
