package domain

import "time"

// Service is a catalog item offered by the concierge. Deactivation is
// logical: inactive services disappear from the public catalogue but stay
// referenced by historical requests and reservations.
type Service struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Price            float64   `json:"price"`
	DurationEstimate string    `json:"duration_estimate"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Property is a client-owned real estate asset managed by the concierge.
type Property struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Address   string    `json:"address"`
	Surface   float64   `json:"surface"`
	NumRooms  int       `json:"num_rooms"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceProvider is an external or internal performer assignable to a
// reservation. Never hard-deleted.
type ServiceProvider struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Speciality   string    `json:"speciality"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
