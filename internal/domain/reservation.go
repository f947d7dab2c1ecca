package domain

import "time"

type ReservationStatus string

const (
	ReservationAssigned   ReservationStatus = "assigned"
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationInProgress ReservationStatus = "in_progress"
	ReservationCompleted  ReservationStatus = "completed"
	ReservationCancelled  ReservationStatus = "cancelled"
)

// ValidReservationStatus reports whether s is a member of the status enum.
func ValidReservationStatus(s ReservationStatus) bool {
	switch s {
	case ReservationAssigned, ReservationConfirmed, ReservationInProgress,
		ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}

// Reservation is a scheduled, billable service instance, optionally
// provider-assigned. RequestID is nil for reservations created manually
// by staff.
type Reservation struct {
	ID            int64             `json:"id"`
	RequestID     *int64            `json:"request_id,omitempty"`
	UserID        int64             `json:"user_id"`
	PropertyID    *int64            `json:"property_id,omitempty"`
	ServiceID     *int64            `json:"service_id,omitempty"`
	ProviderID    *int64            `json:"provider_id,omitempty"`
	ScheduledDate time.Time         `json:"scheduled_date"`
	Status        ReservationStatus `json:"status"`
	TotalPrice    float64           `json:"total_price"`
	Notes         string            `json:"notes"`
	AssignedAt    *time.Time        `json:"assigned_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// IsAssignable reports whether a provider may be set or changed. A provider,
// once set, may only be replaced while the reservation is still in one of
// these states.
func (r *Reservation) IsAssignable() bool {
	switch r.Status {
	case ReservationAssigned, ReservationConfirmed, ReservationInProgress:
		return true
	}
	return false
}
