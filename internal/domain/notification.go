package domain

import "time"

type NotificationType string

const (
	NotificationInfo        NotificationType = "info"
	NotificationAlert       NotificationType = "alert"
	NotificationSuccess     NotificationType = "success"
	NotificationReservation NotificationType = "reservation"
)

// ValidNotificationType reports whether t is a member of the type enum.
func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotificationInfo, NotificationAlert, NotificationSuccess, NotificationReservation:
		return true
	}
	return false
}

// Notification is a persisted per-recipient message. The row is the source
// of truth; realtime push is best-effort on top of it.
type Notification struct {
	ID                   int64            `json:"id"`
	UserID               int64            `json:"user_id"`
	Message              string           `json:"message"`
	Type                 NotificationType `json:"type"`
	RelatedReservationID *int64           `json:"related_reservation_id,omitempty"`
	IsRead               bool             `json:"is_read"`
	CreatedAt            time.Time        `json:"created_at"`
}
