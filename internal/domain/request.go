package domain

import "time"

type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestValidated  RequestStatus = "validated"
	RequestRejected   RequestStatus = "rejected"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestCancelled  RequestStatus = "cancelled"
)

// requestTransitions is the closed transition table for service requests.
// rejected, completed and cancelled are terminal. Admin overrides outside
// the table require the explicit force flag on the update endpoint.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending:    {RequestValidated, RequestRejected, RequestCancelled},
	RequestValidated:  {RequestInProgress, RequestCancelled},
	RequestInProgress: {RequestCompleted, RequestCancelled},
}

// ValidRequestStatus reports whether s is a member of the status enum.
func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case RequestPending, RequestValidated, RequestRejected,
		RequestInProgress, RequestCompleted, RequestCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether from→to is an allowed transition.
func (from RequestStatus) CanTransitionTo(to RequestStatus) bool {
	for _, next := range requestTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Request is an authenticated client's ask for a service on a date, the
// precursor to a Reservation.
type Request struct {
	ID            int64         `json:"id"`
	UserID        int64         `json:"user_id"`
	PropertyID    *int64        `json:"property_id,omitempty"`
	ServiceID     int64         `json:"service_id"`
	ScheduledDate time.Time     `json:"scheduled_date"`
	Notes         string        `json:"notes"`
	Status        RequestStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (r *Request) IsPending() bool {
	return r.Status == RequestPending
}
