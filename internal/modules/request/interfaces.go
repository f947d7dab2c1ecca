package request

import (
	"context"

	"concierge/internal/domain"
	"concierge/internal/repository"
)

type RequestRepositoryInterface interface {
	Create(ctx context.Context, req *domain.Request) error
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
	ListByUser(ctx context.Context, userID int64) ([]*repository.RequestDetail, error)
	ListAll(ctx context.Context) ([]*repository.RequestDetail, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) error
}

type ServiceGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

type PropertyGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// AdminLister feeds the per-admin alert fan-out on new requests.
type AdminLister interface {
	ListAdmins(ctx context.Context) ([]*domain.User, error)
}

// ReservationCreator turns a validated request into a reservation.
type ReservationCreator interface {
	CreateFromRequest(ctx context.Context, req *domain.Request) (*domain.Reservation, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID int64, message string, ntype domain.NotificationType, reservationID *int64) error
}

type Mailer interface {
	Send(toEmail, subject, htmlBody string) error
}
