package reservation

import (
	"context"
	"time"

	"concierge/internal/domain"
	"concierge/internal/repository"
)

type ReservationRepositoryInterface interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	AssignProvider(ctx context.Context, id, providerID int64, status domain.ReservationStatus, assignedAt time.Time) error
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	ListForUser(ctx context.Context, userID int64) ([]*repository.ReservationDetail, error)
	ListForAdmin(ctx context.Context) ([]*repository.ReservationDetail, error)
}

type ServiceGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

type ProviderGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceProvider, error)
}

type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID int64, message string, ntype domain.NotificationType, reservationID *int64) error
}

type Mailer interface {
	Send(toEmail, subject, htmlBody string) error
}
