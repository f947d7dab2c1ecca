package lead

import (
	"context"

	"concierge/internal/domain"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, l *domain.Lead) error
	List(ctx context.Context) ([]*domain.Lead, error)
}

type AdminLister interface {
	ListAdmins(ctx context.Context) ([]*domain.User, error)
}

// Notifier persists a notification and pushes it to connected sockets.
type Notifier interface {
	Notify(ctx context.Context, userID int64, message string, ntype domain.NotificationType, reservationID *int64) error
}

type Mailer interface {
	Send(toEmail, subject, htmlBody string) error
}
