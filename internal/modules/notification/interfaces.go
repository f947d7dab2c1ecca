package notification

import (
	"context"

	"concierge/internal/domain"
)

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID int64) ([]*domain.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, id, userID int64) (int64, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, id, userID int64) error
}

// Pusher delivers an event to a user's live connections. The returned
// bool reports delivery, not receipt.
type Pusher interface {
	SendToUser(userID int64, event *WSEvent) bool
}
