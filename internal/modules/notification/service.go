package notification

import (
	"context"
	"errors"
	"log"

	"concierge/internal/domain"

	"gorm.io/gorm"
)

// Service persists notifications and mirrors them to live sockets. The
// database row is written first and is the source of truth: a user who
// was offline sees the notification on next fetch.
type Service struct {
	repo NotificationRepositoryInterface
	hub  Pusher
}

func NewService(repo NotificationRepositoryInterface, hub Pusher) *Service {
	return &Service{repo: repo, hub: hub}
}

// Notify stores the notification and best-effort pushes it. Push failure
// is not an error, only absence of the row is.
func (s *Service) Notify(ctx context.Context, userID int64, message string, ntype domain.NotificationType, reservationID *int64) error {
	if userID <= 0 {
		return ErrMissingRecipient
	}
	if message == "" {
		return ErrEmptyMessage
	}
	if !domain.ValidNotificationType(ntype) {
		return ErrInvalidType
	}

	n := &domain.Notification{
		UserID:               userID,
		Message:              message,
		Type:                 ntype,
		RelatedReservationID: reservationID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	if !s.hub.SendToUser(userID, &WSEvent{Type: EventNotification, Payload: n}) {
		log.Printf("notification_offline user_id=%d notification_id=%d", userID, n.ID)
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) CountUnread(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

// MarkRead flags one of the caller's notifications. Nothing matching
// (missing row, someone else's row, already read) is a no-op success
// with a zero count.
func (s *Service) MarkRead(ctx context.Context, id, userID int64) (int64, error) {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
