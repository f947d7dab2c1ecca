package repository

import (
	"context"
	"time"

	"concierge/internal/domain"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type notificationModel struct {
	ID                   int64     `gorm:"column:id;primaryKey"`
	UserID               int64     `gorm:"column:user_id"`
	Message              string    `gorm:"column:message"`
	Type                 string    `gorm:"column:type"`
	RelatedReservationID *int64    `gorm:"column:related_reservation_id"`
	IsRead               bool      `gorm:"column:is_read"`
	CreatedAt            time.Time `gorm:"column:created_at"`
}

func (notificationModel) TableName() string { return "notifications" }

func toDomainNotification(m notificationModel) *domain.Notification {
	return &domain.Notification{
		ID:                   m.ID,
		UserID:               m.UserID,
		Message:              m.Message,
		Type:                 domain.NotificationType(m.Type),
		RelatedReservationID: m.RelatedReservationID,
		IsRead:               m.IsRead,
		CreatedAt:            m.CreatedAt,
	}
}

func toNotificationModel(n *domain.Notification) notificationModel {
	return notificationModel{
		ID:                   n.ID,
		UserID:               n.UserID,
		Message:              n.Message,
		Type:                 string(n.Type),
		RelatedReservationID: n.RelatedReservationID,
		IsRead:               n.IsRead,
		CreatedAt:            n.CreatedAt,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	m := toNotificationModel(n)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*n = *toDomainNotification(m)
	return nil
}

// ListByUser returns the recipient's notifications, newest first.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	var models []notificationModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	notifications := make([]*domain.Notification, 0, len(models))
	for _, m := range models {
		notifications = append(notifications, toDomainNotification(m))
	}
	return notifications, nil
}

// CountUnread returns the recipient's unread badge count.
func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

// MarkRead flags one notification, scoped to its recipient, and reports
// how many rows changed. Zero is not an error: marking a missing or
// foreign row is a no-op.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// MarkAllRead flags every unread notification for the recipient and
// returns how many rows changed.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// Delete removes one notification, scoped to its recipient. Returns
// gorm.ErrRecordNotFound when no row matched.
func (r *NotificationRepository) Delete(ctx context.Context, id, userID int64) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&notificationModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
