package report

import (
	"context"

	"concierge/internal/domain"
)

// ReservationSummer exposes the gross side of the revenue report.
type ReservationSummer interface {
	SumCompletedPriceByUser(ctx context.Context, userID int64) (float64, error)
}

type ExpenseRepositoryInterface interface {
	Create(ctx context.Context, e *domain.Expense) error
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Expense, error)
	SumByOwner(ctx context.Context, ownerID int64) (float64, error)
}

type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
