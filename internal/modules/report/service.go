package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"concierge/internal/domain"

	"gorm.io/gorm"
)

// Service computes the per-owner financial picture: completed reservation
// revenue against the expense ledger.
type Service struct {
	reservations ReservationSummer
	expenses     ExpenseRepositoryInterface
	users        UserGetter
}

func NewService(reservations ReservationSummer, expenses ExpenseRepositoryInterface, users UserGetter) *Service {
	return &Service{reservations: reservations, expenses: expenses, users: users}
}

// NetRevenue reports gross, expenses and net for one owner. Owners with
// no completed reservations and no expenses get an all-zero report, not
// an error.
func (s *Service) NetRevenue(ctx context.Context, ownerID int64) (*NetRevenueReport, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	gross, err := s.reservations.SumCompletedPriceByUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	spent, err := s.expenses.SumByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &NetRevenueReport{
		OwnerID:  ownerID,
		Gross:    fmt.Sprintf("%.2f", gross),
		Expenses: fmt.Sprintf("%.2f", spent),
		Net:      fmt.Sprintf("%.2f", gross-spent),
	}, nil
}

// RecordExpense adds a line to an owner's ledger. IncurredAt defaults to
// now when the form leaves it out.
func (s *Service) RecordExpense(ctx context.Context, dto CreateExpenseDTO) (*domain.Expense, error) {
	if _, err := s.users.GetByID(ctx, dto.OwnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	incurred := time.Now()
	if dto.IncurredAt != "" {
		t, err := time.Parse("2006-01-02", dto.IncurredAt)
		if err != nil {
			return nil, fmt.Errorf("invalid incurred_at %q", dto.IncurredAt)
		}
		incurred = t
	}

	e := &domain.Expense{
		OwnerID:    dto.OwnerID,
		Label:      dto.Label,
		Amount:     dto.Amount,
		IncurredAt: incurred,
	}
	if err := s.expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) ListExpenses(ctx context.Context, ownerID int64) ([]*domain.Expense, error) {
	return s.expenses.ListByOwner(ctx, ownerID)
}
