package report

import (
	"context"
	"testing"

	"concierge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockReservationSummer struct {
	mock.Mock
}

func (m *MockReservationSummer) SumCompletedPriceByUser(ctx context.Context, userID int64) (float64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(float64), args.Error(1)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	args := m.Called(ctx, e)
	if e != nil {
		e.ID = 90 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockExpenseRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Expense, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SumByOwner(ctx context.Context, ownerID int64) (float64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(float64), args.Error(1)
}

type MockUserGetter struct {
	mock.Mock
}

func (m *MockUserGetter) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestService_NetRevenue_GrossMinusExpenses(t *testing.T) {
	reservations := new(MockReservationSummer)
	expenses := new(MockExpenseRepository)
	users := new(MockUserGetter)

	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	reservations.On("SumCompletedPriceByUser", mock.Anything, int64(7)).Return(350.0, nil)
	expenses.On("SumByOwner", mock.Anything, int64(7)).Return(50.0, nil)

	svc := NewService(reservations, expenses, users)
	report, err := svc.NetRevenue(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, "350.00", report.Gross)
	assert.Equal(t, "50.00", report.Expenses)
	assert.Equal(t, "300.00", report.Net)
}

func TestService_NetRevenue_EmptyBooksAreZero(t *testing.T) {
	reservations := new(MockReservationSummer)
	expenses := new(MockExpenseRepository)
	users := new(MockUserGetter)

	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	reservations.On("SumCompletedPriceByUser", mock.Anything, int64(7)).Return(0.0, nil)
	expenses.On("SumByOwner", mock.Anything, int64(7)).Return(0.0, nil)

	svc := NewService(reservations, expenses, users)
	report, err := svc.NetRevenue(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, "0.00", report.Net)
}

func TestService_NetRevenue_NegativeNetAllowed(t *testing.T) {
	reservations := new(MockReservationSummer)
	expenses := new(MockExpenseRepository)
	users := new(MockUserGetter)

	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	reservations.On("SumCompletedPriceByUser", mock.Anything, int64(7)).Return(100.0, nil)
	expenses.On("SumByOwner", mock.Anything, int64(7)).Return(180.5, nil)

	svc := NewService(reservations, expenses, users)
	report, err := svc.NetRevenue(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, "-80.50", report.Net)
}

func TestService_NetRevenue_UnknownOwner(t *testing.T) {
	reservations := new(MockReservationSummer)
	expenses := new(MockExpenseRepository)
	users := new(MockUserGetter)

	users.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(reservations, expenses, users)
	_, err := svc.NetRevenue(context.Background(), 404)

	assert.ErrorIs(t, err, ErrOwnerNotFound)
	reservations.AssertNotCalled(t, "SumCompletedPriceByUser", mock.Anything, mock.Anything)
}

func TestService_RecordExpense_DefaultsIncurredAt(t *testing.T) {
	reservations := new(MockReservationSummer)
	expenses := new(MockExpenseRepository)
	users := new(MockUserGetter)

	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	expenses.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.Expense) bool {
		return e.OwnerID == 7 && !e.IncurredAt.IsZero()
	})).Return(nil)

	svc := NewService(reservations, expenses, users)
	e, err := svc.RecordExpense(context.Background(), CreateExpenseDTO{
		OwnerID: 7,
		Label:   "Produits d'entretien",
		Amount:  50,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(90), e.ID)
}
