package reservation

import (
	"context"
	"testing"
	"time"

	"concierge/internal/domain"
	"concierge/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	if res != nil {
		res.ID = 500 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) AssignProvider(ctx context.Context, id, providerID int64, status domain.ReservationStatus, assignedAt time.Time) error {
	args := m.Called(ctx, id, providerID, status, assignedAt)
	return args.Error(0)
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockReservationRepository) ListForUser(ctx context.Context, userID int64) ([]*repository.ReservationDetail, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*repository.ReservationDetail), args.Error(1)
}

func (m *MockReservationRepository) ListForAdmin(ctx context.Context) ([]*repository.ReservationDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*repository.ReservationDetail), args.Error(1)
}

type MockServiceGetter struct {
	mock.Mock
}

func (m *MockServiceGetter) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

type MockProviderGetter struct {
	mock.Mock
}

func (m *MockProviderGetter) GetByID(ctx context.Context, id int64) (*domain.ServiceProvider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceProvider), args.Error(1)
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

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, userID int64, message string, ntype domain.NotificationType, reservationID *int64) error {
	args := m.Called(ctx, userID, message, ntype, reservationID)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(toEmail, subject, htmlBody string) error {
	args := m.Called(toEmail, subject, htmlBody)
	return args.Error(0)
}

type fixture struct {
	svc          *Service
	reservations *MockReservationRepository
	services     *MockServiceGetter
	providers    *MockProviderGetter
	users        *MockUserGetter
	notifier     *MockNotifier
	mailer       *MockMailer
}

func newFixture() *fixture {
	f := &fixture{
		reservations: new(MockReservationRepository),
		services:     new(MockServiceGetter),
		providers:    new(MockProviderGetter),
		users:        new(MockUserGetter),
		notifier:     new(MockNotifier),
		mailer:       new(MockMailer),
	}
	f.svc = NewService(f.reservations, f.services, f.providers, f.users, f.notifier, f.mailer)
	return f
}

func (f *fixture) allowSideEffects() {
	f.notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.users.On("GetByID", mock.Anything, mock.Anything).Return(&domain.User{ID: 7, Email: "c@example.com"}, nil).Maybe()
	f.mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}

func TestService_CreateFromRequest_StampsServicePrice(t *testing.T) {
	f := newFixture()

	f.services.On("GetByID", mock.Anything, int64(3)).Return(&domain.Service{ID: 3, Price: 150}, nil)
	f.reservations.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.TotalPrice == 150 && r.Status == domain.ReservationAssigned && r.RequestID != nil
	})).Return(nil)

	req := &domain.Request{ID: 77, UserID: 7, ServiceID: 3, ScheduledDate: time.Now()}
	res, err := f.svc.CreateFromRequest(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, int64(500), res.ID)
	assert.Equal(t, 150.0, res.TotalPrice)
}

func TestService_CreateFromRequest_PriceLookupFailureWritesZero(t *testing.T) {
	f := newFixture()

	f.services.On("GetByID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)
	f.reservations.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.TotalPrice == 0
	})).Return(nil)

	req := &domain.Request{ID: 77, UserID: 7, ServiceID: 3, ScheduledDate: time.Now()}
	res, err := f.svc.CreateFromRequest(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, res.TotalPrice)
}

func TestService_CreateManual_CombinesDateAndTime(t *testing.T) {
	f := newFixture()
	f.allowSideEffects()

	f.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	f.reservations.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.ScheduledDate.Hour() == 14 && r.ScheduledDate.Minute() == 30
	})).Return(nil)

	res, err := f.svc.CreateManual(context.Background(), CreateReservationDTO{
		UserID: 7,
		Date:   "2026-09-20",
		Time:   "14:30",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ReservationConfirmed, res.Status)
}

func TestService_CreateManual_ServiceLabelKeptInNotes(t *testing.T) {
	f := newFixture()
	f.allowSideEffects()

	f.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	f.reservations.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.ServiceID == nil && r.Notes == "Service demandé: Livraison de bois"
	})).Return(nil)

	_, err := f.svc.CreateManual(context.Background(), CreateReservationDTO{
		UserID:       7,
		ServiceLabel: "Livraison de bois",
		Date:         "2026-09-20",
	})

	assert.NoError(t, err)
	f.reservations.AssertExpectations(t)
}

func TestService_CreateManual_UnknownClient(t *testing.T) {
	f := newFixture()

	f.users.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.CreateManual(context.Background(), CreateReservationDTO{
		UserID: 404,
		Date:   "2026-09-20",
	})

	assert.ErrorIs(t, err, ErrClientNotFound)
	f.reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_AssignProvider_Success(t *testing.T) {
	f := newFixture()
	f.allowSideEffects()

	f.reservations.On("GetByID", mock.Anything, int64(500)).Return(&domain.Reservation{
		ID: 500, UserID: 7, Status: domain.ReservationConfirmed,
	}, nil)
	f.providers.On("GetByID", mock.Anything, int64(31)).Return(&domain.ServiceProvider{
		ID: 31, Name: "Paul Piscine", IsActive: true,
	}, nil)
	f.reservations.On("AssignProvider", mock.Anything, int64(500), int64(31), domain.ReservationInProgress, mock.Anything).Return(nil)

	res, err := f.svc.AssignProvider(context.Background(), 500, AssignProviderDTO{ProviderID: 31})

	assert.NoError(t, err)
	assert.Equal(t, int64(31), *res.ProviderID)
	assert.Equal(t, domain.ReservationInProgress, res.Status)
	assert.NotNil(t, res.AssignedAt)
}

func TestService_AssignProvider_InactiveProviderLooksMissing(t *testing.T) {
	f := newFixture()

	f.reservations.On("GetByID", mock.Anything, int64(500)).Return(&domain.Reservation{
		ID: 500, Status: domain.ReservationConfirmed,
	}, nil)
	f.providers.On("GetByID", mock.Anything, int64(31)).Return(&domain.ServiceProvider{
		ID: 31, IsActive: false,
	}, nil)

	_, err := f.svc.AssignProvider(context.Background(), 500, AssignProviderDTO{ProviderID: 31})

	assert.ErrorIs(t, err, ErrProviderNotFound)
	f.reservations.AssertNotCalled(t, "AssignProvider", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_AssignProvider_CompletedReservationConflicts(t *testing.T) {
	f := newFixture()

	f.reservations.On("GetByID", mock.Anything, int64(500)).Return(&domain.Reservation{
		ID: 500, Status: domain.ReservationCompleted,
	}, nil)
	f.providers.On("GetByID", mock.Anything, int64(31)).Return(&domain.ServiceProvider{
		ID: 31, IsActive: true,
	}, nil)

	_, err := f.svc.AssignProvider(context.Background(), 500, AssignProviderDTO{ProviderID: 31})

	assert.ErrorIs(t, err, ErrNotAssignable)
}

func TestService_UpdateStatus_UnknownStatusRejected(t *testing.T) {
	f := newFixture()

	_, err := f.svc.UpdateStatus(context.Background(), 500, UpdateStatusDTO{Status: "paused"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	f.reservations.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_NotifiesClient(t *testing.T) {
	f := newFixture()

	f.reservations.On("GetByID", mock.Anything, int64(500)).Return(&domain.Reservation{
		ID: 500, UserID: 7, Status: domain.ReservationInProgress,
	}, nil)
	f.reservations.On("UpdateStatus", mock.Anything, int64(500), domain.ReservationCompleted).Return(nil)
	f.notifier.On("Notify", mock.Anything, int64(7), mock.Anything, domain.NotificationReservation, mock.Anything).Return(nil)
	f.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Email: "c@example.com"}, nil)
	f.mailer.On("Send", "c@example.com", mock.Anything, mock.Anything).Return(nil)

	res, err := f.svc.UpdateStatus(context.Background(), 500, UpdateStatusDTO{Status: "completed"})

	assert.NoError(t, err)
	assert.Equal(t, domain.ReservationCompleted, res.Status)
	f.notifier.AssertExpectations(t)
}
