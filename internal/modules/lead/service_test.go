package lead

import (
	"context"
	"errors"
	"testing"

	"concierge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	args := m.Called(ctx, l)
	if l != nil {
		l.ID = 5 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockLeadRepository) List(ctx context.Context) ([]*domain.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lead), args.Error(1)
}

type MockAdminLister struct {
	mock.Mock
}

func (m *MockAdminLister) ListAdmins(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
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

func TestService_Create_FansOutToEveryAdmin(t *testing.T) {
	leads := new(MockLeadRepository)
	admins := new(MockAdminLister)
	notifier := new(MockNotifier)
	mailer := new(MockMailer)

	leads.On("Create", mock.Anything, mock.Anything).Return(nil)
	admins.On("ListAdmins", mock.Anything).Return([]*domain.User{
		{ID: 1, Role: domain.RoleAdmin},
		{ID: 2, Role: domain.RoleAdmin},
	}, nil)
	notifier.On("Notify", mock.Anything, int64(1), mock.Anything, domain.NotificationInfo, (*int64)(nil)).Return(nil)
	notifier.On("Notify", mock.Anything, int64(2), mock.Anything, domain.NotificationInfo, (*int64)(nil)).Return(nil)
	mailer.On("Send", "staff@maison.test", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(leads, admins, notifier, mailer, "staff@maison.test")
	l, err := svc.Create(context.Background(), CreateLeadRequest{
		Email: "prospect@example.com",
		Name:  "Jean Prospect",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), l.ID)
	notifier.AssertNumberOfCalls(t, "Notify", 2)
	mailer.AssertExpectations(t)
}

func TestService_Create_SucceedsWhenSideChannelsFail(t *testing.T) {
	leads := new(MockLeadRepository)
	admins := new(MockAdminLister)
	notifier := new(MockNotifier)
	mailer := new(MockMailer)

	leads.On("Create", mock.Anything, mock.Anything).Return(nil)
	admins.On("ListAdmins", mock.Anything).Return([]*domain.User{{ID: 1}}, nil)
	notifier.On("Notify", mock.Anything, int64(1), mock.Anything, domain.NotificationInfo, (*int64)(nil)).
		Return(errors.New("socket down"))
	mailer.On("Send", "staff@maison.test", mock.Anything, mock.Anything).
		Return(errors.New("smtp down"))

	svc := NewService(leads, admins, notifier, mailer, "staff@maison.test")
	l, err := svc.Create(context.Background(), CreateLeadRequest{Email: "prospect@example.com"})

	assert.NoError(t, err)
	assert.NotNil(t, l)
}

func TestService_Create_RepositoryErrorPropagates(t *testing.T) {
	leads := new(MockLeadRepository)
	admins := new(MockAdminLister)
	notifier := new(MockNotifier)
	mailer := new(MockMailer)

	leads.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	svc := NewService(leads, admins, notifier, mailer, "")
	_, err := svc.Create(context.Background(), CreateLeadRequest{Email: "prospect@example.com"})

	assert.Error(t, err)
	admins.AssertNotCalled(t, "ListAdmins", mock.Anything)
}
