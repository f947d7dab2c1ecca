package catalog

import (
	"context"
	"testing"

	"concierge/internal/domain"
	"concierge/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	if s != nil {
		s.ID = 11 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListActive(ctx context.Context) ([]*domain.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListAll(ctx context.Context) ([]*domain.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockServiceRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 21
	}
	return args.Error(0)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Property, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) ListAll(ctx context.Context) ([]*repository.PropertyDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*repository.PropertyDetail), args.Error(1)
}

func (m *MockPropertyRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockPropertyRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) Create(ctx context.Context, p *domain.ServiceProvider) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 31
	}
	return args.Error(0)
}

func (m *MockProviderRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceProvider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceProvider), args.Error(1)
}

func (m *MockProviderRepository) ListActive(ctx context.Context) ([]*domain.ServiceProvider, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.ServiceProvider), args.Error(1)
}

func (m *MockProviderRepository) ListAll(ctx context.Context) ([]*domain.ServiceProvider, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.ServiceProvider), args.Error(1)
}

func (m *MockProviderRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockProviderRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

func newTestService() (*Service, *MockServiceRepository, *MockPropertyRepository, *MockProviderRepository, *MockUserGetter) {
	services := new(MockServiceRepository)
	properties := new(MockPropertyRepository)
	providers := new(MockProviderRepository)
	users := new(MockUserGetter)
	return NewService(services, properties, providers, users), services, properties, providers, users
}

func TestService_UpdateService_PartialFields(t *testing.T) {
	svc, services, _, _, _ := newTestService()

	price := 120.0
	services.On("Update", mock.Anything, int64(11), map[string]any{"price": 120.0}).Return(nil)
	services.On("GetByID", mock.Anything, int64(11)).Return(&domain.Service{ID: 11, Name: "Ménage", Price: 120}, nil)

	updated, err := svc.UpdateService(context.Background(), 11, UpdateServiceRequest{Price: &price})

	assert.NoError(t, err)
	assert.Equal(t, 120.0, updated.Price)
	assert.Equal(t, "Ménage", updated.Name)
	services.AssertExpectations(t)
}

func TestService_UpdateService_NotFound(t *testing.T) {
	svc, services, _, _, _ := newTestService()

	name := "Jardinage"
	services.On("Update", mock.Anything, int64(99), mock.Anything).Return(gorm.ErrRecordNotFound)

	_, err := svc.UpdateService(context.Background(), 99, UpdateServiceRequest{Name: &name})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeactivateService_SoftDelete(t *testing.T) {
	svc, services, _, _, _ := newTestService()

	services.On("Deactivate", mock.Anything, int64(11)).Return(nil)

	assert.NoError(t, svc.DeactivateService(context.Background(), 11))
	services.AssertExpectations(t)
}

func TestService_CreateProperty_ClientIgnoresOwnerOverride(t *testing.T) {
	svc, _, properties, _, users := newTestService()

	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	properties.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Property) bool {
		return p.OwnerID == 7 && p.IsActive
	})).Return(nil)

	p, err := svc.CreateProperty(context.Background(), 7, domain.RoleClient, CreatePropertyRequest{
		Address: "12 rue des Sables",
		OwnerID: 999, // clients cannot create for someone else
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), p.OwnerID)
}

func TestService_CreateProperty_AdminForMissingOwner(t *testing.T) {
	svc, _, properties, _, users := newTestService()

	users.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateProperty(context.Background(), 1, domain.RoleAdmin, CreatePropertyRequest{
		Address: "12 rue des Sables",
		OwnerID: 404,
	})

	assert.ErrorIs(t, err, ErrOwnerNotFound)
	properties.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_UpdateProperty_NotOwnerGetsOpaqueError(t *testing.T) {
	svc, _, properties, _, _ := newTestService()

	properties.On("GetByID", mock.Anything, int64(21)).Return(&domain.Property{ID: 21, OwnerID: 7}, nil)

	addr := "nouvelle adresse"
	_, err := svc.UpdateProperty(context.Background(), 8, domain.RoleClient, 21, UpdatePropertyRequest{Address: &addr})

	assert.ErrorIs(t, err, ErrNotOwned)
	properties.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateProperty_AdminBypassesOwnership(t *testing.T) {
	svc, _, properties, _, _ := newTestService()

	properties.On("GetByID", mock.Anything, int64(21)).Return(&domain.Property{ID: 21, OwnerID: 7}, nil)
	addr := "3 avenue de la Plage"
	properties.On("Update", mock.Anything, int64(21), map[string]any{"address": addr}).Return(nil)

	_, err := svc.UpdateProperty(context.Background(), 1, domain.RoleAdmin, 21, UpdatePropertyRequest{Address: &addr})

	assert.NoError(t, err)
	properties.AssertExpectations(t)
}

func TestService_ListProviders_ActiveOnlyByDefault(t *testing.T) {
	svc, _, _, providers, _ := newTestService()

	providers.On("ListActive", mock.Anything).Return([]*domain.ServiceProvider{{ID: 31, IsActive: true}}, nil)

	list, err := svc.ListProviders(context.Background(), false)

	assert.NoError(t, err)
	assert.Len(t, list, 1)
	providers.AssertNotCalled(t, "ListAll", mock.Anything)
}
