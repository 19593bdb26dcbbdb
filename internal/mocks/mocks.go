package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

type MockOrderRepository struct {
	mock.Mock
}

var _ repository.OrderRepository = (*MockOrderRepository)(nil)

func (m *MockOrderRepository) Create(draft domain.OrderDraft) (domain.Order, error) {
	args := m.Called(draft)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Get(id int64) (domain.Order, error) {
	args := m.Called(id)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrderRepository) List() ([]domain.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Patch(id int64, patch domain.OrderPatch) (domain.Order, error) {
	args := m.Called(id, patch)
	return args.Get(0).(domain.Order), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

// MockCatalogSource and MockOrderPlacer satisfy the storefront engine's
// collaborator interfaces structurally; asserting that here would create an
// import cycle with the engine's own tests.
type MockCatalogSource struct {
	mock.Mock
}

func (m *MockCatalogSource) Products(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

type MockOrderPlacer struct {
	mock.Mock
}

func (m *MockOrderPlacer) Place(ctx context.Context, draft domain.OrderDraft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}
