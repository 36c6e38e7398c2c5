package mocks

import (
	"context"

	"delivery-order-service/internal/domain"
	"delivery-order-service/internal/infra"
	"delivery-order-service/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

type MockCatalogClient struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

func (m *MockCatalogClient) GetAccount(ctx context.Context, id uint64) (*infra.AccountInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infra.AccountInfo), args.Error(1)
}

func (m *MockCatalogClient) GetRestaurant(ctx context.Context, id uint64) (*infra.RestaurantInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infra.RestaurantInfo), args.Error(1)
}

func (m *MockCatalogClient) GetProduct(ctx context.Context, id uint64) (*infra.ProductInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infra.ProductInfo), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByAccount(ctx context.Context, accountID uint64, status domain.OrderStatus, page repository.Page) ([]domain.Order, error) {
	args := m.Called(ctx, accountID, status, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByRestaurant(ctx context.Context, restaurantID uint64, page repository.Page) ([]domain.Order, error) {
	args := m.Called(ctx, restaurantID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

// UpdateStatus mirrors the real repository: the configured order stands in
// for the freshly read row, and apply runs against it before it is returned.
func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uint64, apply repository.TransitionFunc) (*domain.Order, error) {
	args := m.Called(ctx, id, apply)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	order := args.Get(0).(*domain.Order)
	if err := apply(order); err != nil {
		return nil, err
	}
	return order, args.Error(1)
}
