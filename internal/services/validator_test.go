package services

import (
	"context"
	"errors"
	"testing"

	"delivery-order-service/internal/domain"
	"delivery-order-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderValidator_Validate(t *testing.T) {
	items := []ItemRequest{{ProductID: TestProductID, Quantity: 2}}

	tests := []struct {
		name       string
		items      []ItemRequest
		setupMocks func(*mocks.MockCatalogClient)
		wantKind   error
		wantMsg    string
	}{
		{
			name:  "valid order resolves snapshot",
			items: items,
			setupMocks: func(catalog *mocks.MockCatalogClient) {
				catalog.On("GetAccount", mock.Anything, TestAccountID).Return(CreateMockAccount(TestAccountID, true), nil)
				catalog.On("GetRestaurant", mock.Anything, TestRestaurantID).Return(CreateMockRestaurant(TestRestaurantID, true, "8.50"), nil)
				catalog.On("GetProduct", mock.Anything, TestProductID).Return(CreateMockProduct(TestProductID, TestRestaurantID, "45.90", true), nil)
			},
		},
		{
			name:       "empty item list",
			items:      nil,
			setupMocks: func(catalog *mocks.MockCatalogClient) {},
			wantKind:   domain.ErrValidation,
			wantMsg:    "items must not be empty",
		},
		{
			name:       "non positive quantity",
			items:      []ItemRequest{{ProductID: TestProductID, Quantity: 0}},
			setupMocks: func(catalog *mocks.MockCatalogClient) {},
			wantKind:   domain.ErrValidation,
			wantMsg:    "quantity must be positive",
		},
		{
			name:  "account not found",
			items: items,
			setupMocks: func(catalog *mocks.MockCatalogClient) {
				catalog.On("GetAccount", mock.Anything, TestAccountID).Return(nil, nil)
			},
			wantKind: domain.ErrNotFound,
			wantMsg:  "account",
		},
		{
			name:  "account inactive",
			items: items,
			setupMocks: func(catalog *mocks.MockCatalogClient) {
				catalog.On("GetAccount", mock.Anything, TestAccountID).Return(CreateMockAccount(TestAccountID, false), nil)
			},
			wantKind: domain.ErrInactive,
			wantMsg:  "account",
		},
		{
			name:  "restaurant not found",
			items: items,
			setupMocks: func(catalog *mocks.MockCatalogClient) {
				catalog.On("GetAccount", mock.Anything, TestAccountID).Return(CreateMockAccount(TestAccountID, true), nil)
				catalog.On("GetRestaurant", mock.Anything, TestRestaurantID).Return(nil, nil)
			},
			wantKind: domain.ErrNotFound,
			wantMsg:  "restaurant",
		},
		{
			name:  "restaurant inactive",
			items: items,
			setupMocks: func(catalog *mocks.MockCatalogClient) {
				catalog.On("GetAccount", mock.Anything, TestAccountID).Return(CreateMockAccount(TestAccountID, true), nil)
				catalog.On("GetRestaurant", mock.Anything, TestRestaurantID).Return(CreateMockRestaurant(TestRestaurantID, false, "8.50"), nil)
			},
			wantKind: domain.ErrInactive,
			wantMsg:  "restaurant",
		},
		{
			name:  "product not found",
			items: items,
			setupMocks: func(catalog *mocks.MockCatalogClient) {
				catalog.On("GetAccount", mock.Anything, TestAccountID).Return(CreateMockAccount(TestAccountID, true), nil)
				catalog.On("GetRestaurant", mock.Anything, TestRestaurantID).Return(CreateMockRestaurant(TestRestaurantID, true, "8.50"), nil)
				catalog.On("GetProduct", mock.Anything, TestProductID).Return(nil, nil)
			},
			wantKind: domain.ErrNotFound,
			wantMsg:  "product",
		},
		{
			name:  "product unavailable",
			items: items,
			setupMocks: func(catalog *mocks.MockCatalogClient) {
				catalog.On("GetAccount", mock.Anything, TestAccountID).Return(CreateMockAccount(TestAccountID, true), nil)
				catalog.On("GetRestaurant", mock.Anything, TestRestaurantID).Return(CreateMockRestaurant(TestRestaurantID, true, "8.50"), nil)
				catalog.On("GetProduct", mock.Anything, TestProductID).Return(CreateMockProduct(TestProductID, TestRestaurantID, "45.90", false), nil)
			},
			wantKind: domain.ErrBusinessRule,
			wantMsg:  "unavailable",
		},
		{
			name:  "product belongs to another restaurant",
			items: items,
			setupMocks: func(catalog *mocks.MockCatalogClient) {
				catalog.On("GetAccount", mock.Anything, TestAccountID).Return(CreateMockAccount(TestAccountID, true), nil)
				catalog.On("GetRestaurant", mock.Anything, TestRestaurantID).Return(CreateMockRestaurant(TestRestaurantID, true, "8.50"), nil)
				catalog.On("GetProduct", mock.Anything, TestProductID).Return(CreateMockProduct(TestProductID, uint64(99), "45.90", true), nil)
			},
			wantKind: domain.ErrBusinessRule,
			wantMsg:  "does not belong to restaurant",
		},
		{
			name:  "catalog failure propagates",
			items: items,
			setupMocks: func(catalog *mocks.MockCatalogClient) {
				catalog.On("GetAccount", mock.Anything, TestAccountID).Return(nil, errors.New("catalog service returned status 503"))
			},
			wantMsg: "503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := new(mocks.MockCatalogClient)
			tt.setupMocks(catalog)

			validator := NewOrderValidator(catalog)
			snapshot, err := validator.Validate(context.Background(), TestAccountID, TestRestaurantID, tt.items)

			if tt.wantKind != nil || tt.wantMsg != "" {
				assert.Error(t, err)
				if tt.wantKind != nil {
					assert.True(t, errors.Is(err, tt.wantKind), "want %v, got %v", tt.wantKind, err)
				}
				if tt.wantMsg != "" {
					assert.Contains(t, err.Error(), tt.wantMsg)
				}
				assert.Nil(t, snapshot)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, snapshot)
				assert.True(t, snapshot.Account.Active)
				assert.Equal(t, "8.50", snapshot.Restaurant.DeliveryFee.StringFixed(2))
				assert.Len(t, snapshot.Items, 1)
				assert.Equal(t, "45.90", snapshot.Items[0].Product.Price.StringFixed(2))
				assert.Equal(t, 2, snapshot.Items[0].Quantity)
			}

			catalog.AssertExpectations(t)
		})
	}
}
