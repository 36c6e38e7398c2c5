package services

import (
	"time"

	"delivery-order-service/internal/domain"
	"delivery-order-service/internal/infra"

	"github.com/shopspring/decimal"
)

func CreateMockOrder(id uint64, accountID, restaurantID uint64, status domain.OrderStatus) *domain.Order {
	subtotal := decimal.RequireFromString("91.80")
	fee := decimal.RequireFromString("8.50")
	return &domain.Order{
		ID:              id,
		Number:          "ORD-20260831120000-ABCD1234",
		AccountID:       accountID,
		RestaurantID:    restaurantID,
		DeliveryAddress: "221B Baker Street",
		PaymentMethod:   "CARD",
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		Total:           subtotal.Add(fee),
		Status:          status,
		Items: []domain.OrderItem{
			{
				ProductID:    TestProductID,
				Quantity:     2,
				UnitPrice:    decimal.RequireFromString("45.90"),
				LineSubtotal: subtotal,
			},
		},
		CreatedAt: time.Now(),
	}
}

func CreateMockAccount(id uint64, active bool) *infra.AccountInfo {
	return &infra.AccountInfo{ID: id, Active: active}
}

func CreateMockRestaurant(id uint64, active bool, fee string) *infra.RestaurantInfo {
	return &infra.RestaurantInfo{ID: id, Active: active, DeliveryFee: decimal.RequireFromString(fee)}
}

func CreateMockProduct(id, restaurantID uint64, price string, available bool) *infra.ProductInfo {
	return &infra.ProductInfo{
		ID:           id,
		RestaurantID: restaurantID,
		Price:        decimal.RequireFromString(price),
		Available:    available,
	}
}

const (
	TestAccountID    = uint64(1)
	TestRestaurantID = uint64(7)
	TestProductID    = uint64(11)
	TestOrderID      = uint64(1)
)
