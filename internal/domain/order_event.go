package domain

import "time"

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

type OrderCreatedEvent struct {
	OrderID      uint64    `json:"orderId"`
	OrderNumber  string    `json:"orderNumber"`
	AccountID    uint64    `json:"accountId"`
	RestaurantID uint64    `json:"restaurantId"`
	Total        string    `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
}

type OrderStatusChangedEvent struct {
	OrderID        uint64      `json:"orderId"`
	OrderNumber    string      `json:"orderNumber"`
	PreviousStatus OrderStatus `json:"previousStatus"`
	CurrentStatus  OrderStatus `json:"currentStatus"`
	OccurredAt     time.Time   `json:"occurredAt"`
}
