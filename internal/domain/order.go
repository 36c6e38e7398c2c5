package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending        OrderStatus = "PENDING"
	StatusConfirmed      OrderStatus = "CONFIRMED"
	StatusPreparing      OrderStatus = "PREPARING"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusCanceled       OrderStatus = "CANCELED"
)

// statusTransitions is the single source of truth for the order lifecycle.
// Both UpdateStatus and Cancel consult it, so the two paths cannot drift.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:        {StatusConfirmed, StatusCanceled},
	StatusConfirmed:      {StatusPreparing, StatusCanceled},
	StatusPreparing:      {StatusOutForDelivery},
	StatusOutForDelivery: {StatusDelivered},
	StatusDelivered:      {},
	StatusCanceled:       {},
}

// Order is the aggregate root. Items are owned by the order as a plain
// ordered slice; an item never references its parent back.
type Order struct {
	ID              uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Number          string          `json:"orderNumber" gorm:"column:number;size:32;not null;uniqueIndex"`
	AccountID       uint64          `json:"accountId" gorm:"not null;index"`
	RestaurantID    uint64          `json:"restaurantId" gorm:"not null;index"`
	DeliveryAddress string          `json:"deliveryAddress" gorm:"size:255;not null"`
	PostalCode      string          `json:"postalCode" gorm:"size:16"`
	Notes           string          `json:"notes" gorm:"size:255"`
	PaymentMethod   string          `json:"paymentMethod" gorm:"size:32"`
	Subtotal        decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	DeliveryFee     decimal.Decimal `json:"deliveryFee" gorm:"type:decimal(10,2);not null"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

// OrderItem is one product line. UnitPrice is snapshotted from the catalog at
// creation time; later catalog price changes never touch persisted orders.
type OrderItem struct {
	ID           uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID      uint64          `json:"-" gorm:"not null;index"`
	ProductID    uint64          `json:"productId" gorm:"not null"`
	Quantity     int             `json:"quantity" gorm:"not null"`
	UnitPrice    decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2);not null"`
	LineSubtotal decimal.Decimal `json:"lineSubtotal" gorm:"type:decimal(10,2);not null"`
}

// CanTransition reports whether the lifecycle permits moving from current
// to target. Any pair not present in the table is illegal.
func CanTransition(current, target OrderStatus) bool {
	for _, next := range statusTransitions[current] {
		if next == target {
			return true
		}
	}
	return false
}

// Transition mutates the order status after checking the table.
func (o *Order) Transition(target OrderStatus) error {
	if !CanTransition(o.Status, target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, target)
	}
	o.Status = target
	return nil
}

// CanCancel reports whether the order may still be canceled. Cancellation is
// a transition to CANCELED, so this is a plain table lookup.
func (o *Order) CanCancel() bool {
	return CanTransition(o.Status, StatusCanceled)
}

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s OrderStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}
