package http

type OrderItemRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	AccountID       uint64             `json:"accountId" binding:"required"`
	RestaurantID    uint64             `json:"restaurantId" binding:"required"`
	DeliveryAddress string             `json:"deliveryAddress" binding:"required"`
	PostalCode      string             `json:"postalCode"`
	Notes           string             `json:"notes"`
	PaymentMethod   string             `json:"paymentMethod"`
	Items           []OrderItemRequest `json:"items" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type QuoteRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required"`
}

type QuoteResponse struct {
	Total string `json:"total"`
}

type OwnershipResponse struct {
	OrderID   uint64 `json:"orderId"`
	AccountID uint64 `json:"accountId"`
	Owner     bool   `json:"owner"`
}
