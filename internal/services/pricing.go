package services

import (
	"github.com/shopspring/decimal"

	"delivery-order-service/internal/domain"
)

// PriceLines turns resolved items into order lines and the order subtotal.
// Pure function over the validation snapshot; all arithmetic stays in
// decimal, quantities are exact integer multipliers, so the two-decimal
// currency scale carries through without rounding.
func PriceLines(items []ResolvedItem) ([]domain.OrderItem, decimal.Decimal) {
	lines := make([]domain.OrderItem, 0, len(items))
	subtotal := decimal.Zero
	for _, item := range items {
		lineSubtotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		lines = append(lines, domain.OrderItem{
			ProductID:    item.Product.ID,
			Quantity:     item.Quantity,
			UnitPrice:    item.Product.Price,
			LineSubtotal: lineSubtotal,
		})
		subtotal = subtotal.Add(lineSubtotal)
	}
	return lines, subtotal
}
