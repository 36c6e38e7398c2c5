package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPriceLines(t *testing.T) {
	tests := []struct {
		name         string
		items        []ResolvedItem
		wantSubtotal string
		wantLines    []string
	}{
		{
			name: "single line",
			items: []ResolvedItem{
				{Product: *CreateMockProduct(11, 7, "45.90", true), Quantity: 2},
			},
			wantSubtotal: "91.80",
			wantLines:    []string{"91.80"},
		},
		{
			name: "multiple lines sum exactly",
			items: []ResolvedItem{
				{Product: *CreateMockProduct(11, 7, "45.90", true), Quantity: 2},
				{Product: *CreateMockProduct(12, 7, "39.90", true), Quantity: 1},
			},
			wantSubtotal: "131.70",
			wantLines:    []string{"91.80", "39.90"},
		},
		{
			name: "two decimal scale survives awkward prices",
			items: []ResolvedItem{
				{Product: *CreateMockProduct(13, 7, "0.10", true), Quantity: 3},
				{Product: *CreateMockProduct(14, 7, "0.01", true), Quantity: 7},
			},
			wantSubtotal: "0.37",
			wantLines:    []string{"0.30", "0.07"},
		},
		{
			name:         "no items no subtotal",
			items:        nil,
			wantSubtotal: "0.00",
			wantLines:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, subtotal := PriceLines(tt.items)

			assert.Equal(t, tt.wantSubtotal, subtotal.StringFixed(2))
			assert.Len(t, lines, len(tt.wantLines))
			for i, want := range tt.wantLines {
				assert.Equal(t, want, lines[i].LineSubtotal.StringFixed(2))
				assert.Equal(t, tt.items[i].Product.ID, lines[i].ProductID)
				assert.Equal(t, tt.items[i].Quantity, lines[i].Quantity)
				assert.True(t, lines[i].UnitPrice.Equal(tt.items[i].Product.Price))
			}
		})
	}
}

func TestPriceLines_SubtotalMatchesRecomputation(t *testing.T) {
	items := []ResolvedItem{
		{Product: *CreateMockProduct(11, 7, "45.90", true), Quantity: 2},
		{Product: *CreateMockProduct(12, 7, "12.35", true), Quantity: 3},
		{Product: *CreateMockProduct(13, 7, "8.00", true), Quantity: 1},
	}

	lines, subtotal := PriceLines(items)

	recomputed := decimal.Zero
	for _, line := range lines {
		recomputed = recomputed.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	assert.True(t, subtotal.Equal(recomputed))
}
