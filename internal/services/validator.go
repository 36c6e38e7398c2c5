package services

import (
	"context"
	"fmt"

	"delivery-order-service/internal/domain"
	"delivery-order-service/internal/infra"
)

// ItemRequest is one requested cart line.
type ItemRequest struct {
	ProductID uint64
	Quantity  int
}

// ResolvedItem pairs a requested quantity with the product snapshot taken
// from the catalog during validation.
type ResolvedItem struct {
	Product  infra.ProductInfo
	Quantity int
}

// ValidatedOrder is the snapshot bundle validation produces. Pricing and
// persistence read only from this bundle, never from the catalog again, so a
// catalog change between validation and write cannot split the order's view.
type ValidatedOrder struct {
	Account    infra.AccountInfo
	Restaurant infra.RestaurantInfo
	Items      []ResolvedItem
}

// OrderValidator enforces the preconditions for order creation. It is
// read-only: every check either passes or fails with a typed error.
type OrderValidator struct {
	catalog infra.CatalogClientInterface
}

func NewOrderValidator(catalog infra.CatalogClientInterface) *OrderValidator {
	return &OrderValidator{catalog: catalog}
}

func (v *OrderValidator) Validate(ctx context.Context, accountID, restaurantID uint64, items []ItemRequest) (*ValidatedOrder, error) {
	if err := validateItemRequests(items); err != nil {
		return nil, err
	}

	account, err := v.catalog.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.NotFoundError("account", accountID)
	}
	if !account.Active {
		return nil, domain.InactiveError("account", accountID)
	}

	restaurant, err := v.catalog.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.NotFoundError("restaurant", restaurantID)
	}
	if !restaurant.Active {
		return nil, domain.InactiveError("restaurant", restaurantID)
	}

	resolved := make([]ResolvedItem, 0, len(items))
	for _, item := range items {
		product, err := v.catalog.GetProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.NotFoundError("product", item.ProductID)
		}
		if !product.Available {
			return nil, fmt.Errorf("%w: product %d is unavailable", domain.ErrBusinessRule, item.ProductID)
		}
		if product.RestaurantID != restaurantID {
			return nil, fmt.Errorf("%w: product %d does not belong to restaurant %d", domain.ErrBusinessRule, item.ProductID, restaurantID)
		}
		resolved = append(resolved, ResolvedItem{Product: *product, Quantity: item.Quantity})
	}

	return &ValidatedOrder{
		Account:    *account,
		Restaurant: *restaurant,
		Items:      resolved,
	}, nil
}

func validateItemRequests(items []ItemRequest) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: items must not be empty", domain.ErrValidation)
	}
	for i, item := range items {
		if item.Quantity < 1 {
			return fmt.Errorf("%w: items[%d].quantity must be positive", domain.ErrValidation, i)
		}
	}
	return nil
}
