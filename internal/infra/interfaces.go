package infra

import "context"

// CatalogClientInterface is the read-only catalog gateway consumed during
// validation and quoting. Lookups return (nil, nil) when the entity does not
// exist; callers decide how a missing entity is surfaced.
type CatalogClientInterface interface {
	GetAccount(ctx context.Context, id uint64) (*AccountInfo, error)
	GetRestaurant(ctx context.Context, id uint64) (*RestaurantInfo, error)
	GetProduct(ctx context.Context, id uint64) (*ProductInfo, error)
}

var _ CatalogClientInterface = (*CatalogClient)(nil)
