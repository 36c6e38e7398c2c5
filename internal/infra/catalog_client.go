package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

type AccountInfo struct {
	ID     uint64 `json:"id"`
	Active bool   `json:"active"`
}

type RestaurantInfo struct {
	ID          uint64          `json:"id"`
	Active      bool            `json:"active"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
}

type ProductInfo struct {
	ID           uint64          `json:"id"`
	RestaurantID uint64          `json:"restaurantId"`
	Price        decimal.Decimal `json:"price"`
	Available    bool            `json:"available"`
}

type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *CatalogClient) GetAccount(ctx context.Context, id uint64) (*AccountInfo, error) {
	var a AccountInfo
	ok, err := c.get(ctx, fmt.Sprintf("%s/accounts/%d", c.baseURL, id), &a)
	if err != nil || !ok {
		return nil, err
	}
	return &a, nil
}

func (c *CatalogClient) GetRestaurant(ctx context.Context, id uint64) (*RestaurantInfo, error) {
	var r RestaurantInfo
	ok, err := c.get(ctx, fmt.Sprintf("%s/restaurants/%d", c.baseURL, id), &r)
	if err != nil || !ok {
		return nil, err
	}
	return &r, nil
}

func (c *CatalogClient) GetProduct(ctx context.Context, id uint64) (*ProductInfo, error) {
	var p ProductInfo
	ok, err := c.get(ctx, fmt.Sprintf("%s/products/%d", c.baseURL, id), &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// get decodes the response body into out. It returns ok=false on 404.
func (c *CatalogClient) get(ctx context.Context, url string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("catalog service returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}
