package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"delivery-order-service/internal/domain"
	"delivery-order-service/internal/infra"
	rabbit "delivery-order-service/internal/infra/rabbitmq"
	"delivery-order-service/internal/repository"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const productCacheTTL = time.Minute

// CreateOrderInput carries everything needed to place an order.
type CreateOrderInput struct {
	AccountID       uint64
	RestaurantID    uint64
	DeliveryAddress string
	PostalCode      string
	Notes           string
	PaymentMethod   string
	Items           []ItemRequest
}

// OrderService orchestrates the order lifecycle: it is the only component
// that writes persisted order state.
type OrderService struct {
	repo        repository.OrderRepository
	catalog     infra.CatalogClientInterface
	validator   *OrderValidator
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
}

func NewOrderService(r repository.OrderRepository, c infra.CatalogClientInterface, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		repo:      r,
		catalog:   c,
		validator: NewOrderValidator(c),
		publisher: pub,
	}
}

func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// CreateOrder validates the cart, prices it from the validation snapshot and
// persists the order with status PENDING. Any failure aborts with no write.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	if in.DeliveryAddress == "" {
		return nil, fmt.Errorf("%w: delivery address is required", domain.ErrValidation)
	}

	snapshot, err := s.validator.Validate(ctx, in.AccountID, in.RestaurantID, in.Items)
	if err != nil {
		return nil, err
	}

	lines, subtotal := PriceLines(snapshot.Items)
	total := subtotal.Add(snapshot.Restaurant.DeliveryFee)

	order := &domain.Order{
		Number:          GenerateOrderNumber(time.Now()),
		AccountID:       in.AccountID,
		RestaurantID:    in.RestaurantID,
		DeliveryAddress: in.DeliveryAddress,
		PostalCode:      in.PostalCode,
		Notes:           in.Notes,
		PaymentMethod:   in.PaymentMethod,
		Subtotal:        subtotal,
		DeliveryFee:     snapshot.Restaurant.DeliveryFee,
		Total:           total,
		Status:          domain.StatusPending,
		Items:           lines,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	go s.publishCreatedEvent(context.Background(), order)

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.NotFoundError("order", id)
	}
	return o, nil
}

func (s *OrderService) ListOrdersByAccount(ctx context.Context, accountID uint64, status domain.OrderStatus, page repository.Page) ([]domain.Order, error) {
	if status != "" && !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	return s.repo.FindByAccount(ctx, accountID, status, page)
}

func (s *OrderService) ListOrdersByRestaurant(ctx context.Context, restaurantID uint64, page repository.Page) ([]domain.Order, error) {
	return s.repo.FindByRestaurant(ctx, restaurantID, page)
}

// UpdateStatus moves the order along the lifecycle. The transition check runs
// against the freshly read row inside the storage transaction.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint64, target domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidStatus(target) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, target)
	}

	var previous domain.OrderStatus
	updated, err := s.repo.UpdateStatus(ctx, id, func(o *domain.Order) error {
		previous = o.Status
		return o.Transition(target)
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NotFoundError("order", id)
	}

	go s.publishStatusChangedEvent(context.Background(), updated, previous)

	return updated, nil
}

// CancelOrder cancels an order still in a cancelable status. It consults the
// same transition table as UpdateStatus; orders past CONFIRMED are refused.
func (s *OrderService) CancelOrder(ctx context.Context, id uint64) (*domain.Order, error) {
	var previous domain.OrderStatus
	updated, err := s.repo.UpdateStatus(ctx, id, func(o *domain.Order) error {
		previous = o.Status
		if !o.CanCancel() {
			return fmt.Errorf("%w: order in status %s is not cancelable", domain.ErrInvalidTransition, o.Status)
		}
		return o.Transition(domain.StatusCanceled)
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NotFoundError("order", id)
	}

	go s.publishStatusChangedEvent(context.Background(), updated, previous)

	return updated, nil
}

// ComputeQuote previews the items subtotal before an order is placed. Each
// product resolves independently; restaurant ownership is not checked.
func (s *OrderService) ComputeQuote(ctx context.Context, items []ItemRequest) (decimal.Decimal, error) {
	if err := validateItemRequests(items); err != nil {
		return decimal.Zero, err
	}

	prices := make([]decimal.Decimal, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			product, err := s.getProductWithCache(gctx, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.NotFoundError("product", item.ProductID)
			}
			prices[i] = product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(p)
	}
	return total, nil
}

// IsOwner tells the authorization layer whether the account placed the order.
// A legitimate "not owner" answer is a false, never an error.
func (s *OrderService) IsOwner(ctx context.Context, orderID, accountID uint64) (bool, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return false, err
	}
	if o == nil {
		return false, domain.NotFoundError("order", orderID)
	}
	return o.AccountID == accountID, nil
}

// getProductWithCache serves the quote path. Validation during CreateOrder
// always reads the catalog directly so the creation snapshot stays fresh.
func (s *OrderService) getProductWithCache(ctx context.Context, productID uint64) (*infra.ProductInfo, error) {
	cacheKey := fmt.Sprintf("product:%d", productID)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var prod infra.ProductInfo
			if err := json.Unmarshal([]byte(cached), &prod); err == nil {
				return &prod, nil
			}
		}
	}

	prod, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil && prod != nil {
		if data, err := json.Marshal(prod); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
		}
	}

	return prod, nil
}

func (s *OrderService) WarmupProductCache(ctx context.Context, productIDs []uint64) error {
	if s.redisClient == nil {
		return nil
	}

	for _, id := range productIDs {
		prod, err := s.catalog.GetProduct(ctx, id)
		if err != nil {
			log.Printf("Failed to warm up cache for product %d: %v", id, err)
			continue
		}
		if prod != nil {
			cacheKey := fmt.Sprintf("product:%d", id)
			if data, err := json.Marshal(prod); err == nil {
				s.redisClient.Set(ctx, cacheKey, data, 5*time.Minute)
			}
		}
	}

	return nil
}

func (s *OrderService) publishCreatedEvent(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:      order.ID,
		OrderNumber:  order.Number,
		AccountID:    order.AccountID,
		RestaurantID: order.RestaurantID,
		Total:        order.Total.StringFixed(2),
		CreatedAt:    order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, domain.EventOrderCreated, evt); err != nil {
		log.Printf("Failed to publish %s for order %d: %v", domain.EventOrderCreated, order.ID, err)
	}
}

func (s *OrderService) publishStatusChangedEvent(ctx context.Context, order *domain.Order, previous domain.OrderStatus) {
	evt := domain.OrderStatusChangedEvent{
		OrderID:        order.ID,
		OrderNumber:    order.Number,
		PreviousStatus: previous,
		CurrentStatus:  order.Status,
		OccurredAt:     time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, domain.EventOrderStatusChanged, evt); err != nil {
		log.Printf("Failed to publish %s for order %d: %v", domain.EventOrderStatusChanged, order.ID, err)
	}
}
