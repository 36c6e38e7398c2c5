package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"delivery-order-service/internal/domain"
	"delivery-order-service/internal/repository"
	"delivery-order-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const listCacheTTL = 10 * time.Second

type Handler struct {
	service *services.OrderService
	rdb     *redis.Client
}

func NewHandler(s *services.OrderService, rdb *redis.Client) *Handler {
	return &Handler{service: s, rdb: rdb}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/orders", h.CreateOrder)
	r.POST("/quote", h.ComputeQuote)
	r.GET("/orders/:id", h.GetOrder)
	r.GET("/orders/:id/ownership", h.CheckOwnership)
	r.PATCH("/orders/:id/status", h.UpdateStatus)
	r.POST("/orders/:id/cancel", h.CancelOrder)
	r.GET("/accounts/:accountId/orders", h.ListByAccount)
	r.GET("/restaurants/:restaurantId/orders", h.ListByRestaurant)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := services.CreateOrderInput{
		AccountID:       req.AccountID,
		RestaurantID:    req.RestaurantID,
		DeliveryAddress: req.DeliveryAddress,
		PostalCode:      req.PostalCode,
		Notes:           req.Notes,
		PaymentMethod:   req.PaymentMethod,
		Items:           toItemRequests(req.Items),
	}

	order, err := h.service.CreateOrder(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	h.invalidateListCaches(order.AccountID, order.RestaurantID)

	c.JSON(http.StatusCreated, order)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) ListByAccount(c *gin.Context) {
	accountID, ok := pathID(c, "accountId")
	if !ok {
		return
	}
	status := domain.OrderStatus(c.Query("status"))
	page := pageFromQuery(c)

	ctx := c.Request.Context()
	cacheKey := "orders:account:" + c.Param("accountId") + ":" + string(status) + ":" +
		strconv.Itoa(page.Limit) + ":" + strconv.Itoa(page.Offset)

	if h.rdb != nil {
		if b, err := h.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var orders []domain.Order
			if json.Unmarshal([]byte(b), &orders) == nil {
				c.JSON(http.StatusOK, orders)
				return
			}
		}
	}

	orders, err := h.service.ListOrdersByAccount(ctx, accountID, status, page)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.rdb != nil {
		if data, err := json.Marshal(orders); err == nil {
			h.rdb.Set(ctx, cacheKey, data, listCacheTTL)
		}
	}

	c.JSON(http.StatusOK, orders)
}

func (h *Handler) ListByRestaurant(c *gin.Context) {
	restaurantID, ok := pathID(c, "restaurantId")
	if !ok {
		return
	}

	orders, err := h.service.ListOrdersByRestaurant(c.Request.Context(), restaurantID, pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	h.invalidateListCaches(order.AccountID, order.RestaurantID)

	c.JSON(http.StatusOK, order)
}

func (h *Handler) CancelOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.service.CancelOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	h.invalidateListCaches(order.AccountID, order.RestaurantID)

	c.JSON(http.StatusOK, order)
}

func (h *Handler) ComputeQuote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	total, err := h.service.ComputeQuote(c.Request.Context(), toItemRequests(req.Items))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, QuoteResponse{Total: total.StringFixed(2)})
}

func (h *Handler) CheckOwnership(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	accountID, err := strconv.ParseUint(c.Query("accountId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accountId query parameter is required"})
		return
	}

	owner, err := h.service.IsOwner(c.Request.Context(), id, accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OwnershipResponse{OrderID: id, AccountID: accountID, Owner: owner})
}

// invalidateListCaches drops cached list pages touched by a write. Keys are
// deleted by scan because pages and filters fan out the key space.
func (h *Handler) invalidateListCaches(accountID, restaurantID uint64) {
	if h.rdb == nil {
		return
	}
	ctx := context.Background()
	pattern := "orders:account:" + strconv.FormatUint(accountID, 10) + ":*"
	iter := h.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		h.rdb.Del(ctx, iter.Val())
	}
}

func toItemRequests(items []OrderItemRequest) []services.ItemRequest {
	out := make([]services.ItemRequest, 0, len(items))
	for _, item := range items {
		out = append(out, services.ItemRequest{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return out
}

func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}

func pageFromQuery(c *gin.Context) repository.Page {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return repository.Page{Limit: limit, Offset: offset}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInactive), errors.Is(err, domain.ErrBusinessRule):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
