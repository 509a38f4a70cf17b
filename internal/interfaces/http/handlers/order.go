// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/darling-boutique/internal/domain/order"
	"github.com/your-org/darling-boutique/internal/interfaces/http/middleware"
)

// OrderHandler handles checkout and order lookup endpoints
type OrderHandler struct {
	orderService *order.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req order.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	// The body's session id wins, the request's ambient session is the
	// fallback
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = middleware.GetSessionID(c)
	}

	created, err := h.orderService.Checkout(c.Request.Context(), sessionID, &req)
	if err != nil {
		h.renderCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"data":    created,
	})
}

// renderCheckoutError maps checkout failures to HTTP responses. Validation
// and payment failures are client errors; everything else is a server
// error with a generic message.
func (h *OrderHandler) renderCheckoutError(c *gin.Context, err error) {
	var validationErr *order.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		return
	}

	var paymentErr *order.PaymentError
	if errors.As(err, &paymentErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": paymentErr.Error()})
		return
	}

	if errors.Is(err, order.ErrCheckoutInProgress) {
		c.JSON(http.StatusConflict, gin.H{"error": "A checkout is already in progress"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Une erreur est survenue lors de la commande",
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("id")

	found, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if errors.Is(err, order.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    found,
	})
}

// ListOrders handles GET /orders?session_id
func (h *OrderHandler) ListOrders(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = middleware.GetSessionID(c)
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}
