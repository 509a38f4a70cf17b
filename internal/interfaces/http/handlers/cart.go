// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/darling-boutique/internal/domain/cart"
	"github.com/your-org/darling-boutique/internal/domain/catalog"
)

// CartHandler handles cart endpoints. Every mutating endpoint responds
// with the full updated cart so clients can render without a second read.
type CartHandler struct {
	cartService *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// GetCart handles GET /cart/:sessionId
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := c.Param("sessionId")

	current, err := h.cartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    current,
	})
}

// AddItem handles POST /cart/:sessionId/add
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var req cart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	// An omitted quantity means one unit; an explicit zero is invalid and
	// falls through to the service's rejection
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	updated, err := h.cartService.Add(c.Request.Context(), sessionID, req.ProductID, quantity)
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, catalog.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    updated,
	})
}

// UpdateItem handles PUT /cart/:sessionId/update/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID := c.Param("sessionId")
	productID := c.Param("productId")

	var req cart.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.cartService.Update(c.Request.Context(), sessionID, productID, req.Quantity)
	switch {
	case errors.Is(err, cart.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    updated,
	})
}

// RemoveItem handles DELETE /cart/:sessionId/remove/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := c.Param("sessionId")
	productID := c.Param("productId")

	updated, err := h.cartService.Remove(c.Request.Context(), sessionID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove item from cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    updated,
	})
}

// ClearCart handles DELETE /cart/:sessionId/clear
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := c.Param("sessionId")

	updated, err := h.cartService.Clear(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    updated,
	})
}
