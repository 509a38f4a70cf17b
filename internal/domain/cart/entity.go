// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/google/uuid"
)

// Item is a cart line item. Product name, price and image are denormalized
// snapshots taken at add-time so the cart and later the order stay stable
// even if the catalog changes. At most one item exists per product id.
type Item struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductPrice int64  `json:"product_price"` // unit price in FCFA
	ProductImage string `json:"product_image"`
	Quantity     int    `json:"quantity"`
	Subtotal     int64  `json:"subtotal"` // Quantity * ProductPrice
}

// Cart holds one session's line items. Quantities are always positive;
// an item whose quantity would drop to zero is removed instead.
type Cart struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Items     []Item    `json:"items"`
	Total     int64     `json:"total"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCart creates an empty cart for a session
func NewCart(sessionID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Items:     []Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Recalculate recomputes every line subtotal and the cart total
func (c *Cart) Recalculate() {
	c.Total = 0
	for i := range c.Items {
		c.Items[i].Subtotal = c.Items[i].ProductPrice * int64(c.Items[i].Quantity)
		c.Total += c.Items[i].Subtotal
	}
}

// findItem returns the index of the line item for a product, or -1
func (c *Cart) findItem(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// TotalQuantity returns the sum of all line quantities
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// IsEmpty reports whether the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// AddItemRequest represents an add-to-cart request. Quantity is a pointer
// so an omitted quantity (one unit) is distinguishable from an explicit
// zero, which is invalid.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity"`
}

// UpdateItemRequest represents a quantity update. A quantity of zero or
// less removes the item.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}
