// internal/domain/cart/store.go
package cart

import (
	"context"
	"errors"
)

// Domain errors surfaced by the cart service
var (
	// ErrInvalidQuantity is returned when an add request carries a
	// non-positive quantity
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrItemNotFound is returned when updating an item that is not in
	// the cart
	ErrItemNotFound = errors.New("item not found in cart")
)

// Store persists one cart per session identifier. The local-file and Redis
// implementations are selected by configuration; callers only see this
// interface. A missing cart is not an error, Get returns a fresh empty one.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Delete(ctx context.Context, sessionID string) error
}
