// internal/domain/cart/service.go
package cart

import (
	"context"
	"sync"
	"time"

	"github.com/your-org/darling-boutique/internal/domain/catalog"
)

// Service handles cart business logic on top of a Store. Mutations for one
// session are applied strictly in the order they arrive: each one holds the
// session's lock across its read-modify-write, so a later mutation can
// never clobber an earlier one with a stale read.
type Service struct {
	store    Store
	catalog  catalog.Repository
	notifier *Notifier

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a new cart service
func NewService(store Store, catalogRepo catalog.Repository, notifier *Notifier) *Service {
	return &Service{
		store:    store,
		catalog:  catalogRepo,
		notifier: notifier,
		locks:    make(map[string]*sync.Mutex),
	}
}

// Notifier exposes the change notifier for subscribers
func (s *Service) Notifier() *Notifier {
	return s.notifier
}

func (s *Service) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

// Get retrieves the current cart. The total is recomputed on every read.
func (s *Service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.Recalculate()
	return c, nil
}

// Add puts quantity units of a product into the cart. If a line item for
// the product already exists its quantity accumulates; otherwise a new item
// is created with a snapshot of the product's name, price and image. The
// resulting cart is returned so callers can render without a second read.
func (s *Service) Add(ctx context.Context, sessionID, productID string, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	prod, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if i := c.findItem(productID); i >= 0 {
		c.Items[i].Quantity += quantity
	} else {
		c.Items = append(c.Items, Item{
			ProductID:    prod.ID,
			ProductName:  prod.Name,
			ProductPrice: prod.Price,
			ProductImage: prod.Image,
			Quantity:     quantity,
		})
	}

	return s.commit(ctx, c)
}

// Update sets an item's quantity to the exact value. A quantity of zero or
// less removes the item, identically to Remove.
func (s *Service) Update(ctx context.Context, sessionID, productID string, quantity int) (*Cart, error) {
	if quantity <= 0 {
		return s.Remove(ctx, sessionID, productID)
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	i := c.findItem(productID)
	if i < 0 {
		return nil, ErrItemNotFound
	}
	c.Items[i].Quantity = quantity

	return s.commit(ctx, c)
}

// Remove deletes the line item for a product. Removing an absent item is a
// no-op, not an error.
func (s *Service) Remove(ctx context.Context, sessionID, productID string) (*Cart, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if i := c.findItem(productID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}

	return s.commit(ctx, c)
}

// Clear empties the cart unconditionally
func (s *Service) Clear(ctx context.Context, sessionID string) (*Cart, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return nil, err
	}

	c := NewCart(sessionID)
	s.publish(c)
	return c, nil
}

// commit recalculates, persists and announces the cart
func (s *Service) commit(ctx context.Context, c *Cart) (*Cart, error) {
	c.Recalculate()
	c.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}

	s.publish(c)
	return c, nil
}

func (s *Service) publish(c *Cart) {
	if s.notifier == nil {
		return
	}
	s.notifier.Publish(Event{
		SessionID:     c.SessionID,
		ItemCount:     len(c.Items),
		TotalQuantity: c.TotalQuantity(),
		Total:         c.Total,
	})
}
