// internal/domain/order/repository.go
package order

import (
	"context"
	"errors"
	"sort"
	"sync"

	"gorm.io/gorm"
)

// ErrOrderNotFound is returned when an order id matches nothing
var ErrOrderNotFound = errors.New("order not found")

// Repository persists orders
type Repository interface {
	Create(ctx context.Context, o *Order) error
	UpdateStatus(ctx context.Context, orderID string, status Status, transactionID string) error
	GetByID(ctx context.Context, id string) (*Order, error)
	ListBySession(ctx context.Context, sessionID string) ([]Order, error)
}

// GormRepository stores orders in the database
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a database-backed order repository
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Create inserts the order with its items
func (r *GormRepository) Create(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

// UpdateStatus records the payment outcome on an order
func (r *GormRepository) UpdateStatus(ctx context.Context, orderID string, status Status, transactionID string) error {
	updates := map[string]interface{}{"status": status}
	if transactionID != "" {
		updates["transaction_id"] = transactionID
	}
	return r.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", orderID).
		Updates(updates).Error
}

// GetByID returns a single order with its items
func (r *GormRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	var o Order
	err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListBySession returns a session's orders, newest first
func (r *GormRepository) ListBySession(ctx context.Context, sessionID string) ([]Order, error) {
	var orders []Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// MemoryRepository keeps orders in memory for the local-only variant and
// tests
type MemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]*Order
}

// NewMemoryRepository creates an in-memory order repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{orders: make(map[string]*Order)}
}

// Create stores a copy of the order
func (r *MemoryRepository) Create(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *o
	cp.Items = append([]Item(nil), o.Items...)
	r.orders[o.ID] = &cp
	return nil
}

// UpdateStatus records the payment outcome on an order
func (r *MemoryRepository) UpdateStatus(ctx context.Context, orderID string, status Status, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = status
	if transactionID != "" {
		o.TransactionID = transactionID
	}
	return nil
}

// GetByID returns a copy of a single order
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	cp := *o
	cp.Items = append([]Item(nil), o.Items...)
	return &cp, nil
}

// ListBySession returns a session's orders, newest first
func (r *MemoryRepository) ListBySession(ctx context.Context, sessionID string) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []Order
	for _, o := range r.orders {
		if o.SessionID == sessionID {
			cp := *o
			cp.Items = append([]Item(nil), o.Items...)
			orders = append(orders, cp)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}
