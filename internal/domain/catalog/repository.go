// internal/domain/catalog/repository.go
package catalog

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product id matches nothing
var ErrProductNotFound = errors.New("product not found")

// Repository provides read access to the product catalog
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
}

// GormRepository reads products from the database
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a database-backed catalog repository
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// List returns every product in the catalog
func (r *GormRepository) List(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Get returns a single product by id
func (r *GormRepository) Get(ctx context.Context, id string) (*Product, error) {
	var prod Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&prod).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &prod, nil
}

// MemoryRepository holds the catalog in memory. It backs the local-only
// variant and tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	products []Product
}

// NewMemoryRepository creates an in-memory catalog repository
func NewMemoryRepository(products []Product) *MemoryRepository {
	cp := make([]Product, len(products))
	copy(cp, products)
	return &MemoryRepository{products: cp}
}

// List returns a copy of every product
func (r *MemoryRepository) List(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cp := make([]Product, len(r.products))
	copy(cp, r.products)
	return cp, nil
}

// Get returns a single product by id
func (r *MemoryRepository) Get(ctx context.Context, id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			prod := r.products[i]
			return &prod, nil
		}
	}
	return nil, ErrProductNotFound
}
