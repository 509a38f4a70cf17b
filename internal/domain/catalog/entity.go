// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product categories form a closed set
const (
	CategoryBijoux = "bijoux"
	CategoryTech   = "tech"
)

// Product represents a catalog product. Prices are integer FCFA amounts;
// the currency has no subunit. Products are immutable from the storefront
// side, the catalog only reads them.
type Product struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Price       int64          `gorm:"not null" json:"price"` // FCFA
	Category    string         `gorm:"not null;size:50;index" json:"category"`
	Subcategory string         `gorm:"not null;size:50;index" json:"subcategory"`
	Image       string         `gorm:"size:500" json:"image"`
	Description string         `gorm:"type:text" json:"description"`
	InStock     bool           `gorm:"default:true" json:"inStock"`
	Rating      float64        `gorm:"default:4.0" json:"rating"` // 0-5
	Reviews     int            `gorm:"default:0" json:"reviews"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// BeforeCreate assigns a UUID identifier when none was provided
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// Category represents a product category with its subcategories
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory represents a subcategory within a category
type Subcategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Categories returns the boutique's category tree
func Categories() []Category {
	return []Category{
		{
			ID:   CategoryBijoux,
			Name: "Bijoux",
			Subcategories: []Subcategory{
				{ID: "colliers", Name: "Colliers"},
				{ID: "bracelets", Name: "Bracelets"},
				{ID: "bagues", Name: "Bagues"},
			},
		},
		{
			ID:   CategoryTech,
			Name: "Tech",
			Subcategories: []Subcategory{
				{ID: "ecouteurs", Name: "Écouteurs Sans Fil"},
				{ID: "casques", Name: "Casques Bluetooth"},
				{ID: "ventilateurs", Name: "Ventilateurs Miniatures"},
			},
		},
	}
}
