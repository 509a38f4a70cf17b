// internal/domain/order/entity.go
package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/your-org/darling-boutique/internal/domain/payment"
)

// Status represents the order status
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Order is an immutable snapshot of a cart at checkout time, together with
// the payment channel it was paid through. Orders are never mutated after
// creation apart from the pending -> confirmed/cancelled transition.
type Order struct {
	ID            string         `gorm:"primaryKey;size:36" json:"id"`
	OrderNumber   string         `gorm:"uniqueIndex;not null;size:20" json:"order_number"`
	SessionID     string         `gorm:"not null;size:64;index" json:"session_id"`
	Total         int64          `gorm:"not null" json:"total"` // FCFA
	PaymentMethod payment.Method `gorm:"not null;size:20" json:"payment_method"`
	PhoneNumber   string         `gorm:"not null;size:20" json:"phone_number"`
	TransactionID string         `gorm:"size:20" json:"transaction_id,omitempty"`
	Status        Status         `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Items []Item `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// Item is an order line item, copied from the cart at checkout
type Item struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	OrderID      string `gorm:"not null;size:36;index" json:"-"`
	ProductID    string `gorm:"not null;size:36" json:"product_id"`
	ProductName  string `gorm:"not null;size:255" json:"product_name"`
	ProductPrice int64  `gorm:"not null" json:"product_price"`
	ProductImage string `gorm:"size:500" json:"product_image"`
	Quantity     int    `gorm:"not null" json:"quantity"`
	Subtotal     int64  `gorm:"not null" json:"subtotal"`
}

// TableName overrides
func (Order) TableName() string { return "orders" }
func (Item) TableName() string  { return "order_items" }

// GenerateOrderNumber produces a DRB-prefixed uppercase order number
func GenerateOrderNumber() string {
	return "DRB" + strings.ToUpper(uuid.New().String()[:8])
}
