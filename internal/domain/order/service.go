// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/your-org/darling-boutique/internal/domain/cart"
	"github.com/your-org/darling-boutique/internal/domain/payment"
)

// ValidationError marks a checkout precondition failure. All preconditions
// share this class so handlers treat them alike; the messages differ.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Checkout precondition failures
var (
	ErrInvalidPaymentMethod = &ValidationError{Message: "Veuillez sélectionner un mode de paiement valide"}
	ErrInvalidPhoneNumber   = &ValidationError{Message: "Veuillez saisir un numéro de téléphone valide"}
	ErrEmptyCart            = &ValidationError{Message: "Votre panier est vide"}
)

// ErrCheckoutInProgress is returned when a session submits a second
// checkout while one is already in flight
var ErrCheckoutInProgress = errors.New("a checkout is already in progress for this session")

// PaymentError carries the operator's decline reason
type PaymentError struct {
	Reason string
}

func (e *PaymentError) Error() string {
	if e.Reason == "" {
		return "Une erreur est survenue lors de la commande"
	}
	return fmt.Sprintf("Échec du paiement: %s", e.Reason)
}

// CreateOrderRequest represents a checkout submission
type CreateOrderRequest struct {
	PaymentMethod payment.Method `json:"payment_method"`
	PhoneNumber   string         `json:"phone_number"`
	SessionID     string         `json:"session_id"`
}

// Service handles order creation and lookup
type Service struct {
	repo     Repository
	carts    *cart.Service
	payments *payment.Service

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewService creates a new order service
func NewService(repo Repository, carts *cart.Service, payments *payment.Service) *Service {
	return &Service{
		repo:     repo,
		carts:    carts,
		payments: payments,
		inFlight: make(map[string]struct{}),
	}
}

// beginCheckout reserves the session's checkout slot; false means a
// submission is already in flight
func (s *Service) beginCheckout(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[sessionID]; busy {
		return false
	}
	s.inFlight[sessionID] = struct{}{}
	return true
}

func (s *Service) endCheckout(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}

// Checkout validates the submission, snapshots the live cart into an order,
// charges the phone number and clears the cart on success. On any failure
// the cart is left untouched so the shopper can retry.
func (s *Service) Checkout(ctx context.Context, sessionID string, req *CreateOrderRequest) (*Order, error) {
	// Preconditions, checked before any mutation
	if !req.PaymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if len(payment.CleanPhoneNumber(req.PhoneNumber)) < 8 {
		return nil, ErrInvalidPhoneNumber
	}

	if !s.beginCheckout(sessionID) {
		return nil, ErrCheckoutInProgress
	}
	defer s.endCheckout(sessionID)

	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	o := s.buildOrder(sessionID, c, req)
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	result, err := s.payments.ProcessMobilePayment(ctx, req.PhoneNumber, o.Total, req.PaymentMethod, o.OrderNumber)
	if err != nil {
		_ = s.repo.UpdateStatus(ctx, o.ID, StatusCancelled, "")
		return nil, fmt.Errorf("payment processing failed: %w", err)
	}

	if !result.Success {
		if updErr := s.repo.UpdateStatus(ctx, o.ID, StatusCancelled, ""); updErr != nil {
			return nil, updErr
		}
		return nil, &PaymentError{Reason: result.Reason}
	}

	if err := s.repo.UpdateStatus(ctx, o.ID, StatusConfirmed, result.TransactionID); err != nil {
		return nil, err
	}
	o.Status = StatusConfirmed
	o.TransactionID = result.TransactionID

	// Payment went through; the cart is now spent
	if _, err := s.carts.Clear(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("order %s confirmed but cart clear failed: %w", o.OrderNumber, err)
	}

	return o, nil
}

// buildOrder copies the live cart into an immutable order snapshot
func (s *Service) buildOrder(sessionID string, c *cart.Cart, req *CreateOrderRequest) *Order {
	now := time.Now().UTC()
	o := &Order{
		ID:            uuid.New().String(),
		OrderNumber:   GenerateOrderNumber(),
		SessionID:     sessionID,
		PaymentMethod: req.PaymentMethod,
		PhoneNumber:   req.PhoneNumber,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for _, item := range c.Items {
		subtotal := item.ProductPrice * int64(item.Quantity)
		o.Items = append(o.Items, Item{
			OrderID:      o.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			ProductImage: item.ProductImage,
			Quantity:     item.Quantity,
			Subtotal:     subtotal,
		})
		o.Total += subtotal
	}

	return o
}

// GetOrder retrieves a single order
func (s *Service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

// ListOrders retrieves a session's orders, newest first
func (s *Service) ListOrders(ctx context.Context, sessionID string) ([]Order, error) {
	return s.repo.ListBySession(ctx, sessionID)
}
