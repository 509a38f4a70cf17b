// internal/domain/payment/service.go
package payment

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/your-org/darling-boutique/internal/config"
	"github.com/your-org/darling-boutique/internal/pkg/currency"
)

// Method identifies a mobile money channel. Exactly two are supported.
type Method string

const (
	MethodMoov   Method = "moov"
	MethodAirtel Method = "airtel"
)

// IsValid reports whether the method is one of the supported channels
func (m Method) IsValid() bool {
	return m == MethodMoov || m == MethodAirtel
}

// DisplayName returns the customer-facing channel name
func (m Method) DisplayName() string {
	switch m {
	case MethodMoov:
		return "Moov Money"
	case MethodAirtel:
		return "Airtel Money"
	default:
		return string(m)
	}
}

// Result is the outcome of a payment attempt. A declined payment is a
// Result with Success=false, not an error; errors are reserved for the
// simulator itself failing.
type Result struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	Message       string `json:"message,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

// declineReasons mirrors the failure modes of real mobile money operators
var declineReasons = []string{
	"Solde insuffisant",
	"Numéro non reconnu par l'opérateur",
	"Service temporairement indisponible",
	"Transaction annulée par l'utilisateur",
}

// Service simulates Moov Money and Airtel Money processing. A real
// integration would call the operators' APIs; the simulator keeps the same
// contract with a configurable delay and success rate.
type Service struct {
	config *config.Config

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates a payment simulator seeded from the clock
func NewService(cfg *config.Config) *Service {
	return NewServiceWithRand(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewServiceWithRand creates a payment simulator with an injected random
// source, for deterministic behavior
func NewServiceWithRand(cfg *config.Config, rng *rand.Rand) *Service {
	return &Service{
		config: cfg,
		rng:    rng,
	}
}

// ProcessMobilePayment simulates charging a phone number for an order. It
// blocks for the configured processing delay unless the context is
// cancelled first.
func (s *Service) ProcessMobilePayment(ctx context.Context, phoneNumber string, amount int64, method Method, orderNumber string) (*Result, error) {
	if delay := s.config.Payment.ProcessingDelay; delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if len(CleanPhoneNumber(phoneNumber)) < 8 {
		return &Result{Success: false, Reason: "Numéro de téléphone invalide"}, nil
	}

	if amount <= 0 {
		return &Result{Success: false, Reason: "Montant invalide"}, nil
	}

	s.mu.Lock()
	accepted := s.rng.Float64() < s.config.Payment.SuccessRate
	txn := fmt.Sprintf("TXN%06d", s.rng.Intn(900000)+100000)
	reason := declineReasons[s.rng.Intn(len(declineReasons))]
	s.mu.Unlock()

	if !accepted {
		return &Result{Success: false, Reason: reason}, nil
	}

	return &Result{
		Success:       true,
		TransactionID: txn,
		Message: fmt.Sprintf("Paiement de %s effectué avec succès via %s",
			currency.Format(amount), method.DisplayName()),
	}, nil
}

// CleanPhoneNumber strips spaces, dashes and the country prefix
func CleanPhoneNumber(phoneNumber string) string {
	clean := strings.NewReplacer(" ", "", "-", "", "+225", "").Replace(phoneNumber)
	return clean
}

// ValidatePhoneNumber checks the number format for a specific operator.
// Moov numbers start with 01, 02 or 05; Airtel numbers with 07 or 09.
// Unknown methods fall back to a length check.
func ValidatePhoneNumber(phoneNumber string, method Method) bool {
	clean := CleanPhoneNumber(phoneNumber)
	if len(clean) < 8 {
		return false
	}

	switch method {
	case MethodMoov:
		return hasAnyPrefix(clean, "01", "02", "05")
	case MethodAirtel:
		return hasAnyPrefix(clean, "07", "09")
	default:
		return true
	}
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
