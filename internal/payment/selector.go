package payment

import (
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/pos-demo/internal/domain"
)

// Selector tracks the single payment method chosen for the pending sale.
type Selector struct {
	accepted []domain.PaymentMethod

	mu       sync.Mutex
	selected domain.PaymentMethod
}

// NewSelector restricts selection to accepted; with no arguments every known method is accepted.
func NewSelector(accepted ...domain.PaymentMethod) *Selector {
	if len(accepted) == 0 {
		accepted = domain.PaymentMethods()
	}

	var unique []domain.PaymentMethod
	for _, m := range accepted {
		if !slices.Contains(unique, m) {
			unique = append(unique, m)
		}
	}

	return &Selector{accepted: unique}
}

// Select replaces any prior selection.
func (s *Selector) Select(method domain.PaymentMethod) error {
	if !s.Accepts(method) {
		return fmt.Errorf("method[%s]: %w", method, ErrMethodNotAccepted)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = method
	return nil
}

func (s *Selector) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = ""
}

func (s *Selector) Selected() (domain.PaymentMethod, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selected, s.selected != ""
}

func (s *Selector) Accepts(method domain.PaymentMethod) bool {
	return slices.Contains(s.accepted, method)
}

func (s *Selector) Accepted() []domain.PaymentMethod {
	return slices.Clone(s.accepted)
}
