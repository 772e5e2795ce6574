package cart

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/pos-demo/internal/domain"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrLineNotFound    = errors.New("item is not in the cart")
)

// Store holds the lines of the sale being assembled. Lines are kept in insertion
// order and there is at most one line per item id.
type Store struct {
	mu    sync.Mutex
	lines []domain.CartLine
}

func New() *Store {
	return &Store{}
}

// AddItem appends a new line with quantity 1, or bumps the existing line for item.ID.
func (s *Store) AddItem(item domain.CatalogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(item.ID); i >= 0 {
		s.lines[i].Quantity++
		return
	}

	s.lines = append(s.lines, domain.NewCartLine(item))
}

// RemoveItem drops the whole line regardless of its quantity.
// It reports whether a line was removed.
func (s *Store) RemoveItem(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(itemID)
	if i < 0 {
		return false
	}

	s.lines = slices.Delete(s.lines, i, i+1)
	return true
}

func (s *Store) SetQuantity(itemID string, qty int) error {
	if qty < 1 {
		return fmt.Errorf("qty[%d]: %w", qty, ErrInvalidQuantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(itemID)
	if i < 0 {
		return fmt.Errorf("itemID[%s]: %w", itemID, ErrLineNotFound)
	}

	s.lines[i].Quantity = qty
	return nil
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
}

// Lines returns a copy of the cart in display order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.lines)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.lines)
}

func (s *Store) IsEmpty() bool {
	return s.Len() == 0
}

// ItemCount is the number of units across all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

func (s *Store) indexOf(itemID string) int {
	return slices.IndexFunc(s.lines, func(l domain.CartLine) bool {
		return l.ItemID == itemID
	})
}
