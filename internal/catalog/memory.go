package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/nikolayk812/pos-demo/internal/domain"
	"github.com/nikolayk812/pos-demo/internal/port"
	"github.com/shopspring/decimal"
)

// SampleItems is the demo register's shelf.
func SampleItems() []domain.CatalogItem {
	return []domain.CatalogItem{
		{ID: "1", Name: "Coca Cola 500ml", UnitPrice: decimal.RequireFromString("2.50"), Barcode: "123456789012"},
		{ID: "2", Name: "Pan Integral", UnitPrice: decimal.RequireFromString("1.80"), Barcode: "123456789013"},
		{ID: "3", Name: "Leche Entera 1L", UnitPrice: decimal.RequireFromString("1.20"), Barcode: "123456789014"},
		{ID: "4", Name: "Yogurt Natural", UnitPrice: decimal.RequireFromString("0.95"), Barcode: "123456789015"},
	}
}

// Memory is a read-only catalog held in memory.
type Memory struct {
	items []domain.CatalogItem
}

func NewMemory(items []domain.CatalogItem) *Memory {
	return &Memory{items: slices.Clone(items)}
}

func NewSample() *Memory {
	return NewMemory(SampleItems())
}

// Search matches a case-insensitive substring of the name or a substring of the
// barcode. An empty term returns the whole catalog.
func (m *Memory) Search(_ context.Context, term string) ([]domain.CatalogItem, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return slices.Clone(m.items), nil
	}

	lowered := strings.ToLower(term)

	var result []domain.CatalogItem
	for _, item := range m.items {
		if strings.Contains(strings.ToLower(item.Name), lowered) || strings.Contains(item.Barcode, term) {
			result = append(result, item)
		}
	}

	return result, nil
}

func (m *Memory) Get(_ context.Context, id string) (domain.CatalogItem, error) {
	for _, item := range m.items {
		if item.ID == id {
			return item, nil
		}
	}

	return domain.CatalogItem{}, fmt.Errorf("id[%s]: %w", id, port.ErrItemNotFound)
}

func (m *Memory) LookupBarcode(_ context.Context, barcode string) (domain.CatalogItem, error) {
	for _, item := range m.items {
		if item.Barcode == barcode {
			return item, nil
		}
	}

	return domain.CatalogItem{}, fmt.Errorf("barcode[%s]: %w", barcode, port.ErrItemNotFound)
}
