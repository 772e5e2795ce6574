package domain

import (
	"github.com/shopspring/decimal"
)

// CatalogItem is owned by the catalog provider and never mutated by the sale engine.
type CatalogItem struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Barcode   string
}

type CartLine struct {
	ItemID    string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

func NewCartLine(item CatalogItem) CartLine {
	return CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Quantity:  1,
	}
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Totals struct {
	Subtotal Money
	Tax      Money
	Total    Money
}
