package db

import (
	"time"

	"github.com/shopspring/decimal"
)

type CatalogItem struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Barcode   string
	Position  int32
	CreatedAt time.Time
}
