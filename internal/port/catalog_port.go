package port

import (
	"context"
	"errors"

	"github.com/nikolayk812/pos-demo/internal/domain"
)

var ErrItemNotFound = errors.New("catalog item not found")

type CatalogProvider interface {
	Search(ctx context.Context, term string) ([]domain.CatalogItem, error)
	Get(ctx context.Context, id string) (domain.CatalogItem, error)
	LookupBarcode(ctx context.Context, barcode string) (domain.CatalogItem, error)
}

type CatalogRepository interface {
	CatalogProvider
	Seed(ctx context.Context, items []domain.CatalogItem) (int, error)
}
