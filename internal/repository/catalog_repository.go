package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/pos-demo/internal/db"
	"github.com/nikolayk812/pos-demo/internal/domain"
	"github.com/nikolayk812/pos-demo/internal/port"
)

type catalogRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCatalog(pool *pgxpool.Pool) (port.CatalogRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &catalogRepository{
		q:    db.New(pool),
		pool: pool,
	}, nil
}

func NewCatalogWithTx(tx pgx.Tx) port.CatalogRepository {
	return &catalogRepository{
		q:    db.New(tx),
		pool: nil, // caller owns the transaction
	}
}

func (r *catalogRepository) Search(ctx context.Context, term string) ([]domain.CatalogItem, error) {
	rows, err := r.q.SearchCatalogItems(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, fmt.Errorf("q.SearchCatalogItems: %w", err)
	}

	return mapCatalogRowsToDomain(rows), nil
}

func (r *catalogRepository) Get(ctx context.Context, id string) (domain.CatalogItem, error) {
	if id == "" {
		return domain.CatalogItem{}, fmt.Errorf("id is empty")
	}

	row, err := r.q.GetCatalogItem(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CatalogItem{}, fmt.Errorf("id[%s]: %w", id, port.ErrItemNotFound)
	}
	if err != nil {
		return domain.CatalogItem{}, fmt.Errorf("q.GetCatalogItem: %w", err)
	}

	return mapCatalogRowToDomain(row), nil
}

func (r *catalogRepository) LookupBarcode(ctx context.Context, barcode string) (domain.CatalogItem, error) {
	if barcode == "" {
		return domain.CatalogItem{}, fmt.Errorf("barcode is empty")
	}

	row, err := r.q.GetCatalogItemByBarcode(ctx, barcode)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CatalogItem{}, fmt.Errorf("barcode[%s]: %w", barcode, port.ErrItemNotFound)
	}
	if err != nil {
		return domain.CatalogItem{}, fmt.Errorf("q.GetCatalogItemByBarcode: %w", err)
	}

	return mapCatalogRowToDomain(row), nil
}

// Seed upserts items in one transaction; their slice order becomes the catalog order.
func (r *catalogRepository) Seed(ctx context.Context, items []domain.CatalogItem) (int, error) {
	for _, item := range items {
		if err := validateItem(item); err != nil {
			return 0, err
		}
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (int, error) {
		for i, item := range items {
			err := q.UpsertCatalogItem(ctx, db.UpsertCatalogItemParams{
				ID:        item.ID,
				Name:      item.Name,
				UnitPrice: item.UnitPrice,
				Barcode:   item.Barcode,
				Position:  int32(i),
			})
			if err != nil {
				return 0, fmt.Errorf("q.UpsertCatalogItem[%s]: %w", item.ID, err)
			}
		}

		return len(items), nil
	})
}

func validateItem(item domain.CatalogItem) error {
	switch {
	case item.ID == "":
		return fmt.Errorf("id is empty")
	case item.Name == "":
		return fmt.Errorf("item[%s]: name is empty", item.ID)
	case item.Barcode == "":
		return fmt.Errorf("item[%s]: barcode is empty", item.ID)
	case item.UnitPrice.IsNegative():
		return fmt.Errorf("item[%s]: unit price[%s] is negative", item.ID, item.UnitPrice)
	}
	return nil
}

func mapCatalogRowToDomain(row db.CatalogItem) domain.CatalogItem {
	return domain.CatalogItem{
		ID:        row.ID,
		Name:      row.Name,
		UnitPrice: row.UnitPrice,
		Barcode:   row.Barcode,
	}
}

func mapCatalogRowsToDomain(rows []db.CatalogItem) []domain.CatalogItem {
	var items []domain.CatalogItem

	for _, row := range rows {
		items = append(items, mapCatalogRowToDomain(row))
	}

	return items
}
