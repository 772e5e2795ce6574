package db

import (
	"context"

	"github.com/shopspring/decimal"
)

const getCatalogItem = `-- name: GetCatalogItem :one
SELECT id, name, unit_price, barcode, position, created_at
FROM catalog_items
WHERE id = $1
`

func (q *Queries) GetCatalogItem(ctx context.Context, id string) (CatalogItem, error) {
	row := q.db.QueryRow(ctx, getCatalogItem, id)
	var i CatalogItem
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.UnitPrice,
		&i.Barcode,
		&i.Position,
		&i.CreatedAt,
	)
	return i, err
}

const getCatalogItemByBarcode = `-- name: GetCatalogItemByBarcode :one
SELECT id, name, unit_price, barcode, position, created_at
FROM catalog_items
WHERE barcode = $1
`

func (q *Queries) GetCatalogItemByBarcode(ctx context.Context, barcode string) (CatalogItem, error) {
	row := q.db.QueryRow(ctx, getCatalogItemByBarcode, barcode)
	var i CatalogItem
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.UnitPrice,
		&i.Barcode,
		&i.Position,
		&i.CreatedAt,
	)
	return i, err
}

const searchCatalogItems = `-- name: SearchCatalogItems :many
SELECT id, name, unit_price, barcode, position, created_at
FROM catalog_items
WHERE $1::text = ''
   OR strpos(lower(name), lower($1::text)) > 0
   OR strpos(barcode, $1::text) > 0
ORDER BY position, id
`

func (q *Queries) SearchCatalogItems(ctx context.Context, term string) ([]CatalogItem, error) {
	rows, err := q.db.Query(ctx, searchCatalogItems, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CatalogItem
	for rows.Next() {
		var i CatalogItem
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.UnitPrice,
			&i.Barcode,
			&i.Position,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertCatalogItem = `-- name: UpsertCatalogItem :exec
INSERT INTO catalog_items (id, name, unit_price, barcode, position)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE
SET name       = EXCLUDED.name,
    unit_price = EXCLUDED.unit_price,
    barcode    = EXCLUDED.barcode,
    position   = EXCLUDED.position
`

type UpsertCatalogItemParams struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Barcode   string
	Position  int32
}

func (q *Queries) UpsertCatalogItem(ctx context.Context, arg UpsertCatalogItemParams) error {
	_, err := q.db.Exec(ctx, upsertCatalogItem,
		arg.ID,
		arg.Name,
		arg.UnitPrice,
		arg.Barcode,
		arg.Position,
	)
	return err
}
