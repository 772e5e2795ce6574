package repository_test

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const catalogSchema = "../../migrations/01_catalog_items.up.sql"

// startPostgres boots a throwaway database with the catalog schema applied.
func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	container, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.WithDatabase("pos"),
		postgres.WithUsername("pos"),
		postgres.WithPassword("pos"),
		postgres.WithInitScripts(catalogSchema),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, "", fmt.Errorf("container.ConnectionString: %w", err)
	}

	return container, dsn, nil
}
