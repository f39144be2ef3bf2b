package database

import (
	"context"
	"fmt"

	"github.com/jfcharron/sqdc-strain-scraper/internal/models"
)

const strainsSchema = `
CREATE TABLE IF NOT EXISTS strains (
	sku               TEXT PRIMARY KEY,
	product_id        TEXT NOT NULL,
	store_id          INTEGER NOT NULL,
	name              TEXT NOT NULL,
	url               TEXT NOT NULL,
	quantity          INTEGER NOT NULL,
	promised_quantity INTEGER NOT NULL,
	list_price        DOUBLE PRECISION NOT NULL,
	display_price     DOUBLE PRECISION NOT NULL,
	scraped_at        TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// EnsureSchema creates the strains table if it does not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, strainsSchema); err != nil {
		return fmt.Errorf("failed to ensure strains schema: %w", err)
	}
	return nil
}

// UpsertStrain inserts a processed strain or refreshes it if the SKU is
// already known.
func (db *DB) UpsertStrain(ctx context.Context, storeID int, s *models.Strain) error {
	if !s.IsProcessed() {
		return fmt.Errorf("strain %s is not fully processed", s.SKU)
	}

	query := `
		INSERT INTO strains (sku, product_id, store_id, name, url, quantity, promised_quantity, list_price, display_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (sku) DO UPDATE SET
			store_id = EXCLUDED.store_id,
			name = EXCLUDED.name,
			url = EXCLUDED.url,
			quantity = EXCLUDED.quantity,
			promised_quantity = EXCLUDED.promised_quantity,
			list_price = EXCLUDED.list_price,
			display_price = EXCLUDED.display_price,
			scraped_at = CURRENT_TIMESTAMP,
			updated_at = CURRENT_TIMESTAMP`

	_, err := db.pool.Exec(ctx, query,
		s.SKU, s.ProductID(), storeID, s.Name, s.URL,
		*s.Quantity, *s.PromisedQuantity, *s.ListPrice, *s.DisplayPrice)
	if err != nil {
		return fmt.Errorf("failed to upsert strain %s: %w", s.SKU, err)
	}
	return nil
}

// UpsertStrains persists a whole run's processed strains.
func (db *DB) UpsertStrains(ctx context.Context, storeID int, strains []*models.Strain) error {
	for _, s := range strains {
		if err := db.UpsertStrain(ctx, storeID, s); err != nil {
			return err
		}
	}
	return nil
}

// ListStrains returns the stored strains for a store, cheapest first.
func (db *DB) ListStrains(ctx context.Context, storeID int) ([]*models.Strain, error) {
	query := `
		SELECT sku, name, url, quantity, promised_quantity, list_price, display_price
		FROM strains
		WHERE store_id = $1
		ORDER BY display_price ASC`

	rows, err := db.pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list strains: %w", err)
	}
	defer rows.Close()

	var strains []*models.Strain
	for rows.Next() {
		var (
			s                  models.Strain
			quantity, promised int
			list, display      float64
		)
		if err := rows.Scan(&s.SKU, &s.Name, &s.URL, &quantity, &promised, &list, &display); err != nil {
			return nil, fmt.Errorf("failed to scan strain: %w", err)
		}
		s.Quantity = &quantity
		s.PromisedQuantity = &promised
		s.ListPrice = &list
		s.DisplayPrice = &display
		strains = append(strains, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate strains: %w", err)
	}

	return strains, nil
}
