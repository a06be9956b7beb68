package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"adsexamples/internal/domain/googleads"
	"adsexamples/internal/infrastructure/database"
)

type assetRepository struct {
	db *database.DB
}

// NewAssetRepository creates a new image asset cache repository
func NewAssetRepository(db *database.DB) googleads.AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Find(ctx context.Context, customerID, fingerprint string) (*googleads.CachedAsset, error) {
	a := &googleads.CachedAsset{}
	var sourceURL sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT customer_id, fingerprint, resource_name, source_url, created_at
		 FROM image_assets WHERE customer_id = ? AND fingerprint = ?`, customerID, fingerprint,
	).Scan(&a.CustomerID, &a.Fingerprint, &a.ResourceName, &sourceURL, &a.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, googleads.ErrAssetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query cached asset: %w", err)
	}
	a.SourceURL = sourceURL.String
	return a, nil
}

func (r *assetRepository) Save(ctx context.Context, a *googleads.CachedAsset) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO image_assets (customer_id, fingerprint, resource_name, source_url, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (customer_id, fingerprint) DO UPDATE SET
			resource_name = excluded.resource_name,
			source_url = excluded.source_url,
			created_at = excluded.created_at`,
		a.CustomerID, a.Fingerprint, a.ResourceName, a.SourceURL, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save cached asset: %w", err)
	}
	return nil
}
