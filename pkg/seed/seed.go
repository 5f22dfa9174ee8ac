// Package seed loads the demo storefront catalog into the database. It is idempotent:
// rows are upserted by primary key so it can run repeatedly against the same database.
package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/polattozlu/munch-gokhan/pkg/config"
	"github.com/polattozlu/munch-gokhan/pkg/db"
	"github.com/polattozlu/munch-gokhan/pkg/logger"
)

// Run upserts the full demo catalog inside a single transaction.
func Run(ctx context.Context, client *db.Client, logg *logger.Logger) error {
	return client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := upsertRestaurants(tx); err != nil {
			return err
		}
		if err := upsertMenuItems(tx); err != nil {
			return err
		}
		if err := upsertLocations(tx); err != nil {
			return err
		}
		if err := upsertReviews(tx); err != nil {
			return err
		}

		ctx := logg.WithFields(ctx, map[string]any{
			"restaurants": len(restaurants),
			"menu_items":  len(menuItems),
			"locations":   len(locations),
			"reviews":     len(reviews),
		})
		logg.Info(ctx, "seed data loaded")
		return nil
	})
}

// MaybeRunDev seeds the catalog automatically when the app runs in dev mode with the
// feature flag enabled.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoSeed {
		return nil
	}

	logg.Info(ctx, "seeding demo catalog (dev auto-run)")
	if err := Run(ctx, client, logg); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	return nil
}

func upsertAll[T any](tx *gorm.DB, rows []T) error {
	return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
}

func upsertRestaurants(tx *gorm.DB) error {
	if err := upsertAll(tx, restaurants); err != nil {
		return fmt.Errorf("seeding restaurants: %w", err)
	}
	return nil
}

func upsertMenuItems(tx *gorm.DB) error {
	if err := upsertAll(tx, menuItems); err != nil {
		return fmt.Errorf("seeding menu items: %w", err)
	}
	return nil
}

func upsertLocations(tx *gorm.DB) error {
	if err := upsertAll(tx, locations); err != nil {
		return fmt.Errorf("seeding restaurant locations: %w", err)
	}
	return nil
}

func upsertReviews(tx *gorm.DB) error {
	if err := upsertAll(tx, reviews); err != nil {
		return fmt.Errorf("seeding reviews: %w", err)
	}
	return nil
}
