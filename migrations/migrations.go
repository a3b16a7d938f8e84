package migrations

import (
	"context"
	"database/sql"
	"sneaker-shop/internal/entity"
	"sneaker-shop/internal/repository"
	"time"
)

var retryDelay = 1 * time.Second

// AutoMigrateSneakers creates the sneakers table if it does not exist.
func AutoMigrateSneakers(retries int, dbs ...*sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS sneakers (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			price DOUBLE NOT NULL,
			image_url VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			is_popular TINYINT(1) NOT NULL DEFAULT 0
		);
	`
	for _, db := range dbs {
		_, err := db.Exec(query)
		if err != nil {
			// Retry creating the table
			for i := 0; i < retries; i++ {
				time.Sleep(retryDelay)
				_, err = db.Exec(query)
				if err == nil {
					break
				}
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// SeedSneakers inserts the given sneakers when the table is still empty.
func SeedSneakers(ctx context.Context, db *sql.DB, sneakers []entity.Sneaker) error {
	repo := repository.NewSneakerRepository(db)
	n, err := repo.CountSneakers(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return repo.CreateSneakers(ctx, sneakers)
}
