package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sneaker-shop/internal/entity"
)

// SneakerRepository reads the catalog seed from MySQL. It is only used at
// startup; the running shop serves the catalog from memory.
type SneakerRepository struct {
	db *sql.DB
}

func NewSneakerRepository(db *sql.DB) *SneakerRepository {
	return &SneakerRepository{db}
}

func (r *SneakerRepository) GetSneakers(ctx context.Context) ([]entity.Sneaker, error) {
	query := `SELECT id, name, description, price, image_url, category, is_popular FROM sneakers ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query sneakers: %w", err)
	}
	defer rows.Close()

	sneakers := []entity.Sneaker{}
	for rows.Next() {
		var s entity.Sneaker
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.ImageURL, &s.Category, &s.IsPopular); err != nil {
			return nil, fmt.Errorf("scan sneaker: %w", err)
		}
		s.Quantity = 1
		sneakers = append(sneakers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sneakers: %w", err)
	}

	return sneakers, nil
}

func (r *SneakerRepository) CountSneakers(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sneakers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sneakers: %w", err)
	}
	return n, nil
}

// CreateSneakers inserts the given sneakers in one transaction.
func (r *SneakerRepository) CreateSneakers(ctx context.Context, sneakers []entity.Sneaker) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `INSERT INTO sneakers (id, name, description, price, image_url, category, is_popular) VALUES (?, ?, ?, ?, ?, ?, ?)`
	for _, s := range sneakers {
		if _, err := tx.ExecContext(ctx, query, s.ID, s.Name, s.Description, s.Price, s.ImageURL, s.Category, s.IsPopular); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert sneaker %d: %w", s.ID, err)
		}
	}

	return tx.Commit()
}
