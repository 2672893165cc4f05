package categories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quotekeeper/quotekeeper/pkg/pg"
)

// PGStorage implements Storage on the Postgres categories table. The unique
// index on (user_id, lower(name)) backs the duplicate detection.
type PGStorage struct {
	pool *pgxpool.Pool
}

// NewPGStorage creates a Postgres-backed category storage.
func NewPGStorage(pool *pgxpool.Pool) *PGStorage {
	return &PGStorage{pool: pool}
}

func (s *PGStorage) Create(ctx context.Context, category *Category) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO categories (id, user_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		category.ID, category.UserID, category.Name, category.CreatedAt,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		return errors.Join(ErrStorageFailed, fmt.Errorf("insert category: %w", err))
	}
	return nil
}

func (s *PGStorage) ListByUser(ctx context.Context, userID uuid.UUID) ([]Category, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, name, created_at FROM categories WHERE user_id = $1 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, errors.Join(ErrStorageFailed, fmt.Errorf("list categories: %w", err))
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var category Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name, &category.CreatedAt); err != nil {
			return nil, errors.Join(ErrStorageFailed, fmt.Errorf("scan category: %w", err))
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrStorageFailed, fmt.Errorf("list categories: %w", err))
	}
	return categories, nil
}

func (s *PGStorage) Rename(ctx context.Context, id, userID uuid.UUID, name string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE categories SET name = $3 WHERE id = $1 AND user_id = $2`,
		id, userID, name,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		return errors.Join(ErrStorageFailed, fmt.Errorf("rename category: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *PGStorage) Delete(ctx context.Context, id, userID uuid.UUID) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM categories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return errors.Join(ErrStorageFailed, fmt.Errorf("delete category: %w", err))
	}
	return nil
}
