package quotes

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStorage implements Storage on the Postgres quotes table.
type PGStorage struct {
	pool *pgxpool.Pool
}

// NewPGStorage creates a Postgres-backed quote storage.
func NewPGStorage(pool *pgxpool.Pool) *PGStorage {
	return &PGStorage{pool: pool}
}

func (s *PGStorage) Create(ctx context.Context, quote *Quote) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO quotes (id, user_id, text, author, category, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		quote.ID, quote.UserID, quote.Text, quote.Author, quote.Category, quote.CreatedAt,
	)
	if err != nil {
		return errors.Join(ErrStorageFailed, fmt.Errorf("insert quote: %w", err))
	}
	return nil
}

func (s *PGStorage) GetByID(ctx context.Context, id uuid.UUID) (*Quote, error) {
	var quote Quote
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, text, author, category, created_at FROM quotes WHERE id = $1`,
		id,
	).Scan(&quote.ID, &quote.UserID, &quote.Text, &quote.Author, &quote.Category, &quote.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuoteNotFound
		}
		return nil, errors.Join(ErrStorageFailed, fmt.Errorf("get quote: %w", err))
	}
	return &quote, nil
}

func (s *PGStorage) ListByUser(ctx context.Context, userID uuid.UUID) ([]Quote, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, text, author, category, created_at FROM quotes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, errors.Join(ErrStorageFailed, fmt.Errorf("list quotes: %w", err))
	}
	defer rows.Close()

	quotes := make([]Quote, 0)
	for rows.Next() {
		var quote Quote
		if err := rows.Scan(&quote.ID, &quote.UserID, &quote.Text, &quote.Author, &quote.Category, &quote.CreatedAt); err != nil {
			return nil, errors.Join(ErrStorageFailed, fmt.Errorf("scan quote: %w", err))
		}
		quotes = append(quotes, quote)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrStorageFailed, fmt.Errorf("list quotes: %w", err))
	}
	return quotes, nil
}

func (s *PGStorage) Update(ctx context.Context, quote *Quote) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE quotes SET text = $3, author = $4, category = $5 WHERE id = $1 AND user_id = $2`,
		quote.ID, quote.UserID, quote.Text, quote.Author, quote.Category,
	)
	if err != nil {
		return errors.Join(ErrStorageFailed, fmt.Errorf("update quote: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return ErrQuoteNotFound
	}
	return nil
}

func (s *PGStorage) Delete(ctx context.Context, id, userID uuid.UUID) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM quotes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return errors.Join(ErrStorageFailed, fmt.Errorf("delete quote: %w", err))
	}
	return nil
}
