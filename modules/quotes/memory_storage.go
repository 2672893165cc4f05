package quotes

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStorage implements Storage in process-local memory, backing the
// degraded mode during database outages.
type MemoryStorage struct {
	mu     sync.RWMutex
	quotes map[uuid.UUID]Quote
}

// NewMemoryStorage creates an empty in-memory quote storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{quotes: make(map[uuid.UUID]Quote)}
}

func (m *MemoryStorage) Create(ctx context.Context, quote *Quote) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.quotes[quote.ID] = *quote
	return nil
}

func (m *MemoryStorage) GetByID(ctx context.Context, id uuid.UUID) (*Quote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	quote, ok := m.quotes[id]
	if !ok {
		return nil, ErrQuoteNotFound
	}
	copied := quote
	return &copied, nil
}

func (m *MemoryStorage) ListByUser(ctx context.Context, userID uuid.UUID) ([]Quote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	quotes := make([]Quote, 0)
	for _, quote := range m.quotes {
		if quote.UserID == userID {
			quotes = append(quotes, quote)
		}
	}

	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
	return quotes, nil
}

func (m *MemoryStorage) Update(ctx context.Context, quote *Quote) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.quotes[quote.ID]
	if !ok || existing.UserID != quote.UserID {
		return ErrQuoteNotFound
	}

	existing.Text = quote.Text
	existing.Author = quote.Author
	existing.Category = quote.Category
	m.quotes[quote.ID] = existing
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context, id, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quote, ok := m.quotes[id]; ok && quote.UserID == userID {
		delete(m.quotes, id)
	}
	return nil
}
