package categories

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStorage implements Storage in process-local memory.
type MemoryStorage struct {
	mu         sync.RWMutex
	categories map[uuid.UUID]Category
}

// NewMemoryStorage creates an empty in-memory category storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{categories: make(map[uuid.UUID]Category)}
}

func (m *MemoryStorage) Create(ctx context.Context, category *Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.categories {
		if existing.UserID == category.UserID && existing.Name == category.Name {
			return ErrAlreadyExists
		}
	}

	m.categories[category.ID] = *category
	return nil
}

func (m *MemoryStorage) ListByUser(ctx context.Context, userID uuid.UUID) ([]Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	categories := make([]Category, 0)
	for _, category := range m.categories {
		if category.UserID == userID {
			categories = append(categories, category)
		}
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].CreatedAt.Before(categories[j].CreatedAt)
	})
	return categories, nil
}

func (m *MemoryStorage) Rename(ctx context.Context, id, userID uuid.UUID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	category, ok := m.categories[id]
	if !ok || category.UserID != userID {
		return ErrCategoryNotFound
	}

	for otherID, other := range m.categories {
		if otherID != id && other.UserID == userID && other.Name == name {
			return ErrAlreadyExists
		}
	}

	category.Name = name
	m.categories[id] = category
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context, id, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if category, ok := m.categories[id]; ok && category.UserID == userID {
		delete(m.categories, id)
	}
	return nil
}
