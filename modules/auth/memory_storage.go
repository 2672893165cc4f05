package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStorage implements Storage in process-local memory. It backs the
// degraded mode during database outages; accounts created here vanish on
// restart.
type MemoryStorage struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]User
	byEmail map[string]uuid.UUID
}

// NewMemoryStorage creates an empty in-memory user storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		byID:    make(map[uuid.UUID]User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (m *MemoryStorage) CreateUser(ctx context.Context, user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.byEmail[user.Email]; taken {
		return ErrEmailAlreadyExists
	}

	m.byID[user.ID] = *user
	m.byEmail[user.Email] = user.ID
	return nil
}

func (m *MemoryStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := user
	return &copied, nil
}

func (m *MemoryStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	user := m.byID[id]
	return &user, nil
}

func (m *MemoryStorage) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.byID[userID]
	if !ok {
		return ErrUserNotFound
	}
	user.PasswordHash = append([]byte(nil), hash...)
	m.byID[userID] = user
	return nil
}
