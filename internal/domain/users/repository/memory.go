package repository

import (
	"context"
	"sync"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// MemoryStore - in-memory реализация, данные теряются при перезапуске
type MemoryStore struct {
	data map[int64]model.Credentials
	mu   sync.RWMutex
}

// NewMemoryStore создает новый MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[int64]model.Credentials)}
}

func (m *MemoryStore) Get(_ context.Context, telegramID int64) (*model.Credentials, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	creds, ok := m.data[telegramID]
	if !ok {
		return nil, nil
	}
	return &creds, nil
}

func (m *MemoryStore) Set(_ context.Context, telegramID int64, creds model.Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[telegramID] = creds
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, telegramID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, telegramID)
	return nil
}
