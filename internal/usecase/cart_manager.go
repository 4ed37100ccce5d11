package usecase

import (
	"context"
	"sync"

	repo "luxestore/internal/repository"
)

// CartManager は利用者ごとの CartStore を払い出す。
// 保存キーは shopping-cart:<uid>（端末共通キーの複数ユーザー版）。
type CartManager struct {
	mu      sync.Mutex
	storage repo.CartStorage
	stores  map[string]*CartStore
}

func NewCartManager(storage repo.CartStorage) *CartManager {
	return &CartManager{
		storage: storage,
		stores:  map[string]*CartStore{},
	}
}

func cartKeyForUser(userID string) string {
	return DefaultCartKey + ":" + userID
}

// ForUser は該当ユーザーのストアを返す。初回はストレージから復元する。
func (m *CartManager) ForUser(ctx context.Context, userID string) *CartStore {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[userID]; ok {
		return s
	}

	s := NewCartStore(ctx, m.storage, cartKeyForUser(userID))
	m.stores[userID] = s
	return s
}

// Release はメモリ上のストアを手放す（サインアウト時）。
// スナップショットはストレージに残るので次回サインインで復元される。
func (m *CartManager) Release(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, userID)
}
