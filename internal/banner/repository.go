package banner

import "sync"

// Repository provides access to promo rows.
type Repository interface {
	List(limit int) ([]Promo, error)
}

// InMemoryRepository serves fixed promos in tests and demo mode.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Promo
}

func NewInMemoryRepository(seed []Promo) *InMemoryRepository {
	return &InMemoryRepository{storage: seed}
}

func (r *InMemoryRepository) List(limit int) ([]Promo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit > len(r.storage) || limit <= 0 {
		limit = len(r.storage)
	}
	out := make([]Promo, limit)
	copy(out, r.storage[:limit])
	return out, nil
}
