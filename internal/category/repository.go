package category

import "sync"

// Repository provides access to category rows.
type Repository interface {
	List(limit int) ([]CategoryItem, error)
}

// InMemoryRepository serves a fixed category list in tests and demo mode.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []CategoryItem
}

func NewInMemoryRepository(seed []CategoryItem) *InMemoryRepository {
	return &InMemoryRepository{storage: seed}
}

func (r *InMemoryRepository) List(limit int) ([]CategoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit > len(r.storage) || limit <= 0 {
		limit = len(r.storage)
	}
	out := make([]CategoryItem, limit)
	copy(out, r.storage[:limit])
	return out, nil
}
