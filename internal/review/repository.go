package review

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("review not found")
)

// Repository provides access to restaurant reviews.
type Repository interface {
	ListBySlug(slug string) ([]Review, error)
	Create(rev Review) (Review, error)
}

// InMemoryRepository is used for tests and demo mode.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Review
	nextID  int
}

func NewInMemoryRepository(seed []Review) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Review, 0, len(seed)), nextID: 1}
	for _, rev := range seed {
		if rev.ReviewID >= r.nextID {
			r.nextID = rev.ReviewID + 1
		}
		r.storage = append(r.storage, rev)
	}
	return r
}

func (r *InMemoryRepository) ListBySlug(slug string) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Review, 0)
	for _, rev := range r.storage {
		if rev.RestaurantSlug == slug {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(rev Review) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rev.ReviewID = r.nextID
	r.nextID++
	r.storage = append(r.storage, rev)
	return rev, nil
}
