package restaurant

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("restaurant not found")
	ErrExists   = errors.New("restaurant already exists")
)

type Repository interface {
	List() []Restaurant
	GetBySlug(slug string) (Restaurant, error)
	Create(r Restaurant) (Restaurant, error)
	Update(slug string, r Restaurant) (Restaurant, error)
	Delete(slug string) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and seeding local data.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Restaurant
}

func NewInMemoryRepository(seed []Restaurant) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Restaurant, 0, len(seed))}
	for _, rest := range seed {
		r.storage = append(r.storage, rest)
	}
	return r
}

func (r *InMemoryRepository) List() []Restaurant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Restaurant, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetBySlug(slug string) (Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rest := range r.storage {
		if rest.Slug == slug {
			return rest, nil
		}
	}
	return Restaurant{}, ErrNotFound
}

func (r *InMemoryRepository) Create(rest Restaurant) (Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.storage {
		if existing.Slug == rest.Slug {
			return Restaurant{}, ErrExists
		}
	}
	r.storage = append(r.storage, rest)
	return rest, nil
}

func (r *InMemoryRepository) Update(slug string, rest Restaurant) (Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].Slug == slug {
			rest.Slug = slug
			r.storage[i] = rest
			return rest, nil
		}
	}
	return Restaurant{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].Slug == slug {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
