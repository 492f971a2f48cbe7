package menu

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("menu item not found")
)

type Repository interface {
	ListByRestaurant(slug string) ([]Item, error)
	GetByID(id int) (Item, error)
	// ListByIDs returns the items whose id is present in the provided slice,
	// ordered the same way as the ids argument. An empty slice returns an
	// empty result without touching storage.
	ListByIDs(ids []int) ([]Item, error)
	Create(item Item) (Item, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and seeding local data.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Item
	nextID  int
}

func NewInMemoryRepository(seed []Item) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Item, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, item := range seed {
		r.storage = append(r.storage, item)
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) ListByRestaurant(slug string) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0)
	for _, item := range r.storage {
		if item.RestaurantSlug == slug {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.storage {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, ErrNotFound
}

func (r *InMemoryRepository) ListByIDs(ids []int) ([]Item, error) {
	if len(ids) == 0 {
		return []Item{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0, len(ids))
	for _, id := range ids {
		for _, item := range r.storage {
			if item.ID == id {
				out = append(out, item)
				break
			}
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(item Item) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == 0 {
		item.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, item)
	return item, nil
}
