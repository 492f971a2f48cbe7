package cart

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("user not found")
)

// Repository provides access to per-user carts. Each user has exactly one
// active cart for the current checkout session.
type Repository interface {
	GetCart(userID int) (Cart, error)
	AddItem(userID int, item LineItem) (Cart, error)
	SetQuantity(userID int, itemID int, quantity int) (Cart, error)
	RemoveItem(userID int, itemID int) (Cart, error)
	ClearCart(userID int) error
}

// InMemoryRepository is used for tests and the seeded demo mode. A user
// without a stored cart starts from an empty one, mirroring the cart row
// created on sign-up in the database mode.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[int]Cart
}

func NewInMemoryRepository(seed map[int]Cart) *InMemoryRepository {
	carts := make(map[int]Cart, len(seed))
	for userID, c := range seed {
		carts[userID] = c.Clone()
	}
	return &InMemoryRepository{carts: carts}
}

func (r *InMemoryRepository) GetCart(userID int) (Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := r.carts[userID]
	return c.Clone(), nil
}

func (r *InMemoryRepository) AddItem(userID int, item LineItem) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.carts[userID]
	c.AddItem(item)
	r.carts[userID] = c
	return c.Clone(), nil
}

func (r *InMemoryRepository) SetQuantity(userID int, itemID int, quantity int) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.carts[userID]
	c.SetQuantity(itemID, quantity)
	r.carts[userID] = c
	return c.Clone(), nil
}

func (r *InMemoryRepository) RemoveItem(userID int, itemID int) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.carts[userID]
	c.Remove(itemID)
	r.carts[userID] = c
	return c.Clone(), nil
}

func (r *InMemoryRepository) ClearCart(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[userID] = Cart{}
	return nil
}
