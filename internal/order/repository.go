package order

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("order not found")
)

// Repository defines persistence operations for orders.
type Repository interface {
	Create(ord Order) (Order, error)
	GetByID(orderID int) (Order, error)
	ListByUser(userID int) ([]Order, error)
	UpdateStatus(orderID int, status Status, updatedAt string) (Order, error)
}

// InMemoryRepository is used for tests and the seeded demo mode.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	nextID int
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{
		orders: make([]Order, 0, len(seed)),
		nextID: 1,
	}

	maxID := 0
	for _, ord := range seed {
		r.orders = append(r.orders, ord)
		if ord.OrderID > maxID {
			maxID = ord.OrderID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ord.OrderID == 0 {
		ord.OrderID = r.nextID
		r.nextID++
	}
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) GetByID(orderID int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.orders {
		if ord.OrderID == orderID {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0)
	for _, ord := range r.orders {
		if ord.UserID == userID {
			out = append(out, ord)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(orderID int, status Status, updatedAt string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].OrderID == orderID {
			r.orders[i].Status = status
			if updatedAt != "" {
				r.orders[i].UpdatedAt = updatedAt
			}
			return r.orders[i], nil
		}
	}
	return Order{}, ErrNotFound
}
