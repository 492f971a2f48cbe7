package payment

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("payment method not found")
	ErrExists   = errors.New("payment method already saved")
)

// Repository provides access to saved payment methods.
type Repository interface {
	GetMethods(userID int) ([]Method, error)
	AddMethod(m Method) (Method, error)
	RemoveMethod(userID int, methodID int) error
}

// InMemoryRepository is used for tests and demo mode.
type InMemoryRepository struct {
	mu     sync.RWMutex
	data   map[int][]Method // keyed by userID
	nextID int
}

func NewInMemoryRepository(seed map[int][]Method) *InMemoryRepository {
	if seed == nil {
		seed = make(map[int][]Method)
	}
	nextID := 1
	for _, methods := range seed {
		for _, m := range methods {
			if m.MethodID >= nextID {
				nextID = m.MethodID + 1
			}
		}
	}
	return &InMemoryRepository{data: seed, nextID: nextID}
}

func (r *InMemoryRepository) GetMethods(userID int) ([]Method, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	methods := make([]Method, len(r.data[userID]))
	copy(methods, r.data[userID])
	return methods, nil
}

func (r *InMemoryRepository) AddMethod(m Method) (Method, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.data[m.UserID] {
		if existing.Brand == m.Brand && existing.Last4 == m.Last4 {
			return Method{}, ErrExists
		}
	}
	m.MethodID = r.nextID
	r.nextID++
	r.data[m.UserID] = append(r.data[m.UserID], m)
	return m, nil
}

func (r *InMemoryRepository) RemoveMethod(userID int, methodID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	methods, ok := r.data[userID]
	if !ok {
		return ErrNotFound
	}
	for i, m := range methods {
		if m.MethodID == methodID {
			r.data[userID] = append(methods[:i], methods[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
