package address

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("address not found")
)

type Repository interface {
	GetAddresses(userID int) ([]Address, error)
	AddAddress(addr Address) (Address, error)
	UpdateAddress(addr Address) (Address, error)
	DeleteAddress(userID int, addressID int) error
	SetDefault(userID int, addressID int) (Address, error)
}

// InMemoryRepository keeps addresses per user. Used for tests and demo mode.
type InMemoryRepository struct {
	mu     sync.RWMutex
	data   map[int][]Address // keyed by userID
	nextID int
}

func NewInMemoryRepository(seed map[int][]Address) *InMemoryRepository {
	if seed == nil {
		seed = make(map[int][]Address)
	}
	nextID := 1
	for _, addrs := range seed {
		for _, a := range addrs {
			if a.AddressID >= nextID {
				nextID = a.AddressID + 1
			}
		}
	}
	return &InMemoryRepository{data: seed, nextID: nextID}
}

func (r *InMemoryRepository) GetAddresses(userID int) ([]Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	addrs := make([]Address, len(r.data[userID]))
	copy(addrs, r.data[userID])
	return addrs, nil
}

func (r *InMemoryRepository) AddAddress(addr Address) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	addr.AddressID = r.nextID
	r.nextID++
	if len(r.data[addr.UserID]) == 0 {
		// first address becomes the default
		addr.IsDefault = true
	}
	if addr.IsDefault {
		r.clearDefaultLocked(addr.UserID)
	}
	r.data[addr.UserID] = append(r.data[addr.UserID], addr)
	return addr, nil
}

func (r *InMemoryRepository) UpdateAddress(addr Address) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	addrs, ok := r.data[addr.UserID]
	if !ok {
		return Address{}, ErrNotFound
	}
	for i, a := range addrs {
		if a.AddressID == addr.AddressID {
			addr.IsDefault = a.IsDefault
			if addr.CreatedAt == "" {
				addr.CreatedAt = a.CreatedAt
			}
			r.data[addr.UserID][i] = addr
			return addr, nil
		}
	}
	return Address{}, ErrNotFound
}

func (r *InMemoryRepository) DeleteAddress(userID int, addressID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	addrs, ok := r.data[userID]
	if !ok {
		return ErrNotFound
	}
	for i, a := range addrs {
		if a.AddressID == addressID {
			r.data[userID] = append(addrs[:i], addrs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) SetDefault(userID int, addressID int) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	addrs, ok := r.data[userID]
	if !ok {
		return Address{}, ErrNotFound
	}
	for i, a := range addrs {
		if a.AddressID == addressID {
			r.clearDefaultLocked(userID)
			a.IsDefault = true
			r.data[userID][i] = a
			return a, nil
		}
	}
	return Address{}, ErrNotFound
}

func (r *InMemoryRepository) clearDefaultLocked(userID int) {
	for i := range r.data[userID] {
		r.data[userID][i].IsDefault = false
	}
}
