package inmemory

import (
	"context"
	"errors"
	"sync"

	"github.com/flavorrush/flavorrush-backend/internal/domain/entity"
	"github.com/flavorrush/flavorrush-backend/internal/domain/repository"
)

// RestaurantRepository is an in-memory implementation of RestaurantRepository.
type RestaurantRepository struct {
	mu     sync.RWMutex
	nextID int64
	store  map[int64]*entity.Restaurant
}

var _ repository.RestaurantRepository = (*RestaurantRepository)(nil)

func NewRestaurantRepository() *RestaurantRepository {
	return &RestaurantRepository{
		nextID: 1,
		store:  make(map[int64]*entity.Restaurant),
	}
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	restaurantCopy := *restaurant
	restaurantCopy.ID = r.nextID
	r.nextID++
	r.store[restaurantCopy.ID] = &restaurantCopy

	result := restaurantCopy
	return &result, nil
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	restaurant, ok := r.store[id]
	if !ok {
		return nil, errors.New("restaurant not found")
	}

	copy := *restaurant
	return &copy, nil
}

func (r *RestaurantRepository) List(ctx context.Context) ([]*entity.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Restaurant, 0, len(r.store))
	for _, restaurant := range r.store {
		copy := *restaurant
		result = append(result, &copy)
	}
	return result, nil
}

func (r *RestaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[restaurant.ID]; !ok {
		return nil, errors.New("restaurant not found")
	}

	copy := *restaurant
	r.store[restaurant.ID] = &copy
	result := copy
	return &result, nil
}

func (r *RestaurantRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return errors.New("restaurant not found")
	}
	delete(r.store, id)
	return nil
}
