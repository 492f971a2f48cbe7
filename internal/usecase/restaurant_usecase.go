package usecase

import (
	"context"

	"github.com/flavorrush/flavorrush-backend/internal/domain/entity"
)

// RestaurantUsecase exposes application-level operations for Restaurant.
type RestaurantUsecase interface {
	Create(ctx context.Context, input CreateRestaurantInput) (*entity.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*entity.Restaurant, error)
	List(ctx context.Context) ([]*entity.Restaurant, error)
	Update(ctx context.Context, id int64, input UpdateRestaurantInput) (*entity.Restaurant, error)
	Delete(ctx context.Context, id int64) error
}

// CreateRestaurantInput carries data required to create a restaurant.
type CreateRestaurantInput struct {
	Name         string
	Cuisine      string
	ImageURL     string
	Rating       float64
	DeliveryTime int
}

// UpdateRestaurantInput carries data required to update a restaurant.
type UpdateRestaurantInput struct {
	Name         string
	Cuisine      string
	ImageURL     string
	Rating       float64
	DeliveryTime int
}
