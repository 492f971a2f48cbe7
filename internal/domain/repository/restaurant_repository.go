package repository

import (
	"context"

	"github.com/flavorrush/flavorrush-backend/internal/domain/entity"
)

// RestaurantRepository defines persistence behavior for the Restaurant entity.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*entity.Restaurant, error)
	List(ctx context.Context) ([]*entity.Restaurant, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error)
	Delete(ctx context.Context, id int64) error
}
