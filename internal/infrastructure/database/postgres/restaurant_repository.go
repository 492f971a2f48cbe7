package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/flavorrush/flavorrush-backend/internal/domain/entity"
	"github.com/flavorrush/flavorrush-backend/internal/domain/repository"
)

// RestaurantRepository is a PostgreSQL implementation of RestaurantRepository.
// It targets the admin-facing table keyed by a serial id, unlike the public
// API store which is keyed by slug.
type RestaurantRepository struct {
	db *sql.DB
}

var _ repository.RestaurantRepository = (*RestaurantRepository)(nil)

const (
	insertRestaurantQuery = `
		INSERT INTO restaurant_admin (slug, name, cuisine, image_url, rating, delivery_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING restaurant_id
	`
	getRestaurantQuery = `
		SELECT restaurant_id, slug, name, cuisine, image_url, rating, delivery_time, created_at, updated_at
		FROM restaurant_admin
		WHERE restaurant_id = $1
	`
	listRestaurantsQuery = `
		SELECT restaurant_id, slug, name, cuisine, image_url, rating, delivery_time, created_at, updated_at
		FROM restaurant_admin
		ORDER BY restaurant_id
	`
	updateRestaurantQuery = `
		UPDATE restaurant_admin
		SET slug=$2, name=$3, cuisine=$4, image_url=$5, rating=$6, delivery_time=$7, updated_at=$8
		WHERE restaurant_id=$1
	`
	deleteRestaurantQuery = `DELETE FROM restaurant_admin WHERE restaurant_id = $1`
)

func NewRestaurantRepository(db *sql.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error) {
	var id int64
	err := r.db.QueryRowContext(
		ctx,
		insertRestaurantQuery,
		restaurant.Slug, restaurant.Name, restaurant.Cuisine, restaurant.ImageURL,
		restaurant.Rating, restaurant.DeliveryTime, restaurant.CreatedAt, restaurant.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	created := *restaurant
	created.ID = id
	return &created, nil
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	err := r.db.QueryRowContext(ctx, getRestaurantQuery, id).Scan(
		&restaurant.ID, &restaurant.Slug, &restaurant.Name, &restaurant.Cuisine,
		&restaurant.ImageURL, &restaurant.Rating, &restaurant.DeliveryTime,
		&restaurant.CreatedAt, &restaurant.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("restaurant not found")
		}
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) List(ctx context.Context) ([]*entity.Restaurant, error) {
	rows, err := r.db.QueryContext(ctx, listRestaurantsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*entity.Restaurant, 0)
	for rows.Next() {
		var restaurant entity.Restaurant
		if err := rows.Scan(
			&restaurant.ID, &restaurant.Slug, &restaurant.Name, &restaurant.Cuisine,
			&restaurant.ImageURL, &restaurant.Rating, &restaurant.DeliveryTime,
			&restaurant.CreatedAt, &restaurant.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &restaurant)
	}
	return result, rows.Err()
}

func (r *RestaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error) {
	res, err := r.db.ExecContext(
		ctx,
		updateRestaurantQuery,
		restaurant.ID, restaurant.Slug, restaurant.Name, restaurant.Cuisine,
		restaurant.ImageURL, restaurant.Rating, restaurant.DeliveryTime, restaurant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, errors.New("restaurant not found")
	}
	updated := *restaurant
	return &updated, nil
}

func (r *RestaurantRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteRestaurantQuery, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("restaurant not found")
	}
	return nil
}
