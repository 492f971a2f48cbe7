package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/flavorrush/flavorrush-backend/internal/domain/entity"
	"github.com/flavorrush/flavorrush-backend/internal/domain/repository"
)

// RestaurantService implements RestaurantUsecase with repository dependency.
type RestaurantService struct {
	repo repository.RestaurantRepository
}

func NewRestaurantService(repo repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

func (s *RestaurantService) Create(ctx context.Context, input CreateRestaurantInput) (*entity.Restaurant, error) {
	name := strings.TrimSpace(input.Name)
	cuisine := strings.TrimSpace(input.Cuisine)

	if name == "" || cuisine == "" {
		return nil, errors.New("name and cuisine are required")
	}
	if input.Rating < 0 || input.Rating > 5 {
		return nil, errors.New("rating must be between 0 and 5")
	}

	restaurant := &entity.Restaurant{
		Slug:         slugify(name),
		Name:         name,
		Cuisine:      cuisine,
		ImageURL:     strings.TrimSpace(input.ImageURL),
		Rating:       input.Rating,
		DeliveryTime: input.DeliveryTime,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	return s.repo.Create(ctx, restaurant)
}

func (s *RestaurantService) GetByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RestaurantService) List(ctx context.Context) ([]*entity.Restaurant, error) {
	return s.repo.List(ctx)
}

func (s *RestaurantService) Update(ctx context.Context, id int64, input UpdateRestaurantInput) (*entity.Restaurant, error) {
	if id <= 0 {
		return nil, errors.New("invalid restaurant id")
	}

	restaurant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) != "" {
		restaurant.Name = strings.TrimSpace(input.Name)
		restaurant.Slug = slugify(restaurant.Name)
	}
	if strings.TrimSpace(input.Cuisine) != "" {
		restaurant.Cuisine = strings.TrimSpace(input.Cuisine)
	}
	if strings.TrimSpace(input.ImageURL) != "" {
		restaurant.ImageURL = strings.TrimSpace(input.ImageURL)
	}
	if input.Rating > 0 {
		if input.Rating > 5 {
			return nil, errors.New("rating must be between 0 and 5")
		}
		restaurant.Rating = input.Rating
	}
	if input.DeliveryTime > 0 {
		restaurant.DeliveryTime = input.DeliveryTime
	}

	restaurant.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, restaurant)
}

func (s *RestaurantService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return errors.New("invalid restaurant id")
	}
	return s.repo.Delete(ctx, id)
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	var b strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
