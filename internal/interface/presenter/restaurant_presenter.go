package presenter

import "github.com/flavorrush/flavorrush-backend/internal/domain/entity"

// RestaurantPresenter shapes domain entities for delivery layer responses.
type RestaurantPresenter struct{}

func NewRestaurantPresenter() *RestaurantPresenter {
	return &RestaurantPresenter{}
}

type RestaurantResponse struct {
	ID           int64   `json:"restaurant_id"`
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	Cuisine      string  `json:"cuisine"`
	ImageURL     string  `json:"image_url,omitempty"`
	Rating       float64 `json:"rating"`
	DeliveryTime int     `json:"delivery_time"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func (p *RestaurantPresenter) ToResponse(restaurant *entity.Restaurant) *RestaurantResponse {
	if restaurant == nil {
		return nil
	}
	return &RestaurantResponse{
		ID:           restaurant.ID,
		Slug:         restaurant.Slug,
		Name:         restaurant.Name,
		Cuisine:      restaurant.Cuisine,
		ImageURL:     restaurant.ImageURL,
		Rating:       restaurant.Rating,
		DeliveryTime: restaurant.DeliveryTime,
		CreatedAt:    restaurant.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    restaurant.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (p *RestaurantPresenter) ToList(restaurants []*entity.Restaurant) []*RestaurantResponse {
	result := make([]*RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		result = append(result, p.ToResponse(restaurant))
	}
	return result
}
