package featured

import (
	"sort"

	"github.com/flavorrush/flavorrush-backend/internal/restaurant"
)

// Repository provides access to featured restaurants.
type Repository interface {
	List(limit int, offset int) ([]FeaturedItem, error)
}

// RestaurantRepository ranks restaurants from the restaurant store by rating.
// Used in tests and demo mode where everything lives in memory.
type RestaurantRepository struct {
	restaurants restaurant.Repository
}

func NewRestaurantRepository(r restaurant.Repository) *RestaurantRepository {
	return &RestaurantRepository{restaurants: r}
}

func (r *RestaurantRepository) List(limit int, offset int) ([]FeaturedItem, error) {
	all := r.restaurants.List()
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Rating == all[j].Rating {
			return all[i].Slug < all[j].Slug
		}
		return all[i].Rating > all[j].Rating
	})

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	if offset >= len(all) {
		return []FeaturedItem{}, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}

	out := make([]FeaturedItem, 0, len(all))
	for _, rest := range all {
		out = append(out, toFeatured(rest))
	}
	return out, nil
}

func toFeatured(rest restaurant.Restaurant) FeaturedItem {
	item := FeaturedItem{Slug: rest.Slug, Name: rest.Name}
	if rest.ImageURL != "" {
		img := rest.ImageURL
		item.ImageURL = &img
	}
	if rest.Cuisine != "" {
		c := rest.Cuisine
		item.Cuisine = &c
	}
	if rest.Rating > 0 {
		v := rest.Rating
		item.Rating = &v
	}
	if rest.DeliveryTime > 0 {
		d := rest.DeliveryTime
		item.DeliveryTime = &d
	}
	return item
}
