package review

// Review is a diner's rating of a restaurant.
// JSON tags use camelCase to match the frontend.
type Review struct {
	ReviewID       int    `json:"reviewId"`
	RestaurantSlug string `json:"restaurantSlug"`
	UserID         int    `json:"userId"`
	Author         string `json:"author"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// Summary aggregates the reviews of one restaurant.
type Summary struct {
	RestaurantSlug string  `json:"restaurantSlug"`
	Average        float64 `json:"average"`
	Count          int     `json:"count"`
}
