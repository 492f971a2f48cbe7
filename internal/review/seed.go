package review

// SeedReviews returns a handful of reviews for the demo restaurants.
func SeedReviews() []Review {
	return []Review{
		{ReviewID: 1, RestaurantSlug: "taco-fiesta", UserID: 1, Author: "Alex Doe", Rating: 5, Comment: "The al pastor tacos are unreal. Delivery was fast too.", CreatedAt: "2026-02-10T18:05:00Z"},
		{ReviewID: 2, RestaurantSlug: "taco-fiesta", UserID: 2, Author: "Sam Rivera", Rating: 4, Comment: "Great guac, burrito could use more rice.", CreatedAt: "2026-02-12T12:40:00Z"},
		{ReviewID: 3, RestaurantSlug: "pizza-palace", UserID: 2, Author: "Sam Rivera", Rating: 5, Comment: "Best crust in town.", CreatedAt: "2026-02-14T20:15:00Z"},
	}
}
