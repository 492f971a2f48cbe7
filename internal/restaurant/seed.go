package restaurant

// SeedRestaurants returns the sample restaurants used by the demo mode,
// merging the storefront's home and listing page data.
func SeedRestaurants() []Restaurant {
	return []Restaurant{
		{
			Slug:         "taco-fiesta",
			Name:         "Taco Fiesta",
			ImageURL:     "https://images.unsplash.com/photo-1552332386-f8dd00dc2f85?q=80&w=800",
			Cuisine:      "Mexican",
			Rating:       4.5,
			ReviewCount:  250,
			DeliveryTime: 25,
			Address:      "123 Main St, Anytown, USA",
		},
		{
			Slug:         "pizza-palace",
			Name:         "Pizza Palace",
			ImageURL:     "https://images.unsplash.com/photo-1513104890138-7c749659a591?q=80&w=800",
			Cuisine:      "Italian",
			Rating:       4.5,
			DeliveryTime: 25,
		},
		{
			Slug:         "sushi-zen",
			Name:         "Sushi Zen",
			ImageURL:     "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?q=80&w=800",
			Cuisine:      "Japanese",
			Rating:       4.8,
			DeliveryTime: 35,
		},
		{
			Slug:         "burger-barn",
			Name:         "Burger Barn",
			ImageURL:     "https://images.unsplash.com/photo-1571091718767-18b5b1457add?q=80&w=800",
			Cuisine:      "American",
			Rating:       4.3,
			DeliveryTime: 20,
		},
		{
			Slug:         "guac-n-roll",
			Name:         "Guac & Roll",
			ImageURL:     "https://images.unsplash.com/photo-1552332386-f8dd00dc2f85?q=80&w=800&auto=format&fit=crop",
			Cuisine:      "Mexican",
			Rating:       4.8,
			DeliveryTime: 20,
		},
		{
			Slug:         "the-salsa-spot",
			Name:         "The Salsa Spot",
			ImageURL:     "https://images.unsplash.com/photo-1627907222584-788751f09b8b?q=80&w=800&auto=format&fit=crop",
			Cuisine:      "Tex-Mex",
			Rating:       4.2,
			DeliveryTime: 35,
		},
		{
			Slug:         "burrito-bliss",
			Name:         "Burrito Bliss",
			ImageURL:     "https://images.unsplash.com/photo-1604382354936-07c5d9983d34?q=80&w=800&auto=format&fit=crop",
			Cuisine:      "Mexican",
			Rating:       4.6,
			DeliveryTime: 30,
		},
		{
			Slug:         "nacho-average-place",
			Name:         "Nacho Average Place",
			ImageURL:     "https://images.unsplash.com/photo-1599974558296-e2a2656d5815?q=80&w=800&auto=format&fit=crop",
			Cuisine:      "Tex-Mex",
			Rating:       4.3,
			DeliveryTime: 40,
		},
	}
}
