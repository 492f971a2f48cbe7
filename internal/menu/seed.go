package menu

// SeedItems returns the sample menu used by the demo mode, mirroring the
// storefront's restaurant detail page.
func SeedItems() []Item {
	return []Item{
		{
			ID:             1,
			RestaurantSlug: "taco-fiesta",
			Category:       "Appetizers",
			Name:           "Chips & Guacamole",
			Description:    "Freshly made guacamole with crispy tortilla chips. Perfect for sharing!",
			Price:          8.99,
			ImageURL:       "https://images.unsplash.com/photo-1548483169-b37589178b64?q=80&w=2070&auto=format&fit=crop",
		},
		{
			ID:             2,
			RestaurantSlug: "taco-fiesta",
			Category:       "Appetizers",
			Name:           "Street Corn (Elote)",
			Description:    "Grilled corn on the cob smothered in a creamy chili-lime sauce and cotija cheese.",
			Price:          5.49,
			ImageURL:       "https://images.unsplash.com/photo-1599942006322-9214154b0a1f?q=80&w=1974&auto=format&fit=crop",
		},
		{
			ID:             3,
			RestaurantSlug: "taco-fiesta",
			Category:       "Tacos",
			Name:           "Carne Asada Tacos",
			Description:    "Two grilled steak tacos topped with onions, cilantro, and a side of salsa verde.",
			Price:          12.99,
			ImageURL:       "https://images.unsplash.com/photo-1565299589934-1f74294a8f98?q=80&w=1974&auto=format&fit=crop",
		},
		{
			ID:             4,
			RestaurantSlug: "taco-fiesta",
			Category:       "Tacos",
			Name:           "Al Pastor Tacos",
			Description:    "Marinated pork tacos with pineapple, onions, and cilantro. A classic favorite.",
			Price:          11.99,
			ImageURL:       "https://images.unsplash.com/photo-1624322489253-8b7a695e5462?q=80&w=1964&auto=format&fit=crop",
		},
		{
			ID:             5,
			RestaurantSlug: "taco-fiesta",
			Category:       "Tacos",
			Name:           "Baja Fish Tacos",
			Description:    "Crispy beer-battered fish, cabbage slaw, and chipotle aioli in a warm tortilla.",
			Price:          13.49,
			ImageURL:       "https://images.unsplash.com/photo-1512152272829-e3139592d56f?q=80&w=2070&auto=format&fit=crop",
		},
		{
			ID:             6,
			RestaurantSlug: "taco-fiesta",
			Category:       "Burritos",
			Name:           "California Burrito",
			Description:    "A huge burrito packed with carne asada, french fries, cheese, and guacamole.",
			Price:          14.99,
			ImageURL:       "https://images.unsplash.com/photo-1627907222143-b65aa5a39a73?q=80&w=2070&auto=format&fit=crop",
		},
	}
}
