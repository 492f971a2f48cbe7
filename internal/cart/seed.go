package cart

// SeedCart returns the sample cart used by the demo mode, mirroring the
// storefront's initial checkout contents.
func SeedCart() Cart {
	return Cart{Items: []LineItem{
		{
			ID:        1,
			Name:      "Spicy Beef Tacos",
			UnitPrice: 12.99,
			Quantity:  2,
			ImageURL:  "https://images.unsplash.com/photo-1599974579605-59dd79b183c4?q=80&w=200&h=200&auto=format&fit=crop",
		},
		{
			ID:        2,
			Name:      "Guacamole & Chips",
			UnitPrice: 6.50,
			Quantity:  1,
			ImageURL:  "https://images.unsplash.com/photo-1548463697-5a2b128c4cea?q=80&w=200&h=200&auto=format&fit=crop",
		},
		{
			ID:        3,
			Name:      "Horchata",
			UnitPrice: 3.00,
			Quantity:  1,
			ImageURL:  "https://images.unsplash.com/photo-1621501115319-333d8b02137e?q=80&w=200&h=200&auto=format&fit=crop",
		},
	}}
}
