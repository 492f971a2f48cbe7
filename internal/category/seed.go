package category

func strPtr(s string) *string { return &s }

// SeedCategories returns the cuisine tiles shown on the home page.
func SeedCategories() []CategoryItem {
	return []CategoryItem{
		{CategoryID: 1, CategoryName: "Pizza", CategoryImg: strPtr("https://images.unsplash.com/photo-1513104890138-7c749659a591?w=200")},
		{CategoryID: 2, CategoryName: "Sushi", CategoryImg: strPtr("https://images.unsplash.com/photo-1579871494447-9811cf80d66c?w=200")},
		{CategoryID: 3, CategoryName: "Burgers", CategoryImg: strPtr("https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=200")},
		{CategoryID: 4, CategoryName: "Italian", CategoryImg: strPtr("https://images.unsplash.com/photo-1551183053-bf91a1d81141?w=200")},
		{CategoryID: 5, CategoryName: "Mexican", CategoryImg: strPtr("https://images.unsplash.com/photo-1565299585323-38d6b0865b47?w=200")},
		{CategoryID: 6, CategoryName: "Desserts", CategoryImg: strPtr("https://images.unsplash.com/photo-1551024601-bec78aea704b?w=200")},
		{CategoryID: 7, CategoryName: "Vegan", CategoryImg: strPtr("https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=200")},
		{CategoryID: 8, CategoryName: "Thai", CategoryImg: strPtr("https://images.unsplash.com/photo-1559314809-0d155014e29e?w=200")},
	}
}
