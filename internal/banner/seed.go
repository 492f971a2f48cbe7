package banner

func strPtr(s string) *string { return &s }

// SeedPromos returns the hero promos shown on the home page.
func SeedPromos() []Promo {
	return []Promo{
		{
			PromoID:  1,
			ImageURL: strPtr("https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=1200"),
			Headline: strPtr("Taco Tuesday: 20% off Mexican favorites"),
			CTA:      strPtr("Order now"),
			Link:     strPtr("/restaurants?cuisine=Mexican"),
		},
		{
			PromoID:  2,
			ImageURL: strPtr("https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=1200"),
			Headline: strPtr("Free delivery on your first pizza order"),
			CTA:      strPtr("Claim offer"),
			Link:     strPtr("/restaurants?cuisine=Italian"),
		},
		{
			PromoID:  3,
			ImageURL: strPtr("https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?w=1200"),
			Headline: strPtr("Fresh picks from new restaurants near you"),
			CTA:      strPtr("Explore"),
			Link:     strPtr("/restaurants"),
		},
	}
}
