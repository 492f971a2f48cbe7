package featured

// FeaturedItem is the public DTO returned by the featured-restaurants API.
type FeaturedItem struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	Cuisine      *string  `json:"cuisine,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	DeliveryTime *int     `json:"deliveryTime,omitempty"`
}
