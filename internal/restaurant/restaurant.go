package restaurant

// Restaurant represents a storefront restaurant card and detail header.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Restaurant struct {
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	Cuisine      string  `json:"cuisine"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"reviewCount,omitempty"`
	DeliveryTime int     `json:"deliveryTime"` // minutes
	Address      string  `json:"address,omitempty"`
}

// Cuisines contains the cuisine tags used across the app.
var Cuisines = []string{
	"Mexican",
	"Tex-Mex",
	"Italian",
	"Japanese",
	"American",
	"Vegan",
	"Fast Food",
	"Latin",
}

// Filter narrows and orders a restaurant listing. Zero values mean "no
// constraint". Sort is one of "rating", "delivery", "a-z".
type Filter struct {
	Cuisines        []string
	Query           string
	MaxDeliveryTime int
	Sort            string
}
