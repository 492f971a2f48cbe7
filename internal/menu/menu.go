package menu

// Item represents a single dish on a restaurant's menu.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Item struct {
	ID             int     `json:"id"`
	RestaurantSlug string  `json:"restaurantSlug"`
	Category       string  `json:"category"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	ImageURL       string  `json:"imageUrl,omitempty"`
}

// Section groups menu items under a category heading, the shape the detail
// page renders as an accordion.
type Section struct {
	Category string `json:"category"`
	Items    []Item `json:"items"`
}

// GroupByCategory splits items into sections, preserving the order in which
// categories first appear.
func GroupByCategory(items []Item) []Section {
	sections := make([]Section, 0)
	index := map[string]int{}
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(sections)
			index[item.Category] = i
			sections = append(sections, Section{Category: item.Category})
		}
		sections[i].Items = append(sections[i].Items, item)
	}
	return sections
}

// ServiceInterface lets other packages (cart, checkout) depend on menu
// lookups without pulling in the concrete service.
type ServiceInterface interface {
	ListByRestaurant(slug string) ([]Item, error)
	GetByID(id int) (Item, error)
	ListByIDs(ids []int) ([]Item, error)
}
