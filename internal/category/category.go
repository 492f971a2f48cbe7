package category

// CategoryItem is a cuisine tile on the home page. Link is derived from the
// name and points at the pre-filtered listing page.
// JSON tags follow the camelCase convention used elsewhere in the project.
type CategoryItem struct {
	CategoryID   int     `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	CategoryImg  *string `json:"categoryImg,omitempty"`
	Link         string  `json:"link,omitempty"`
}
