package category

import "net/url"

// Service provides the cuisine tiles for the home page.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns up to `limit` cuisine tiles with their listing-page links
// filled in.
func (s *Service) List(limit int) []CategoryItem {
	items, err := s.repo.List(limit)
	if err != nil {
		return []CategoryItem{}
	}
	for i := range items {
		if items[i].Link == "" {
			items[i].Link = "/restaurants?cuisine=" + url.QueryEscape(items[i].CategoryName)
		}
	}
	return items
}
