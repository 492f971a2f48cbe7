package featured

// Service provides business logic for the featured carousel.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns up to `limit` featured restaurants starting at `offset`.
func (s *Service) List(limit, offset int) []FeaturedItem {
	items, err := s.repo.List(limit, offset)
	if err != nil {
		return []FeaturedItem{}
	}
	return items
}
