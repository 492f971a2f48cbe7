package banner

// Service provides the home-page promo rail.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns up to `limit` promos, most prominent first.
func (s *Service) List(limit int) []Promo {
	promos, err := s.repo.List(limit)
	if err != nil {
		return []Promo{}
	}
	return promos
}
