package menu

type Service struct {
	repo Repository
}

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByRestaurant(slug string) ([]Item, error) {
	if slug == "" {
		return nil, ErrNotFound
	}
	return s.repo.ListByRestaurant(slug)
}

func (s *Service) GetByID(id int) (Item, error) {
	if id <= 0 {
		return Item{}, ErrNotFound
	}
	return s.repo.GetByID(id)
}

func (s *Service) ListByIDs(ids []int) ([]Item, error) {
	return s.repo.ListByIDs(ids)
}

func (s *Service) Create(item Item) (Item, error) {
	return s.repo.Create(item)
}
