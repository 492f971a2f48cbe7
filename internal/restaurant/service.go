package restaurant

import (
	"sort"
	"strings"
)

// Service provides listing, filtering and sorting on top of the repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns restaurants matching the filter, ordered per its Sort field.
func (s *Service) List(f Filter) []Restaurant {
	all := s.repo.List()

	out := make([]Restaurant, 0, len(all))
	for _, r := range all {
		if !matches(r, f) {
			continue
		}
		out = append(out, r)
	}

	switch f.Sort {
	case "delivery":
		sort.SliceStable(out, func(i, j int) bool { return out[i].DeliveryTime < out[j].DeliveryTime })
	case "a-z":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	default: // rating
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}

func (s *Service) GetBySlug(slug string) (Restaurant, error) {
	if slug == "" {
		return Restaurant{}, ErrNotFound
	}
	return s.repo.GetBySlug(slug)
}

func (s *Service) Create(r Restaurant) (Restaurant, error) {
	if r.Slug == "" {
		r.Slug = slugify(r.Name)
	}
	return s.repo.Create(r)
}

func (s *Service) Update(slug string, r Restaurant) (Restaurant, error) {
	return s.repo.Update(slug, r)
}

func (s *Service) Delete(slug string) error {
	return s.repo.Delete(slug)
}

func matches(r Restaurant, f Filter) bool {
	if len(f.Cuisines) > 0 {
		found := false
		for _, c := range f.Cuisines {
			if strings.EqualFold(r.Cuisine, c) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(r.Name), q) && !strings.Contains(strings.ToLower(r.Cuisine), q) {
			return false
		}
	}
	if f.MaxDeliveryTime > 0 && r.DeliveryTime > f.MaxDeliveryTime {
		return false
	}
	return true
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "&", "and")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
	return strings.Join(fields, "-")
}
