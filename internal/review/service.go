package review

import (
	"errors"
	"time"
)

var (
	ErrRatingRange = errors.New("rating must be between 1 and 5")
)

// Service provides business logic for restaurant reviews.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) ListBySlug(slug string) ([]Review, error) {
	if slug == "" {
		return nil, ErrNotFound
	}
	return s.repo.ListBySlug(slug)
}

func (s *Service) Create(rev Review) (Review, error) {
	if rev.RestaurantSlug == "" || rev.UserID <= 0 {
		return Review{}, ErrNotFound
	}
	if rev.Rating < 1 || rev.Rating > 5 {
		return Review{}, ErrRatingRange
	}
	if rev.CreatedAt == "" {
		rev.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return s.repo.Create(rev)
}

// Summarize computes the average rating for a restaurant. An unrated
// restaurant reports a zero average.
func (s *Service) Summarize(slug string) (Summary, error) {
	reviews, err := s.repo.ListBySlug(slug)
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{RestaurantSlug: slug, Count: len(reviews)}
	if len(reviews) == 0 {
		return sum, nil
	}
	total := 0
	for _, rev := range reviews {
		total += rev.Rating
	}
	sum.Average = float64(total) / float64(len(reviews))
	return sum, nil
}
