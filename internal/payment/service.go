package payment

import (
	"errors"
	"regexp"
	"time"
)

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

// Service validates and stores payment methods.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetMethods(userID int) ([]Method, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.GetMethods(userID)
}

func (s *Service) AddMethod(userID int, brand, last4, expiry string) (Method, error) {
	if userID <= 0 {
		return Method{}, ErrNotFound
	}
	if brand == "" {
		return Method{}, errors.New("brand required")
	}
	if len(last4) != 4 {
		return Method{}, errors.New("last4 must be exactly 4 digits")
	}
	for _, r := range last4 {
		if r < '0' || r > '9' {
			return Method{}, errors.New("last4 must be exactly 4 digits")
		}
	}
	if !expiryPattern.MatchString(expiry) {
		return Method{}, errors.New("expiry must be MM/YY")
	}
	return s.repo.AddMethod(Method{
		UserID:    userID,
		Brand:     brand,
		Last4:     last4,
		Expiry:    expiry,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) RemoveMethod(userID, methodID int) error {
	if userID <= 0 || methodID <= 0 {
		return ErrNotFound
	}
	return s.repo.RemoveMethod(userID, methodID)
}
