package address

import (
	"errors"
	"time"
)

// Service orchestrates delivery address bookkeeping.

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetAddresses(userID int) ([]Address, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.GetAddresses(userID)
}

func (s *Service) AddAddress(userID int, label, line, city, zip string) (Address, error) {
	if userID <= 0 {
		return Address{}, ErrNotFound
	}
	if line == "" || city == "" {
		return Address{}, errors.New("line and city required")
	}
	now := time.Now().UTC().Format(time.RFC3339)
	return s.repo.AddAddress(Address{
		UserID:    userID,
		Label:     label,
		Line:      line,
		City:      city,
		Zip:       zip,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *Service) UpdateAddress(userID, addressID int, label, line, city, zip string) (Address, error) {
	if userID <= 0 || addressID <= 0 {
		return Address{}, ErrNotFound
	}
	if line == "" || city == "" {
		return Address{}, errors.New("line and city required")
	}
	return s.repo.UpdateAddress(Address{
		AddressID: addressID,
		UserID:    userID,
		Label:     label,
		Line:      line,
		City:      city,
		Zip:       zip,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) DeleteAddress(userID, addressID int) error {
	if userID <= 0 || addressID <= 0 {
		return ErrNotFound
	}
	return s.repo.DeleteAddress(userID, addressID)
}

func (s *Service) SetDefault(userID, addressID int) (Address, error) {
	if userID <= 0 || addressID <= 0 {
		return Address{}, ErrNotFound
	}
	return s.repo.SetDefault(userID, addressID)
}
