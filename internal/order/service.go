package order

import (
	"errors"
	"time"
)

var (
	// ErrInvalidTransition is returned when a status change is not a single
	// forward step.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrAlreadyDelivered is returned when advancing a terminal order.
	ErrAlreadyDelivered = errors.New("order already delivered")
)

// Service provides business logic for orders.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) Create(ord Order) (Order, error) {
	if ord.UserID <= 0 {
		return Order{}, errors.New("invalid user")
	}
	if len(ord.Items) == 0 {
		return Order{}, errors.New("empty order")
	}
	if !ord.Status.IsValid() {
		ord.Status = StatusPlaced
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if ord.CreatedAt == "" {
		ord.CreatedAt = now
	}
	ord.UpdatedAt = now
	return s.repo.Create(ord)
}

func (s *Service) GetByID(orderID int) (Order, error) {
	if orderID <= 0 {
		return Order{}, ErrNotFound
	}
	return s.repo.GetByID(orderID)
}

func (s *Service) ListByUser(userID int) ([]Order, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.ListByUser(userID)
}

// Advance moves the order to the next delivery step. Delivered orders stay
// delivered; there is no backward transition.
func (s *Service) Advance(orderID int) (Order, error) {
	ord, err := s.GetByID(orderID)
	if err != nil {
		return Order{}, err
	}

	next, ok := ord.Status.Next()
	if !ok {
		if ord.Status.IsFinal() {
			return Order{}, ErrAlreadyDelivered
		}
		return Order{}, ErrInvalidTransition
	}

	return s.repo.UpdateStatus(orderID, next, time.Now().UTC().Format(time.RFC3339))
}
