package cart

// Service orchestrates cart operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetCart(userID int) (Cart, error) {
	if userID <= 0 {
		return Cart{}, ErrNotFound
	}
	return s.repo.GetCart(userID)
}

func (s *Service) AddItem(userID int, item LineItem) (Cart, error) {
	if userID <= 0 || item.ID <= 0 {
		return Cart{}, ErrNotFound
	}
	return s.repo.AddItem(userID, item)
}

// SetQuantity replaces an item's quantity. Quantities below 1 leave the cart
// untouched, so we just return the current cart without a write.
func (s *Service) SetQuantity(userID int, itemID int, quantity int) (Cart, error) {
	if userID <= 0 || itemID <= 0 {
		return Cart{}, ErrNotFound
	}
	if quantity < 1 {
		return s.repo.GetCart(userID)
	}
	return s.repo.SetQuantity(userID, itemID, quantity)
}

func (s *Service) RemoveItem(userID int, itemID int) (Cart, error) {
	if userID <= 0 || itemID <= 0 {
		return Cart{}, ErrNotFound
	}
	return s.repo.RemoveItem(userID, itemID)
}

// ClearCart empties a user's cart and returns an error if something goes wrong.
func (s *Service) ClearCart(userID int) error {
	if userID <= 0 {
		return ErrNotFound
	}
	return s.repo.ClearCart(userID)
}

// Totals computes the price breakdown of the user's current cart.
func (s *Service) Totals(userID int, deliveryFee, taxRate float64) (Totals, error) {
	c, err := s.GetCart(userID)
	if err != nil {
		return Totals{}, err
	}
	return c.ComputeTotals(deliveryFee, taxRate), nil
}
