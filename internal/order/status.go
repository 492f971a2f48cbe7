package order

// Status represents the delivery progress of an order. Progression is strictly
// forward: Placed → InKitchen → OutForDelivery → Delivered, with no backward
// transition or cancellation state.
type Status string

const (
	// StatusPlaced indicates the order has been accepted.
	StatusPlaced Status = "Order Placed"
	// StatusInKitchen indicates the restaurant is preparing the food.
	StatusInKitchen Status = "In the Kitchen"
	// StatusOutForDelivery indicates a courier is on the way.
	StatusOutForDelivery Status = "Out for Delivery"
	// StatusDelivered indicates the order reached the customer.
	StatusDelivered Status = "Delivered"
)

// Steps lists every status in progression order.
var Steps = []Status{StatusPlaced, StatusInKitchen, StatusOutForDelivery, StatusDelivered}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is one of the four known statuses.
func (s Status) IsValid() bool {
	return s.index() >= 0
}

// IsFinal reports whether s is the terminal status.
func (s Status) IsFinal() bool {
	return s == StatusDelivered
}

// Next returns the status that follows s. The second return value is false
// when s is terminal or unknown.
func (s Status) Next() (Status, bool) {
	i := s.index()
	if i < 0 || i == len(Steps)-1 {
		return s, false
	}
	return Steps[i+1], true
}

// CanTransitionTo reports whether moving from s to target is a single forward
// step.
func (s Status) CanTransitionTo(target Status) bool {
	next, ok := s.Next()
	return ok && next == target
}

func (s Status) index() int {
	for i, step := range Steps {
		if step == s {
			return i
		}
	}
	return -1
}
