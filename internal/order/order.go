package order

import "github.com/flavorrush/flavorrush-backend/internal/cart"

// Order represents a placed order. Items are a snapshot of the cart at the
// time of submission; the price breakdown is frozen with them.
type Order struct {
	OrderID     int             `json:"orderId"`
	Number      string          `json:"number"`
	UserID      int             `json:"userId"`
	Items       []cart.LineItem `json:"items"`
	Subtotal    float64         `json:"subtotal"`
	DeliveryFee float64         `json:"deliveryFee"`
	Taxes       float64         `json:"taxes"`
	Total       float64         `json:"total"`
	Status      Status          `json:"status"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// Tracking is the order-progress payload rendered by the tracker widget.
type Tracking struct {
	OrderID int            `json:"orderId"`
	Number  string         `json:"number"`
	Status  Status         `json:"status"`
	Steps   []TrackingStep `json:"steps"`
}

type TrackingStep struct {
	Name      Status `json:"name"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

// TrackingFor builds the step list for an order's current status.
func TrackingFor(ord Order) Tracking {
	t := Tracking{OrderID: ord.OrderID, Number: ord.Number, Status: ord.Status}
	current := ord.Status.index()
	for i, step := range Steps {
		t.Steps = append(t.Steps, TrackingStep{
			Name:      step,
			Completed: i < current,
			Current:   i == current,
		})
	}
	return t
}
