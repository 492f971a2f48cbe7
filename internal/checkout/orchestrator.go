package checkout

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flavorrush/flavorrush-backend/internal/cart"
	"github.com/flavorrush/flavorrush-backend/internal/order"
)

// Confirmation is returned once a submission completes. Totals are the
// breakdown computed at the time of submission.
type Confirmation struct {
	OrderID  int          `json:"orderId"`
	Number   string       `json:"number"`
	Totals   cart.Totals  `json:"totals"`
	Status   order.Status `json:"status"`
	PlacedAt string       `json:"placedAt"`
}

// Orchestrator gates order submission. Per user, at most one submission may
// be in flight: idle → processing → completed, with rejected submissions
// (empty cart, invalid form) returning to idle immediately.
type Orchestrator struct {
	carts  *cart.Service
	orders *order.Service

	deliveryFee float64
	taxRate     float64
	delay       time.Duration

	mu       sync.Mutex
	inflight map[int]bool
}

func NewOrchestrator(carts *cart.Service, orders *order.Service, deliveryFee, taxRate float64, delay time.Duration) *Orchestrator {
	return &Orchestrator{
		carts:       carts,
		orders:      orders,
		deliveryFee: deliveryFee,
		taxRate:     taxRate,
		delay:       delay,
		inflight:    make(map[int]bool),
	}
}

// Processing reports whether a submission is currently in flight for the user.
func (o *Orchestrator) Processing(userID int) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.inflight[userID]
}

// Submit places the order. The empty-cart check runs before validation, and
// both run before the processing state is entered, so rejected submissions
// never block a retry. The simulated latency honors ctx so a caller can
// abandon the wait.
func (o *Orchestrator) Submit(ctx context.Context, userID int, form DeliveryForm) (Confirmation, error) {
	current, err := o.carts.GetCart(userID)
	if err != nil {
		return Confirmation{}, err
	}
	if current.IsEmpty() {
		return Confirmation{}, ErrEmptyCart
	}

	if fieldErrs := Validate(form); len(fieldErrs) > 0 {
		return Confirmation{}, &ValidationError{Fields: fieldErrs}
	}

	if err := o.acquire(userID); err != nil {
		return Confirmation{}, err
	}
	defer o.release(userID)

	// simulated submission latency
	timer := time.NewTimer(o.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return Confirmation{}, ctx.Err()
	case <-timer.C:
	}

	totals := current.ComputeTotals(o.deliveryFee, o.taxRate)
	number := orderNumber()
	placedAt := time.Now().UTC().Format(time.RFC3339)

	created, err := o.orders.Create(order.Order{
		Number:      number,
		UserID:      userID,
		Items:       current.Items,
		Subtotal:    totals.Subtotal,
		DeliveryFee: totals.DeliveryFee,
		Taxes:       totals.Taxes,
		Total:       totals.Total,
		Status:      order.StatusPlaced,
		CreatedAt:   placedAt,
	})
	if err != nil {
		return Confirmation{}, err
	}

	// the session cart is done once the order exists
	if err := o.carts.ClearCart(userID); err != nil {
		return Confirmation{}, err
	}

	return Confirmation{
		OrderID:  created.OrderID,
		Number:   created.Number,
		Totals:   totals,
		Status:   created.Status,
		PlacedAt: placedAt,
	}, nil
}

func (o *Orchestrator) acquire(userID int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.inflight[userID] {
		return ErrAlreadyProcessing
	}
	o.inflight[userID] = true
	return nil
}

func (o *Orchestrator) release(userID int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.inflight, userID)
}

// orderNumber builds a display identifier like #FVRSH-8D41F2.
func orderNumber() string {
	id := uuid.New().String()
	return "#FVRSH-" + strings.ToUpper(id[:6])
}
