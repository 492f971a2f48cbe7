package checkout

import "errors"

var (
	// ErrEmptyCart rejects submission with zero line items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrAlreadyProcessing rejects a second submit while one is in flight.
	ErrAlreadyProcessing = errors.New("submission already processing")
)

// ValidationError carries the per-field messages of a rejected form.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "delivery form is invalid"
}
