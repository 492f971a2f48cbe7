package checkout

import (
	"regexp"
	"unicode/utf8"
)

// DeliveryForm carries the delivery and payment fields the customer fills in
// before placing an order.
type DeliveryForm struct {
	Address       string `json:"address"`
	City          string `json:"city"`
	Zip           string `json:"zip"`
	PaymentMethod string `json:"paymentMethod"`
}

// PaymentMethods is the closed set of accepted payment options.
var PaymentMethods = []string{"card", "paypal", "bank"}

// zipPattern accepts 5 digits, optionally followed by a hyphen and 4 more.
var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// FieldErrors maps a field name to a human-readable violation message.
type FieldErrors map[string]string

// Validate checks the form as an atomic unit. Every rule runs, so multiple
// simultaneous failures are each reported. An empty map means the form is
// submittable.
func Validate(form DeliveryForm) FieldErrors {
	errs := FieldErrors{}
	if utf8.RuneCountInString(form.Address) < 5 {
		errs["address"] = "Street address is required."
	}
	if utf8.RuneCountInString(form.City) < 2 {
		errs["city"] = "City is required."
	}
	if !zipPattern.MatchString(form.Zip) {
		errs["zip"] = "Must be a valid ZIP code."
	}
	if !validPaymentMethod(form.PaymentMethod) {
		errs["paymentMethod"] = "You need to select a payment method."
	}
	return errs
}

func validPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if method == m {
			return true
		}
	}
	return false
}
