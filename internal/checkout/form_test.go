package checkout

import "testing"

func TestValidateAcceptsBoundaryValues(t *testing.T) {
	form := DeliveryForm{
		Address:       "12 St",
		City:          "NY",
		Zip:           "12345",
		PaymentMethod: "card",
	}
	if errs := Validate(form); len(errs) != 0 {
		t.Fatalf("expected boundary-length form to pass, got %v", errs)
	}
}

func TestValidateCountsRunesNotBytes(t *testing.T) {
	base := DeliveryForm{Zip: "12345", PaymentMethod: "card"}

	// four runes, twelve bytes: must still fail the >=5 rule
	form := base
	form.Address = "東京都渋"
	form.City = "NY"
	errs := Validate(form)
	if errs["address"] != "Street address is required." {
		t.Fatalf("expected 4-rune address to fail, got %v", errs)
	}

	form.Address = "東京都渋谷"
	if errs := Validate(form); len(errs) != 0 {
		t.Fatalf("expected 5-rune address to pass, got %v", errs)
	}

	// a single multibyte rune is still too short for a city
	form.City = "東"
	errs = Validate(form)
	if errs["city"] != "City is required." {
		t.Fatalf("expected 1-rune city to fail, got %v", errs)
	}
}

func TestValidateZipFormats(t *testing.T) {
	base := DeliveryForm{Address: "123 Main St", City: "Springfield", PaymentMethod: "paypal"}

	valid := []string{"12345", "12345-6789"}
	for _, zip := range valid {
		form := base
		form.Zip = zip
		if errs := Validate(form); len(errs) != 0 {
			t.Fatalf("expected zip %q to pass, got %v", zip, errs)
		}
	}

	invalid := []string{"", "1234", "123456", "12345-678", "abcde", "12345-67890"}
	for _, zip := range invalid {
		form := base
		form.Zip = zip
		errs := Validate(form)
		if errs["zip"] != "Must be a valid ZIP code." {
			t.Fatalf("expected zip %q to fail with message, got %v", zip, errs)
		}
	}
}

func TestValidatePaymentMethods(t *testing.T) {
	base := DeliveryForm{Address: "123 Main St", City: "Springfield", Zip: "12345"}

	for _, method := range []string{"card", "paypal", "bank"} {
		form := base
		form.PaymentMethod = method
		if errs := Validate(form); len(errs) != 0 {
			t.Fatalf("expected method %q to pass, got %v", method, errs)
		}
	}

	for _, method := range []string{"", "crypto", "CARD"} {
		form := base
		form.PaymentMethod = method
		errs := Validate(form)
		if errs["paymentMethod"] != "You need to select a payment method." {
			t.Fatalf("expected method %q to fail, got %v", method, errs)
		}
	}
}

func TestValidateReportsAllViolationsAtOnce(t *testing.T) {
	form := DeliveryForm{
		Address:       "A",
		City:          "B",
		Zip:           "abc",
		PaymentMethod: "crypto",
	}
	errs := Validate(form)
	if len(errs) != 4 {
		t.Fatalf("expected 4 violations, got %d: %v", len(errs), errs)
	}
	for _, field := range []string{"address", "city", "zip", "paymentMethod"} {
		if errs[field] == "" {
			t.Fatalf("expected violation for %q, got %v", field, errs)
		}
	}
}
