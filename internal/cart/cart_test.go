package cart

import (
	"math"
	"testing"
)

func sampleCart() Cart {
	return Cart{Items: []LineItem{
		{ID: 1, Name: "Spicy Beef Tacos", UnitPrice: 12.99, Quantity: 2},
		{ID: 2, Name: "Guacamole & Chips", UnitPrice: 6.50, Quantity: 1},
		{ID: 3, Name: "Horchata", UnitPrice: 3.00, Quantity: 1},
	}}
}

func TestSubtotalEmptyCart(t *testing.T) {
	var c Cart
	if got := c.Subtotal(); got != 0 {
		t.Fatalf("expected empty cart subtotal 0, got %v", got)
	}
	if !c.IsEmpty() {
		t.Fatalf("expected empty cart to report IsEmpty")
	}
}

func TestComputeTotals(t *testing.T) {
	c := sampleCart()

	if got := c.Subtotal(); math.Abs(got-35.48) > 1e-9 {
		t.Fatalf("expected subtotal 35.48, got %v", got)
	}

	totals := c.ComputeTotals(5.00, 0.08)
	if totals.Subtotal != 35.48 {
		t.Fatalf("expected subtotal 35.48, got %v", totals.Subtotal)
	}
	if totals.DeliveryFee != 5.00 {
		t.Fatalf("expected delivery fee 5.00, got %v", totals.DeliveryFee)
	}
	if totals.Taxes != 2.84 {
		t.Fatalf("expected taxes 2.84, got %v", totals.Taxes)
	}
	if totals.Total != 43.32 {
		t.Fatalf("expected total 43.32, got %v", totals.Total)
	}
}

func TestAddItemMergesQuantity(t *testing.T) {
	var c Cart
	c.AddItem(LineItem{ID: 1, Name: "Tacos", UnitPrice: 12.99, Quantity: 2})
	c.AddItem(LineItem{ID: 1, Name: "Tacos", UnitPrice: 12.99, Quantity: 3})

	if len(c.Items) != 1 {
		t.Fatalf("expected one line item, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", c.Items[0].Quantity)
	}

	// quantities below 1 are clamped to 1 on add
	c.AddItem(LineItem{ID: 2, Name: "Salsa", UnitPrice: 2.00, Quantity: 0})
	if c.Items[1].Quantity != 1 {
		t.Fatalf("expected clamped quantity 1, got %d", c.Items[1].Quantity)
	}
}

func TestSetQuantity(t *testing.T) {
	c := sampleCart()

	c.SetQuantity(1, 4)
	if c.Items[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", c.Items[0].Quantity)
	}

	// quantities below 1 leave the cart untouched
	c.SetQuantity(1, 0)
	if c.Items[0].Quantity != 4 {
		t.Fatalf("expected quantity to stay 4, got %d", c.Items[0].Quantity)
	}
	c.SetQuantity(1, -3)
	if c.Items[0].Quantity != 4 {
		t.Fatalf("expected quantity to stay 4 after negative, got %d", c.Items[0].Quantity)
	}

	// unknown item ids are ignored
	before := len(c.Items)
	c.SetQuantity(99, 2)
	if len(c.Items) != before {
		t.Fatalf("expected unknown id to be a no-op")
	}
}

func TestRemoveIdempotent(t *testing.T) {
	c := sampleCart()

	c.Remove(2)
	if len(c.Items) != 2 {
		t.Fatalf("expected 2 items after remove, got %d", len(c.Items))
	}

	// removing again must not error or change anything
	c.Remove(2)
	if len(c.Items) != 2 {
		t.Fatalf("expected repeat remove to be a no-op, got %d items", len(c.Items))
	}

	c.Remove(1)
	c.Remove(3)
	if !c.IsEmpty() {
		t.Fatalf("expected cart to be empty after removing everything")
	}
}

func TestServiceSetQuantityBelowOneDoesNotWrite(t *testing.T) {
	repo := NewInMemoryRepository(map[int]Cart{7: sampleCart()})
	svc := NewService(repo)

	got, err := svc.SetQuantity(7, 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Items[0].Quantity != 2 {
		t.Fatalf("expected unchanged quantity 2, got %d", got.Items[0].Quantity)
	}
}

func TestRepositoryGetCartReturnsClone(t *testing.T) {
	repo := NewInMemoryRepository(map[int]Cart{7: sampleCart()})

	got, err := repo.GetCart(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Subtotal() != 35.48 {
		t.Fatalf("expected seeded subtotal 35.48, got %v", got.Subtotal())
	}

	// mutating the returned cart must not touch the stored one
	got.SetQuantity(1, 9)
	again, _ := repo.GetCart(7)
	if again.Items[0].Quantity != 2 {
		t.Fatalf("stored cart changed through a returned copy")
	}

	// a user never seen before starts from an empty cart
	fresh, err := repo.GetCart(42)
	if err != nil || !fresh.IsEmpty() {
		t.Fatalf("expected empty cart for new user, got %+v %v", fresh, err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := sampleCart()
	clone := c.Clone()
	clone.SetQuantity(1, 9)

	if c.Items[0].Quantity != 2 {
		t.Fatalf("mutating a clone changed the original cart")
	}
}
