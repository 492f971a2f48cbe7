package order

import "testing"

func TestStatusProgression(t *testing.T) {
	cases := []struct {
		from Status
		next Status
		ok   bool
	}{
		{StatusPlaced, StatusInKitchen, true},
		{StatusInKitchen, StatusOutForDelivery, true},
		{StatusOutForDelivery, StatusDelivered, true},
		{StatusDelivered, StatusDelivered, false},
		{Status("Cancelled"), Status("Cancelled"), false},
	}
	for _, tc := range cases {
		got, ok := tc.from.Next()
		if ok != tc.ok || got != tc.next {
			t.Fatalf("Next(%q) = %q, %v; want %q, %v", tc.from, got, ok, tc.next, tc.ok)
		}
	}
}

func TestStatusCanTransitionTo(t *testing.T) {
	if !StatusPlaced.CanTransitionTo(StatusInKitchen) {
		t.Fatalf("expected Placed → InKitchen to be allowed")
	}
	if StatusPlaced.CanTransitionTo(StatusOutForDelivery) {
		t.Fatalf("skipping a step must not be allowed")
	}
	if StatusInKitchen.CanTransitionTo(StatusPlaced) {
		t.Fatalf("backward transition must not be allowed")
	}
	if StatusDelivered.CanTransitionTo(StatusPlaced) {
		t.Fatalf("terminal status must not transition")
	}
}

func TestStatusIsFinalAndValid(t *testing.T) {
	for _, s := range Steps {
		if !s.IsValid() {
			t.Fatalf("step %q should be valid", s)
		}
	}
	if !StatusDelivered.IsFinal() {
		t.Fatalf("Delivered should be final")
	}
	if StatusPlaced.IsFinal() || StatusInKitchen.IsFinal() || StatusOutForDelivery.IsFinal() {
		t.Fatalf("only Delivered is final")
	}
	if Status("Refunded").IsValid() {
		t.Fatalf("unknown status should be invalid")
	}
}
