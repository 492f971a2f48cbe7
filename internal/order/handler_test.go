package order

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/flavorrush/flavorrush-backend/internal/cart"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithOrderHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{"user_id": id}
				tok := &jwt.Token{Claims: claims}
				c.Locals("user", tok)
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func seedOrders() []Order {
	items := []cart.LineItem{{ID: 1, Name: "Spicy Beef Tacos", UnitPrice: 12.99, Quantity: 2}}
	return []Order{
		{OrderID: 1, Number: "#FVRSH-AAAAAA", UserID: 7, Items: items, Subtotal: 25.98, DeliveryFee: 5.00, Taxes: 2.08, Total: 33.06, Status: StatusPlaced},
		{OrderID: 2, Number: "#FVRSH-BBBBBB", UserID: 7, Items: items, Subtotal: 25.98, DeliveryFee: 5.00, Taxes: 2.08, Total: 33.06, Status: StatusDelivered},
		{OrderID: 3, Number: "#FVRSH-CCCCCC", UserID: 9, Items: items, Subtotal: 25.98, DeliveryFee: 5.00, Taxes: 2.08, Total: 33.06, Status: StatusPlaced},
	}
}

func TestOrderRoutes(t *testing.T) {
	h := NewHandler(NewService(NewInMemoryRepository(seedOrders())))
	app := makeAppWithOrderHandler(h)

	req := httptest.NewRequest("GET", "/api/v1/orders", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("GET", "/api/v1/orders", nil)
	req2.Header.Set("X-User-ID", "7")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	var orders []Order
	b2, _ := io.ReadAll(res2.Body)
	if err := json.Unmarshal(b2, &orders); err != nil {
		t.Fatalf("decode orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders for user 7, got %d", len(orders))
	}

	req3 := httptest.NewRequest("GET", "/api/v1/orders/1", nil)
	req3.Header.Set("X-User-ID", "7")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for own order, got %d", res3.StatusCode)
	}
	var ord Order
	b3, _ := io.ReadAll(res3.Body)
	if err := json.Unmarshal(b3, &ord); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if ord.Number != "#FVRSH-AAAAAA" {
		t.Fatalf("unexpected order %+v", ord)
	}
}

func TestOrderOwnership(t *testing.T) {
	h := NewHandler(NewService(NewInMemoryRepository(seedOrders())))
	app := makeAppWithOrderHandler(h)

	// order 3 belongs to user 9, so user 7 sees a 404 rather than a 403
	req := httptest.NewRequest("GET", "/api/v1/orders/3", nil)
	req.Header.Set("X-User-ID", "7")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for another user's order, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("GET", "/api/v1/orders/99", nil)
	req2.Header.Set("X-User-ID", "7")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown order, got %d", res2.StatusCode)
	}
}

func TestOrderTrackingRoute(t *testing.T) {
	h := NewHandler(NewService(NewInMemoryRepository(seedOrders())))
	app := makeAppWithOrderHandler(h)

	req := httptest.NewRequest("GET", "/api/v1/orders/1/tracking", nil)
	req.Header.Set("X-User-ID", "7")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var tr Tracking
	b, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &tr); err != nil {
		t.Fatalf("decode tracking: %v", err)
	}
	if len(tr.Steps) != len(Steps) {
		t.Fatalf("expected %d steps, got %d", len(Steps), len(tr.Steps))
	}
	if !tr.Steps[0].Current || tr.Steps[0].Completed {
		t.Fatalf("placed order should sit on the first step: %+v", tr.Steps[0])
	}
	for _, step := range tr.Steps[1:] {
		if step.Current || step.Completed {
			t.Fatalf("later steps should be pending: %+v", step)
		}
	}
}

func TestOrderAdvanceRoute(t *testing.T) {
	svc := NewService(NewInMemoryRepository(seedOrders()))
	app := makeAppWithOrderHandler(NewHandler(svc))

	// walk order 1 all the way forward
	want := []Status{StatusInKitchen, StatusOutForDelivery, StatusDelivered}
	for _, expected := range want {
		req := httptest.NewRequest("POST", "/api/v1/orders/1/advance", nil)
		req.Header.Set("X-User-ID", "7")
		res, _ := app.Test(req)
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200 advancing to %q, got %d", expected, res.StatusCode)
		}
		var ord Order
		b, _ := io.ReadAll(res.Body)
		if err := json.Unmarshal(b, &ord); err != nil {
			t.Fatalf("decode order: %v", err)
		}
		if ord.Status != expected {
			t.Fatalf("expected status %q, got %q", expected, ord.Status)
		}
	}

	// one more advance past Delivered conflicts
	req := httptest.NewRequest("POST", "/api/v1/orders/1/advance", nil)
	req.Header.Set("X-User-ID", "7")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 past Delivered, got %d", res.StatusCode)
	}

	// advancing another user's order is a 404 before any state change
	req2 := httptest.NewRequest("POST", "/api/v1/orders/3/advance", nil)
	req2.Header.Set("X-User-ID", "7")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for another user's order, got %d", res2.StatusCode)
	}
	ord, err := svc.GetByID(3)
	if err != nil || ord.Status != StatusPlaced {
		t.Fatalf("foreign order must stay untouched: %+v %v", ord, err)
	}
}
