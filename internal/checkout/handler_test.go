package checkout

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/flavorrush/flavorrush-backend/internal/cart"
	"github.com/flavorrush/flavorrush-backend/internal/order"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithCheckoutHandler(h *Handler) *fiber.App {
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

func TestCheckoutRoute(t *testing.T) {
	o, _, _ := newOrchestrator(map[int]cart.Cart{
		5: stockedCart(),
		6: {},
	}, 0)
	app := makeAppWithCheckoutHandler(NewHandler(o))

	// unauthorized
	req := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}

	// empty cart is a 400 even with a valid form
	validJSON := `{"address":"123 Main St","city":"Springfield","zip":"12345","paymentMethod":"card"}`
	req2 := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(validJSON))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "6")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", res2.StatusCode)
	}

	// invalid form is a 422 with per-field messages
	req3 := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(`{"address":"A","city":"B","zip":"x","paymentMethod":"crypto"}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "5")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for invalid form, got %d", res3.StatusCode)
	}
	var body struct {
		Fields FieldErrors `json:"fields"`
	}
	b3, _ := io.ReadAll(res3.Body)
	if err := json.Unmarshal(b3, &body); err != nil {
		t.Fatalf("decode 422 body: %v", err)
	}
	if len(body.Fields) != 4 {
		t.Fatalf("expected 4 field errors, got %v", body.Fields)
	}

	// valid submission returns the confirmation
	req4 := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(validJSON))
	req4.Header.Set("Content-Type", "application/json")
	req4.Header.Set("X-User-ID", "5")
	res4, err := app.Test(req4)
	if err != nil {
		t.Fatalf("checkout request failed: %v", err)
	}
	if res4.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for valid checkout, got %d", res4.StatusCode)
	}
	var conf Confirmation
	b4, _ := io.ReadAll(res4.Body)
	if err := json.Unmarshal(b4, &conf); err != nil {
		t.Fatalf("decode confirmation: %v", err)
	}
	if !strings.HasPrefix(conf.Number, "#FVRSH-") || conf.Status != order.StatusPlaced {
		t.Fatalf("unexpected confirmation %+v", conf)
	}
	if conf.Totals.Total != 43.32 {
		t.Fatalf("unexpected total %v", conf.Totals.Total)
	}
}
