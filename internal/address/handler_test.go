package address

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithAddressHandler(a *Handler) *fiber.App {
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
	a.RegisterProtectedRoutes(app)
	return app
}

func TestAddressRoute(t *testing.T) {
	seed := map[int][]Address{
		42: {{AddressID: 1, UserID: 42, Label: "Home", Line: "123 Main St", City: "Springfield", Zip: "12345", IsDefault: true}},
	}
	repo := NewInMemoryRepository(seed)
	svc := NewService(repo)
	handler := NewHandler(svc)
	app := makeAppWithAddressHandler(handler)

	// route exists
	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Path] = true
		}
	}
	if !routes["/api/v1/address"] {
		t.Fatalf("expected /api/v1/address registered")
	}

	// unauthorized
	req := httptest.NewRequest("GET", "/api/v1/address", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}

	// authorized GET returns existing
	req2 := httptest.NewRequest("GET", "/api/v1/address", nil)
	req2.Header.Set("X-User-ID", "42")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	b, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b), "123 Main St") {
		t.Fatalf("unexpected body: %s", string(b))
	}

	// POST new address
	req3 := httptest.NewRequest("POST", "/api/v1/address", strings.NewReader(`{"label":"Work","line":"9 Office Park","city":"Springfield","zip":"12345"}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "42")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 for add, got %d", res3.StatusCode)
	}
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), "9 Office Park") {
		t.Fatalf("add response unexpected: %s", string(b3))
	}

	// missing line is rejected
	reqBad := httptest.NewRequest("POST", "/api/v1/address", strings.NewReader(`{"label":"Work","city":"Springfield"}`))
	reqBad.Header.Set("Content-Type", "application/json")
	reqBad.Header.Set("X-User-ID", "42")
	resBad, _ := app.Test(reqBad)
	if resBad.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing line, got %d", resBad.StatusCode)
	}

	// update with patch
	req4 := httptest.NewRequest("PATCH", "/api/v1/address", strings.NewReader(`{"addressId":2,"label":"Work","line":"10 Office Park","city":"Springfield","zip":"12345"}`))
	req4.Header.Set("Content-Type", "application/json")
	req4.Header.Set("X-User-ID", "42")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for patch, got %d", res4.StatusCode)
	}
	b4, _ := io.ReadAll(res4.Body)
	if !strings.Contains(string(b4), "10 Office Park") {
		t.Fatalf("patch response unexpected: %s", string(b4))
	}

	// mark the second address as default
	req5 := httptest.NewRequest("POST", "/api/v1/address/default", strings.NewReader(`{"addressId":2}`))
	req5.Header.Set("Content-Type", "application/json")
	req5.Header.Set("X-User-ID", "42")
	res5, _ := app.Test(req5)
	if res5.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for set-default, got %d", res5.StatusCode)
	}
	b5, _ := io.ReadAll(res5.Body)
	if !strings.Contains(string(b5), `"isDefault":true`) {
		t.Fatalf("set-default response unexpected: %s", string(b5))
	}

	// the previous default was cleared
	req6 := httptest.NewRequest("GET", "/api/v1/address", nil)
	req6.Header.Set("X-User-ID", "42")
	res6, _ := app.Test(req6)
	b6, _ := io.ReadAll(res6.Body)
	if strings.Count(string(b6), `"isDefault":true`) != 1 {
		t.Fatalf("expected exactly one default address, got %s", string(b6))
	}

	// delete the newly added address
	req7 := httptest.NewRequest("DELETE", "/api/v1/address", strings.NewReader(`{"addressId":2}`))
	req7.Header.Set("Content-Type", "application/json")
	req7.Header.Set("X-User-ID", "42")
	res7, _ := app.Test(req7)
	if res7.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for delete, got %d", res7.StatusCode)
	}
	// confirm gone by GET
	req8 := httptest.NewRequest("GET", "/api/v1/address", nil)
	req8.Header.Set("X-User-ID", "42")
	res8, _ := app.Test(req8)
	b8, _ := io.ReadAll(res8.Body)
	if strings.Contains(string(b8), "Office Park") {
		t.Fatalf("delete did not remove entry: %s", string(b8))
	}
}
