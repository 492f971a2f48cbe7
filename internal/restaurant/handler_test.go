package restaurant

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithRestaurantHandler(h *Handler) *fiber.App {
	app := fiber.New()
	h.RegisterPublicRoutes(app)
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

func TestRestaurantListRoute(t *testing.T) {
	app := makeAppWithRestaurantHandler(NewHandler(newTestService()))

	req := httptest.NewRequest("GET", "/api/v1/restaurants", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var out []Restaurant
	b, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(out) != 8 {
		t.Fatalf("expected 8 restaurants, got %d", len(out))
	}

	// filters arrive through query params
	req2 := httptest.NewRequest("GET", "/api/v1/restaurants?cuisine=Mexican,Tex-Mex&maxDeliveryTime=30&sort=delivery", nil)
	res2, _ := app.Test(req2)
	var filtered []Restaurant
	b2, _ := io.ReadAll(res2.Body)
	if err := json.Unmarshal(b2, &filtered); err != nil {
		t.Fatalf("decode filtered list: %v", err)
	}
	if len(filtered) != 3 {
		t.Fatalf("expected 3 filtered restaurants, got %d", len(filtered))
	}
	for i := 1; i < len(filtered); i++ {
		if filtered[i-1].DeliveryTime > filtered[i].DeliveryTime {
			t.Fatalf("not sorted by delivery time: %+v", filtered)
		}
	}

	req3 := httptest.NewRequest("GET", "/api/v1/restaurants?q=sushi", nil)
	res3, _ := app.Test(req3)
	var byQuery []Restaurant
	b3, _ := io.ReadAll(res3.Body)
	if err := json.Unmarshal(b3, &byQuery); err != nil {
		t.Fatalf("decode query list: %v", err)
	}
	if len(byQuery) != 1 || byQuery[0].Slug != "sushi-zen" {
		t.Fatalf("unexpected query result %+v", byQuery)
	}
}

func TestRestaurantDetailRoute(t *testing.T) {
	app := makeAppWithRestaurantHandler(NewHandler(newTestService()))

	req := httptest.NewRequest("GET", "/api/v1/restaurant/taco-fiesta", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var rest Restaurant
	b, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &rest); err != nil {
		t.Fatalf("decode restaurant: %v", err)
	}
	if rest.Name != "Taco Fiesta" || rest.ReviewCount != 250 {
		t.Fatalf("unexpected restaurant %+v", rest)
	}

	req2 := httptest.NewRequest("GET", "/api/v1/restaurant/no-such-slug", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res2.StatusCode)
	}
}

func TestRestaurantAdminRoutes(t *testing.T) {
	app := makeAppWithRestaurantHandler(NewHandler(newTestService()))

	body := `{"name":"Pho & Co.","cuisine":"Vietnamese","rating":4.1,"deliveryTime":30}`
	req := httptest.NewRequest("POST", "/api/v1/restaurants", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "1")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	var created Restaurant
	b, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.Slug != "pho-and-co" {
		t.Fatalf("expected derived slug, got %q", created.Slug)
	}

	// duplicate slug conflicts
	dup := `{"slug":"taco-fiesta","name":"Taco Fiesta"}`
	req2 := httptest.NewRequest("POST", "/api/v1/restaurants", strings.NewReader(dup))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "1")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", res2.StatusCode)
	}

	// missing name is rejected
	req3 := httptest.NewRequest("POST", "/api/v1/restaurants", strings.NewReader(`{"cuisine":"Thai"}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "1")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res3.StatusCode)
	}

	req4 := httptest.NewRequest("DELETE", "/api/v1/restaurant/pho-and-co", nil)
	req4.Header.Set("X-User-ID", "1")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", res4.StatusCode)
	}
	res5, _ := app.Test(httptest.NewRequest("GET", "/api/v1/restaurant/pho-and-co", nil))
	if res5.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", res5.StatusCode)
	}
}
