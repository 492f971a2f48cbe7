package menu

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeAppWithMenuHandler(h *Handler) *fiber.App {
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app
}

func TestMenuRoute(t *testing.T) {
	h := NewHandler(NewService(NewInMemoryRepository(SeedItems())))
	app := makeAppWithMenuHandler(h)

	req := httptest.NewRequest("GET", "/api/v1/restaurant/taco-fiesta/menu", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("menu request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var sections []Section
	b, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &sections); err != nil {
		t.Fatalf("decode sections: %v", err)
	}
	if len(sections) != 3 || sections[0].Category != "Appetizers" {
		t.Fatalf("unexpected sections %+v", sections)
	}

	// unknown restaurant yields an empty menu, not a 404
	req2 := httptest.NewRequest("GET", "/api/v1/restaurant/no-such-place/menu", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for unknown slug, got %d", res2.StatusCode)
	}
	var empty []Section
	b2, _ := io.ReadAll(res2.Body)
	if err := json.Unmarshal(b2, &empty); err != nil {
		t.Fatalf("decode empty menu: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty menu, got %+v", empty)
	}
}

func TestMenuItemRoute(t *testing.T) {
	h := NewHandler(NewService(NewInMemoryRepository(SeedItems())))
	app := makeAppWithMenuHandler(h)

	req := httptest.NewRequest("GET", "/api/v1/menu/3", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var item Item
	b, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &item); err != nil {
		t.Fatalf("decode item: %v", err)
	}
	if item.Name != "Carne Asada Tacos" || item.Price != 12.99 {
		t.Fatalf("unexpected item %+v", item)
	}

	req2 := httptest.NewRequest("GET", "/api/v1/menu/999", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res2.StatusCode)
	}
}

func TestCreateMenuItemRoute(t *testing.T) {
	h := NewHandler(NewService(NewInMemoryRepository(SeedItems())))
	app := makeAppWithMenuHandler(h)

	body := `{"restaurantSlug":"taco-fiesta","category":"Drinks","name":"Horchata","price":3.00}`
	req := httptest.NewRequest("POST", "/api/v1/menu", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	var created Item
	b, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &created); err != nil {
		t.Fatalf("decode created item: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id, got %+v", created)
	}

	req2 := httptest.NewRequest("POST", "/api/v1/menu", strings.NewReader(`{"category":"Drinks"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", res2.StatusCode)
	}

	req3 := httptest.NewRequest("POST", "/api/v1/menu", strings.NewReader(`{"restaurantSlug":"taco-fiesta","name":"Free Lunch","price":-1}`))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for negative price, got %d", res3.StatusCode)
	}
}
