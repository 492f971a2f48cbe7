package featured

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/flavorrush/flavorrush-backend/internal/restaurant"
	"github.com/gofiber/fiber/v2"
)

func TestFeaturedRoute(t *testing.T) {
	restRepo := restaurant.NewInMemoryRepository(restaurant.SeedRestaurants())
	svc := NewService(NewRestaurantRepository(restRepo))
	handler := NewHandler(svc)

	app := fiber.New()
	handler.RegisterPublicRoutes(app)

	req := httptest.NewRequest("GET", "/api/v1/restaurants/featured?limit=3", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("featured request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var items []FeaturedItem
	b, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	// ordered by rating descending
	for i := 1; i < len(items); i++ {
		if items[i].Rating != nil && items[i-1].Rating != nil && *items[i].Rating > *items[i-1].Rating {
			t.Fatalf("featured list not sorted by rating: %v then %v", *items[i-1].Rating, *items[i].Rating)
		}
	}

	// offset pages past the first result
	req2 := httptest.NewRequest("GET", "/api/v1/restaurants/featured?limit=3&offset=1", nil)
	res2, _ := app.Test(req2)
	var page2 []FeaturedItem
	b2, _ := io.ReadAll(res2.Body)
	if err := json.Unmarshal(b2, &page2); err != nil {
		t.Fatalf("decode page 2: %v", err)
	}
	if len(page2) == 0 || page2[0].Slug != items[1].Slug {
		t.Fatalf("expected offset to skip first item, got %+v", page2)
	}

	// offset past the end yields an empty list
	req3 := httptest.NewRequest("GET", "/api/v1/restaurants/featured?offset=999", nil)
	res3, _ := app.Test(req3)
	b3, _ := io.ReadAll(res3.Body)
	if string(b3) != "[]" {
		t.Fatalf("expected empty array, got %s", string(b3))
	}
}
