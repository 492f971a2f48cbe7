package review

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

func makeAppWithReviewHandler(h *Handler) *fiber.App {
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
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app
}

func TestReviewRoutes(t *testing.T) {
	seed := []Review{
		{ReviewID: 1, RestaurantSlug: "taco-fiesta", UserID: 1, Author: "Alex", Rating: 5, Comment: "great"},
		{ReviewID: 2, RestaurantSlug: "taco-fiesta", UserID: 2, Author: "Sam", Rating: 3, Comment: "okay"},
		{ReviewID: 3, RestaurantSlug: "pizza-palace", UserID: 2, Author: "Sam", Rating: 4, Comment: "good"},
	}
	repo := NewInMemoryRepository(seed)
	svc := NewService(repo)
	handler := NewHandler(svc)
	app := makeAppWithReviewHandler(handler)

	// public listing is scoped to the slug
	req := httptest.NewRequest("GET", "/api/v1/restaurant/taco-fiesta/reviews", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var listed []Review
	b, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 reviews for taco-fiesta, got %d", len(listed))
	}

	// summary averages the slug's ratings
	req2 := httptest.NewRequest("GET", "/api/v1/restaurant/taco-fiesta/reviews/summary", nil)
	res2, _ := app.Test(req2)
	var sum Summary
	b2, _ := io.ReadAll(res2.Body)
	if err := json.Unmarshal(b2, &sum); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if sum.Count != 2 || sum.Average != 4 {
		t.Fatalf("expected count=2 average=4, got %+v", sum)
	}

	// posting requires auth
	body := `{"author":"Alex","rating":4,"comment":"solid"}`
	req3 := httptest.NewRequest("POST", "/api/v1/restaurant/taco-fiesta/reviews", strings.NewReader(body))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", res3.StatusCode)
	}

	req4 := httptest.NewRequest("POST", "/api/v1/restaurant/taco-fiesta/reviews", strings.NewReader(body))
	req4.Header.Set("Content-Type", "application/json")
	req4.Header.Set("X-User-ID", "1")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 for create, got %d", res4.StatusCode)
	}

	// rating outside 1..5 is rejected
	for _, bad := range []string{`{"rating":0}`, `{"rating":6}`} {
		reqBad := httptest.NewRequest("POST", "/api/v1/restaurant/taco-fiesta/reviews", strings.NewReader(bad))
		reqBad.Header.Set("Content-Type", "application/json")
		reqBad.Header.Set("X-User-ID", "1")
		resBad, _ := app.Test(reqBad)
		if resBad.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("expected 400 for payload %s, got %d", bad, resBad.StatusCode)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))
	sum, err := svc.Summarize("nowhere")
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	if sum.Count != 0 || sum.Average != 0 {
		t.Fatalf("expected zero summary, got %+v", sum)
	}
}
