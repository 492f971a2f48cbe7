package category

import "testing"

func TestListFillsCuisineLinks(t *testing.T) {
	svc := NewService(NewInMemoryRepository(SeedCategories()))

	items := svc.List(0)
	if len(items) != 8 {
		t.Fatalf("expected 8 cuisine tiles, got %d", len(items))
	}
	for _, it := range items {
		if it.Link == "" {
			t.Fatalf("tile %q has no link", it.CategoryName)
		}
	}
	if items[0].Link != "/restaurants?cuisine=Pizza" {
		t.Fatalf("unexpected link %q", items[0].Link)
	}

	limited := svc.List(3)
	if len(limited) != 3 {
		t.Fatalf("expected 3 tiles with limit, got %d", len(limited))
	}
}
