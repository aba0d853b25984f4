package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.Product{
			{ID: 1, Title: "Red Shirt", Price: 10, Category: "a"},
			{ID: 2, Title: "Blue Hat", Price: 5.5, Category: "b"},
		})
	})
	mux.HandleFunc("GET /products/categories", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]string{"a", "b"})
	})
	mux.HandleFunc("GET /products/category/a", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.Product{{ID: 1, Title: "Red Shirt", Category: "a"}})
	})
	mux.HandleFunc("GET /products/1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.Product{ID: 1, Title: "Red Shirt", Price: 10, Category: "a"})
	})
	mux.HandleFunc("GET /products/99", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("POST /products", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(domain.Product{ID: 21, Title: req["title"].(string)})
	})
	mux.HandleFunc("PUT /products/1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.Product{ID: 1, Title: "Renamed"})
	})
	mux.HandleFunc("DELETE /products/1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.Product{ID: 1})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_List(t *testing.T) {
	srv := testServer(t)
	c := NewClient(srv.URL, 0, zerolog.Nop())

	products, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 2 || products[0].Title != "Red Shirt" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestClient_ListCategories(t *testing.T) {
	srv := testServer(t)
	c := NewClient(srv.URL, 0, zerolog.Nop())

	categories, err := c.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("categories failed: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("unexpected categories: %v", categories)
	}
}

func TestClient_ListByCategory(t *testing.T) {
	srv := testServer(t)
	c := NewClient(srv.URL, 0, zerolog.Nop())

	products, err := c.ListByCategory(context.Background(), "a")
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if len(products) != 1 || products[0].Category != "a" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestClient_Get(t *testing.T) {
	srv := testServer(t)
	c := NewClient(srv.URL, 0, zerolog.Nop())

	p, err := c.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if p.ID != 1 || p.Price != 10 {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestClient_Get_NotFound(t *testing.T) {
	srv := testServer(t)
	c := NewClient(srv.URL, 0, zerolog.Nop())

	if _, err := c.Get(context.Background(), 99); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestClient_CreateUpdateDelete(t *testing.T) {
	srv := testServer(t)
	c := NewClient(srv.URL, 0, zerolog.Nop())
	ctx := context.Background()

	created, err := c.Create(ctx, ports.ProductInput{Title: "Green Scarf", Price: 3})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 21 || created.Title != "Green Scarf" {
		t.Fatalf("unexpected created product: %+v", created)
	}

	updated, err := c.Update(ctx, 1, ports.ProductInput{Title: "Renamed"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Fatalf("unexpected updated product: %+v", updated)
	}

	if err := c.Delete(ctx, 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}
