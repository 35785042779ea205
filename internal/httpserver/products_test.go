package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/talipby/koroglu-site/internal/domain"
)

func TestListProductsAll(t *testing.T) {
	env := newTestEnv(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp productListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 4 {
		t.Fatalf("expected 4 products, got %d", resp.Total)
	}
}

func TestListProductsFiltered(t *testing.T) {
	env := newTestEnv(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?q=badem&category=Kuruyemi%C5%9F", nil)
	env.router.ServeHTTP(w, req)

	var resp productListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 || resp.Products[0].ID != "p-badem" {
		t.Fatalf("unexpected filter result: %+v", resp)
	}
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/p-yok", nil)
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListCategories(t *testing.T) {
	env := newTestEnv(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	env.router.ServeHTTP(w, req)

	var resp struct {
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Categories) == 0 || resp.Categories[0] != "Tümü" {
		t.Fatalf("expected the sentinel category first, got %v", resp.Categories)
	}
}

func TestCreateProductRefreshesCatalog(t *testing.T) {
	env := newTestEnv(t, nil)
	env.custSvc.user = &domain.User{ID: "a1", Role: domain.RoleAdmin}

	created := domain.Product{ID: "p-new", Name: "Kaju", Category: "Kuruyemiş", InStock: true, MinOrder: 2}
	env.prodSvc.created = &created
	env.prodSvc.list = append(testProducts(), created)

	w := httptest.NewRecorder()
	body := `{"name":"Kaju","category":"Kuruyemiş","priceCents":60000,"wholesaleCents":52000,"minOrder":2}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer admin-token")
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if env.store.Len() != 5 {
		t.Fatalf("expected the snapshot to pick up the new product, got %d entries", env.store.Len())
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	env := newTestEnv(t, nil)
	env.custSvc.user = &domain.User{ID: "a1", Role: domain.RoleAdmin}
	env.prodSvc.updateErr = domain.ErrNotFound

	w := httptest.NewRecorder()
	body := `{"name":"Kaju","category":"Kuruyemiş"}`
	req := httptest.NewRequest(http.MethodPatch, "/products/p-yok", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer admin-token")
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t, nil)
	env.custSvc.user = &domain.User{ID: "a1", Role: domain.RoleAdmin}
	env.prodSvc.list = testProducts()[:3]

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/products/p-uzum", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if env.store.Len() != 3 {
		t.Fatalf("expected the snapshot to shrink, got %d entries", env.store.Len())
	}
}
