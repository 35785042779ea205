package catalog

import (
	"testing"

	"github.com/talipby/koroglu-site/internal/domain"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Badem İçi", Category: "Kuruyemiş", Description: "Çiğ badem içi"},
		{ID: "2", Name: "Ceviz İçi", Category: "Kuruyemiş", Description: "Taze ceviz içi"},
		{ID: "3", Name: "Kuru Kayısı", Category: "Kuru Meyve", Description: "Malatya kayısısı"},
		{ID: "4", Name: "Leblebi", Category: "Çerez", Description: "Sarı leblebi, badem aromalı"},
	}
}

func TestFilterIdentity(t *testing.T) {
	products := sampleProducts()
	got := Filter(products, "", AllCategories)
	if len(got) != len(products) {
		t.Fatalf("identity filter returned %d of %d", len(got), len(products))
	}
	for i := range got {
		if got[i].ID != products[i].ID {
			t.Fatalf("order changed at %d: %s != %s", i, got[i].ID, products[i].ID)
		}
	}
}

func TestFilterQueryCaseInsensitive(t *testing.T) {
	got := Filter(sampleProducts(), "badem", AllCategories)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches (name + description), got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "4" {
		t.Fatalf("unexpected matches %+v", got)
	}
}

func TestFilterQueryMatchesCategory(t *testing.T) {
	got := Filter(sampleProducts(), "kuru meyve", AllCategories)
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected the dried fruit entry, got %+v", got)
	}
}

func TestFilterByCategory(t *testing.T) {
	got := Filter(sampleProducts(), "", "Kuruyemiş")
	if len(got) != 2 {
		t.Fatalf("expected 2 nuts, got %d", len(got))
	}
	got = Filter(sampleProducts(), "ceviz", "Kuruyemiş")
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected only Ceviz İçi, got %+v", got)
	}
	got = Filter(sampleProducts(), "ceviz", "Kuru Meyve")
	if len(got) != 0 {
		t.Fatalf("expected no cross-category match, got %+v", got)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	_ = Filter(products, "badem", "Kuruyemiş")
	if products[0].ID != "1" || len(products) != 4 {
		t.Fatalf("input mutated: %+v", products)
	}
	// Idempotence: same inputs, same output.
	a := Filter(products, "badem", AllCategories)
	b := Filter(products, "badem", AllCategories)
	if len(a) != len(b) {
		t.Fatalf("filter not idempotent: %d vs %d", len(a), len(b))
	}
}

func TestStoreReplaceSwapsWholesale(t *testing.T) {
	s := NewStore(sampleProducts())
	if s.Len() != 4 {
		t.Fatalf("expected 4 products, got %d", s.Len())
	}
	s.Replace([]domain.Product{{ID: "9", Name: "Fındık İçi", Category: "Kuruyemiş"}})
	got := s.Products()
	if len(got) != 1 || got[0].ID != "9" {
		t.Fatalf("replace did not swap wholesale: %+v", got)
	}
}

func TestStoreProductsReturnsCopy(t *testing.T) {
	s := NewStore(sampleProducts())
	got := s.Products()
	got[0].Name = "mutated"
	if s.Products()[0].Name == "mutated" {
		t.Fatal("Products must return a copy")
	}
}

func TestStoreCategories(t *testing.T) {
	s := NewStore(sampleProducts())
	got := s.Categories()
	want := []string{AllCategories, "Kuruyemiş", "Kuru Meyve", "Çerez"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
