// Package catalog keeps the in-memory view of the product catalog. The
// list is replaced wholesale on every change notification; it is never
// merged incrementally.
package catalog

import (
	"strings"
	"sync"

	"github.com/talipby/koroglu-site/internal/domain"
)

// AllCategories is the sentinel meaning "no category restriction".
const AllCategories = "Tümü"

// Store holds the current product list behind a read/write lock.
type Store struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewStore(initial []domain.Product) *Store {
	s := &Store{}
	s.Replace(initial)
	return s
}

// Replace swaps the snapshot atomically.
func (s *Store) Replace(products []domain.Product) {
	cp := make([]domain.Product, len(products))
	copy(cp, products)
	s.mu.Lock()
	s.products = cp
	s.mu.Unlock()
}

// Products returns a copy of the current snapshot in catalog order.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]domain.Product, len(s.products))
	copy(cp, s.products)
	return cp
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Filter applies the free-text query and category restriction to the
// current snapshot.
func (s *Store) Filter(query, category string) []domain.Product {
	return Filter(s.Products(), query, category)
}

// Categories returns the distinct categories of the current snapshot with
// the sentinel first, preserving first-seen order.
func (s *Store) Categories() []string {
	products := s.Products()
	out := []string{AllCategories}
	seen := map[string]bool{}
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// Filter returns the subsequence of products, preserving input order, whose
// category matches (or category is the AllCategories sentinel) and whose
// name, description or category contains the query case-insensitively. An
// empty query matches everything. The input is never mutated.
func Filter(products []domain.Product, query, category string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != AllCategories && category != "" && p.Category != category {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p domain.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}
