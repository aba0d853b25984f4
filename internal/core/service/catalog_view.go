package service

import (
	"strings"
	"sync"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// AllCategories is the synthetic list entry that clears the category filter.
const AllCategories = "all"

// CatalogView derives the visible subset of a product collection from two
// independent criteria: an exact-match category and a free-text query. The
// derivation is recomputed eagerly on every input change, so a read never
// observes output stale with respect to its inputs.
type CatalogView struct {
	mu       sync.RWMutex
	source   []domain.Product
	category string // empty = no category filter
	query    string
	visible  []domain.Product
}

func NewCatalogView() *CatalogView {
	return &CatalogView{}
}

// SetProducts replaces the source collection. The slice is copied; callers
// keep ownership of theirs.
func (v *CatalogView) SetProducts(products []domain.Product) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.source = append([]domain.Product(nil), products...)
	v.recompute()
}

// SelectCategory sets the category criterion. Empty string or the synthetic
// "all" entry clears it. Matching is exact and case-sensitive.
func (v *CatalogView) SelectCategory(category string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if category == AllCategories {
		category = ""
	}
	v.category = category
	v.recompute()
}

// SetQuery sets the free-text criterion. Whitespace-only queries behave as
// absent.
func (v *CatalogView) SetQuery(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.query = query
	v.recompute()
}

// Visible returns the current derivation: the ordered subsequence of source
// products satisfying both active criteria.
func (v *CatalogView) Visible() []domain.Product {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]domain.Product(nil), v.visible...)
}

// Apply atomically sets both criteria and returns the resulting derivation.
// Handlers use this so concurrent requests with different criteria cannot
// interleave between a setter and a read.
func (v *CatalogView) Apply(category, query string) []domain.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	if category == AllCategories {
		category = ""
	}
	v.category = category
	v.query = query
	v.recompute()
	return append([]domain.Product(nil), v.visible...)
}

// Categories returns the distinct categories observed in the source
// collection, in first-seen order, with the synthetic "all" entry prepended.
func (v *CatalogView) Categories() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	seen := make(map[string]struct{}, len(v.source))
	out := []string{AllCategories}
	for _, p := range v.source {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Snapshot returns a copy of the unfiltered source collection.
func (v *CatalogView) Snapshot() []domain.Product {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]domain.Product(nil), v.source...)
}

func (v *CatalogView) recompute() {
	v.visible = FilterProducts(v.source, v.category, v.query)
}

// FilterProducts returns the ordered subsequence of products satisfying both
// criteria. Category is exact and case-sensitive; empty means no filter.
// The query matches case-insensitively as a substring of either title or
// description; empty or whitespace-only means no filter.
func FilterProducts(products []domain.Product, category, query string) []domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}
