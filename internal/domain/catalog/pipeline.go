// internal/domain/catalog/pipeline.go
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys accepted by the pipeline. Anything else falls back to SortByName.
const (
	SortByName      = "name"
	SortByPriceAsc  = "price-asc"
	SortByPriceDesc = "price-desc"
	SortByRating    = "rating"
)

// Filter holds the transient filter/sort state for one catalog view
type Filter struct {
	Category    string `form:"category"`
	Subcategory string `form:"subcategory"`
	Search      string `form:"search"`
	SortBy      string `form:"sort_by"`
}

// Apply runs the filter/sort pipeline over a product set and returns the
// display list. The input slice is never mutated. Steps run in order:
// category filter, subcategory filter, text search, stable sort.
func Apply(products []Product, f Filter) []Product {
	filtered := make([]Product, 0, len(products))

	query := strings.ToLower(strings.TrimSpace(f.Search))
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Subcategory != "" && p.Subcategory != f.Subcategory {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, f.SortBy)
	return filtered
}

// matchesQuery reports whether the product's name or description contains
// the query, case-insensitively
func matchesQuery(p Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}

func sortProducts(products []Product, sortBy string) {
	switch sortBy {
	case SortByPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortByPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortByRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default: // SortByName and unrecognized keys
		// collators carry internal buffers, so build one per call rather
		// than sharing across requests
		c := collate.New(language.French, collate.IgnoreCase)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}
