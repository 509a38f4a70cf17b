// internal/domain/catalog/pipeline_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []Product {
	return []Product{
		{ID: "p1", Name: "Collier Doré", Description: "collier élégant", Category: CategoryBijoux, Subcategory: "colliers", Price: 25000, Rating: 4.8},
		{ID: "p2", Name: "Bracelet Argent", Description: "bracelet délicat", Category: CategoryBijoux, Subcategory: "bracelets", Price: 18000, Rating: 4.7},
		{ID: "p3", Name: "Casque Bluetooth", Description: "son haute fidélité", Category: CategoryTech, Subcategory: "casques", Price: 75000, Rating: 4.6},
		{ID: "p4", Name: "Écouteurs Sans Fil", Description: "réduction de bruit", Category: CategoryTech, Subcategory: "ecouteurs", Price: 85000, Rating: 4.9},
		{ID: "p5", Name: "Ventilateur USB", Description: "ventilateur portable", Category: CategoryTech, Subcategory: "ventilateurs", Price: 12000, Rating: 4.1},
	}
}

func TestApplyCategoryFilter(t *testing.T) {
	products := testProducts()

	result := Apply(products, Filter{Category: CategoryBijoux})
	require.Len(t, result, 2)
	for _, p := range result {
		assert.Equal(t, CategoryBijoux, p.Category)
	}

	// No category selected yields the whole set
	result = Apply(products, Filter{})
	assert.Len(t, result, len(products))
}

func TestApplySubcategoryFilter(t *testing.T) {
	result := Apply(testProducts(), Filter{Category: CategoryTech, Subcategory: "casques"})
	require.Len(t, result, 1)
	assert.Equal(t, "p3", result[0].ID)
}

func TestApplySearchMatchesNameOrDescription(t *testing.T) {
	products := testProducts()

	// Case-insensitive match on name
	result := Apply(products, Filter{Search: "CASQUE"})
	require.Len(t, result, 1)
	assert.Equal(t, "p3", result[0].ID)

	// Match on description only
	result = Apply(products, Filter{Search: "réduction"})
	require.Len(t, result, 1)
	assert.Equal(t, "p4", result[0].ID)

	// Empty query returns the unfiltered set
	result = Apply(products, Filter{Search: ""})
	assert.Len(t, result, len(products))

	// Every hit contains the query somewhere
	result = Apply(products, Filter{Search: "ventilateur"})
	require.Len(t, result, 1)
	assert.Equal(t, "p5", result[0].ID)
}

func TestApplySortByName(t *testing.T) {
	result := Apply(testProducts(), Filter{SortBy: SortByName})

	names := make([]string, len(result))
	for i, p := range result {
		names[i] = p.Name
	}
	// French collation: É orders with E
	assert.Equal(t, []string{
		"Bracelet Argent",
		"Casque Bluetooth",
		"Collier Doré",
		"Écouteurs Sans Fil",
		"Ventilateur USB",
	}, names)
}

func TestApplySortDefaultsToName(t *testing.T) {
	byName := Apply(testProducts(), Filter{SortBy: SortByName})

	assert.Equal(t, byName, Apply(testProducts(), Filter{}))
	assert.Equal(t, byName, Apply(testProducts(), Filter{SortBy: "bogus-key"}))
}

func TestApplySortByPrice(t *testing.T) {
	asc := Apply(testProducts(), Filter{SortBy: SortByPriceAsc})
	desc := Apply(testProducts(), Filter{SortBy: SortByPriceDesc})

	require.Len(t, asc, 5)
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	// Distinct prices: descending is exactly the reverse of ascending
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestApplySortByRating(t *testing.T) {
	result := Apply(testProducts(), Filter{SortBy: SortByRating})

	require.NotEmpty(t, result)
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Rating, result[i].Rating)
	}
	assert.Equal(t, "p4", result[0].ID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := testProducts()
	original := make([]Product, len(products))
	copy(original, products)

	Apply(products, Filter{Category: CategoryTech, Search: "casque", SortBy: SortByPriceDesc})

	assert.Equal(t, original, products)
}

func TestApplyPipelineOrder(t *testing.T) {
	// Category narrows first, then search, then sort
	result := Apply(testProducts(), Filter{
		Category: CategoryTech,
		Search:   "e",
		SortBy:   SortByPriceAsc,
	})

	require.NotEmpty(t, result)
	for i, p := range result {
		assert.Equal(t, CategoryTech, p.Category)
		if i > 0 {
			assert.LessOrEqual(t, result[i-1].Price, p.Price)
		}
	}
}
