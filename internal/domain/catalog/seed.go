// internal/domain/catalog/seed.go
package catalog

// SeedProducts returns the boutique's starter catalog. The backend variant
// inserts these during migration when the products table is empty; the
// local variant serves them directly from memory.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "0b6f8a3e-5f1c-4c8d-9f3a-2d7c1e6b4a01",
			Name:        "Collier Élégant Doré",
			Price:       25000,
			Category:    CategoryBijoux,
			Subcategory: "colliers",
			Image:       "https://images.unsplash.com/photo-1611652022419-a9419f74343d",
			Description: "Magnifique collier doré pour toutes occasions",
			InStock:     true,
			Rating:      4.8,
			Reviews:     23,
		},
		{
			ID:          "1c7e9b4f-6a2d-4d9e-8a4b-3e8d2f7c5b02",
			Name:        "Bagues Dorées Set de 3",
			Price:       15000,
			Category:    CategoryBijoux,
			Subcategory: "bagues",
			Image:       "https://images.unsplash.com/photo-1543294001-f7cd5d7fb516",
			Description: "Ensemble de 3 bagues dorées élégantes",
			InStock:     true,
			Rating:      4.5,
			Reviews:     18,
		},
		{
			ID:          "2d8fac50-7b3e-4eaf-9b5c-4f9e3a8d6c03",
			Name:        "Bracelet Argent Délicat",
			Price:       18000,
			Category:    CategoryBijoux,
			Subcategory: "bracelets",
			Image:       "https://images.unsplash.com/photo-1611652022419-a9419f74343d",
			Description: "Bracelet en argent avec finition délicate",
			InStock:     true,
			Rating:      4.7,
			Reviews:     31,
		},
		{
			ID:          "3e9abd61-8c4f-4fba-ac6d-5a0f4b9e7d04",
			Name:        "AirPods Pro Sans Fil",
			Price:       85000,
			Category:    CategoryTech,
			Subcategory: "ecouteurs",
			Image:       "https://images.unsplash.com/photo-1572569511254-d8f925fe2cbb",
			Description: "Écouteurs sans fil de haute qualité avec réduction de bruit",
			InStock:     true,
			Rating:      4.9,
			Reviews:     156,
		},
		{
			ID:          "4fabce72-9d50-40cb-bd7e-6b1a5cafe005",
			Name:        "Casque Bluetooth Premium",
			Price:       75000,
			Category:    CategoryTech,
			Subcategory: "casques",
			Image:       "https://images.unsplash.com/photo-1628329567705-f8f7150c3cff",
			Description: "Casque audio bluetooth avec son haute fidélité",
			InStock:     true,
			Rating:      4.6,
			Reviews:     89,
		},
		{
			ID:          "50bcdf83-ae61-41dc-ce8f-7c2b6dbaf106",
			Name:        "Écouteurs Colorés Set",
			Price:       35000,
			Category:    CategoryTech,
			Subcategory: "ecouteurs",
			Image:       "https://images.unsplash.com/photo-1590658268037-6bf12165a8df",
			Description: "Collection d'écouteurs sans fil colorés",
			InStock:     true,
			Rating:      4.3,
			Reviews:     67,
		},
		{
			ID:          "61cdea94-bf72-42ed-df90-8d3c7ecba207",
			Name:        "Ventilateur Miniature USB",
			Price:       12000,
			Category:    CategoryTech,
			Subcategory: "ventilateurs",
			Image:       "https://images.unsplash.com/photo-1628329567705-f8f7150c3cff",
			Description: "Ventilateur portable miniature avec câble USB",
			InStock:     true,
			Rating:      4.1,
			Reviews:     42,
		},
	}
}
