package catalog

// Seed returns the bundled fallback products. Dipakai hanya saat sync
// pertama gagal total, supaya katalog tidak pernah kosong di layar.
func Seed() []Product {
	return []Product{
		{
			ID:          "seed-1",
			Name:        "Beras Premium 5kg",
			Price:       68000,
			Category:    "lainnya",
			Description: "Beras pulen kualitas premium, kemasan 5kg.",
			Images:      []string{PlaceholderImage},
			Rating:      4.8,
			Sold:        132,
		},
		{
			ID:            "seed-2",
			Name:          "Kopi Robusta Bubuk 200g",
			Price:         25000,
			OriginalPrice: 32000,
			Category:      "minuman",
			Description:   "Kopi robusta asli, digiling halus.",
			Images:        []string{PlaceholderImage},
			Rating:        4.9,
			Sold:          87,
			DiscountTag:   "Promo",
		},
		{
			ID:          "seed-3",
			Name:        "Keripik Singkong Balado 150g",
			Price:       12000,
			Category:    "snack",
			Description: "Keripik singkong renyah bumbu balado.",
			Images:      []string{PlaceholderImage},
			Rating:      4.7,
			Sold:        215,
		},
		{
			ID:          "seed-4",
			Name:        "Teh Celup Melati isi 25",
			Price:       9500,
			Category:    "minuman",
			Description: "Teh celup aroma melati, isi 25 kantong.",
			Images:      []string{PlaceholderImage},
			Rating:      4.6,
			Sold:        64,
		},
	}
}
