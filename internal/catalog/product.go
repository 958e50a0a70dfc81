package catalog

// PlaceholderImage dipakai kalau sebuah produk sampai tanpa gambar sama sekali.
const PlaceholderImage = "https://placehold.co/600x600?text=Produk"

type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"original_price,omitempty"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
	Story         string   `json:"story,omitempty"`
	Rating        float64  `json:"rating"`
	Sold          int      `json:"sold"`
	DiscountTag   string   `json:"discount_tag,omitempty"`
}
