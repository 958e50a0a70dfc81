package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Baris dari sheet bentuknya longgar: angka bisa datang sebagai string,
// id bisa berupa number, kolom images bisa salah satu dari empat bentuk.
// Semua dipaksa ke tipe yang benar di sini, jangan pernah percaya shape-nya.

// FromRow normalizes one raw sheet row into a Product.
func FromRow(row map[string]any) Product {
	p := Product{
		ID:            asString(row["id"]),
		Name:          asString(row["name"]),
		Price:         asInt(row["price"]),
		OriginalPrice: asInt(row["original_price"]),
		Category:      asString(row["category"]),
		Description:   asString(row["description"]),
		Images:        ParseImages(row["images"]),
		Story:         asString(row["story"]),
		Rating:        asFloat(row["rating"]),
		Sold:          asInt(row["sold"]),
		DiscountTag:   asString(row["discount_tag"]),
	}
	if len(p.Images) == 0 {
		p.Images = []string{PlaceholderImage}
	}
	return p
}

// ToRow flattens a Product back into a sheet row. Images dijadikan satu
// string dipisah koma, sesuai format kolom di spreadsheet.
func ToRow(p Product) map[string]any {
	return map[string]any{
		"id":             p.ID,
		"name":           p.Name,
		"price":          p.Price,
		"original_price": p.OriginalPrice,
		"category":       p.Category,
		"description":    p.Description,
		"images":         JoinImages(p.Images),
		"story":          p.Story,
		"rating":         p.Rating,
		"sold":           p.Sold,
		"discount_tag":   p.DiscountTag,
	}
}

// ParseImages accepts the four wire shapes the sheet has been seen to
// produce: a real array, a JSON-array-looking string, a comma separated
// string, or a single URL. Malformed JSON counts as zero images.
func ParseImages(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		return compact(t)
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s := strings.TrimSpace(asString(e)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		if strings.HasPrefix(s, "[") {
			var urls []string
			if err := json.Unmarshal([]byte(s), &urls); err != nil {
				return nil
			}
			return compact(urls)
		}
		if strings.Contains(s, ",") {
			return compact(strings.Split(s, ","))
		}
		return []string{s}
	default:
		return nil
	}
}

func JoinImages(urls []string) string {
	return strings.Join(compact(urls), ",")
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		// id numerik dari sheet: 123 bukan "123.000000"
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func asInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
