package catalog

import "fmt"

// Icon is a closed set of icon keys the UI knows how to render.
// Key di luar daftar ini ditolak eksplisit, tidak di-fallback diam-diam.
type Icon string

const (
	IconGrid    Icon = "grid"
	IconFood    Icon = "utensils"
	IconDrink   Icon = "coffee"
	IconSnack   Icon = "cookie"
	IconFashion Icon = "shirt"
	IconBox     Icon = "box"
)

var knownIcons = map[Icon]bool{
	IconGrid:    true,
	IconFood:    true,
	IconDrink:   true,
	IconSnack:   true,
	IconFashion: true,
	IconBox:     true,
}

func ParseIcon(s string) (Icon, error) {
	ic := Icon(s)
	if !knownIcons[ic] {
		return "", fmt.Errorf("unknown icon key: %q", s)
	}
	return ic, nil
}

type CategoryConfig struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Icon    Icon   `json:"icon"`
	Visible bool   `json:"visible"`
}

// DefaultCategories is the seeded category set, overridden wholesale by
// the SETTINGS_CATEGORIES row when the sheet carries one.
func DefaultCategories() []CategoryConfig {
	return []CategoryConfig{
		{ID: "semua", Name: "Semua", Icon: IconGrid, Visible: true},
		{ID: "makanan", Name: "Makanan", Icon: IconFood, Visible: true},
		{ID: "minuman", Name: "Minuman", Icon: IconDrink, Visible: true},
		{ID: "snack", Name: "Snack", Icon: IconSnack, Visible: true},
		{ID: "lainnya", Name: "Lainnya", Icon: IconBox, Visible: true},
	}
}
