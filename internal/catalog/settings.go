package catalog

import (
	"encoding/json"
	"errors"
)

// Dua baris sentinel ikut numpang di koleksi Products. Payload JSON-nya
// disimpan di kolom description dan tidak boleh dianggap produk.
const (
	SentinelBanner     = "SETTINGS_BANNER"
	SentinelCategories = "SETTINGS_CATEGORIES"
)

func IsSentinel(id string) bool {
	return id == SentinelBanner || id == SentinelCategories
}

var errEmptyPayload = errors.New("empty settings payload")

// DecodeBanners parses the banner sentinel payload (JSON array of URLs).
func DecodeBanners(payload string) ([]string, error) {
	if payload == "" {
		return nil, errEmptyPayload
	}
	var urls []string
	if err := json.Unmarshal([]byte(payload), &urls); err != nil {
		return nil, err
	}
	return urls, nil
}

// DecodeCategories parses the categories sentinel payload.
func DecodeCategories(payload string) ([]CategoryConfig, error) {
	if payload == "" {
		return nil, errEmptyPayload
	}
	var cfgs []CategoryConfig
	if err := json.Unmarshal([]byte(payload), &cfgs); err != nil {
		return nil, err
	}
	return cfgs, nil
}

// SettingsRows builds the two sentinel rows for a full-collection push.
func SettingsRows(banners []string, categories []CategoryConfig) []map[string]any {
	b, _ := json.Marshal(banners)
	c, _ := json.Marshal(categories)
	return []map[string]any{
		{"id": SentinelBanner, "description": string(b)},
		{"id": SentinelCategories, "description": string(c)},
	}
}
