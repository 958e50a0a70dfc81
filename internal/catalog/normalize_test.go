package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImagesWireShapes(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"array", []any{"a.jpg", "b.jpg"}, []string{"a.jpg", "b.jpg"}},
		{"json array string", `["a.jpg","b.jpg"]`, []string{"a.jpg", "b.jpg"}},
		{"comma delimited", "a.jpg,b.jpg", []string{"a.jpg", "b.jpg"}},
		{"comma with spaces", "a.jpg , b.jpg", []string{"a.jpg", "b.jpg"}},
		{"single url", "a.jpg", []string{"a.jpg"}},
		{"empty string", "", nil},
		{"nil", nil, nil},
		{"malformed json", `["a.jpg"`, nil},
		{"number", 42.0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseImages(tt.in))
		})
	}
}

func TestImagesRoundTrip(t *testing.T) {
	images := []string{"a.jpg", "b.jpg"}

	// comma-delimited wire shape
	flat := JoinImages(images)
	require.Equal(t, "a.jpg,b.jpg", flat)
	assert.Equal(t, images, ParseImages(flat))

	// JSON-array-string wire shape
	assert.Equal(t, images, ParseImages(`["a.jpg","b.jpg"]`))
}

func TestFromRowCoercion(t *testing.T) {
	p := FromRow(map[string]any{
		"id":     123.0, // id numerik dari sheet
		"name":   "Kopi Bubuk",
		"price":  "25000",
		"rating": "4.5",
		"sold":   87.0,
		"images": "a.jpg,b.jpg",
	})

	assert.Equal(t, "123", p.ID)
	assert.Equal(t, 25000, p.Price)
	assert.Equal(t, 4.5, p.Rating)
	assert.Equal(t, 87, p.Sold)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.Images)
}

func TestFromRowPlaceholderWhenNoImages(t *testing.T) {
	for _, raw := range []any{nil, "", `["broken`} {
		p := FromRow(map[string]any{"id": "p1", "images": raw})
		require.NotEmpty(t, p.Images, "images must never be empty after normalization")
		assert.Equal(t, []string{PlaceholderImage}, p.Images)
	}
}

func TestToRowFlattensImages(t *testing.T) {
	row := ToRow(Product{ID: "p1", Name: "Teh", Price: 9500, Images: []string{"x.jpg", "y.jpg"}})
	assert.Equal(t, "x.jpg,y.jpg", row["images"])
}

func TestDecodeSettingsPayloads(t *testing.T) {
	urls, err := DecodeBanners(`["b1.jpg","b2.jpg"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"b1.jpg", "b2.jpg"}, urls)

	_, err = DecodeBanners("not json")
	assert.Error(t, err)

	cfgs, err := DecodeCategories(`[{"id":"minuman","name":"Minuman","icon":"coffee","visible":true}]`)
	require.NoError(t, err)
	require.Len(t, cfgs, 1)
	assert.Equal(t, IconDrink, cfgs[0].Icon)

	_, err = DecodeCategories("{broken")
	assert.Error(t, err)
}

func TestParseIconRejectsUnknown(t *testing.T) {
	_, err := ParseIcon("sparkles")
	assert.Error(t, err)

	ic, err := ParseIcon("grid")
	require.NoError(t, err)
	assert.Equal(t, IconGrid, ic)
}
