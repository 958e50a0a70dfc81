package state

import (
	"testing"

	"github.com/adisetya/lapakstore/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestSetProductsReportsChange(t *testing.T) {
	st := NewStore()
	ps := []catalog.Product{{ID: "p1", Name: "Kopi", Price: 25000, Images: []string{"a.jpg"}}}

	assert.True(t, st.SetProducts(ps))
	assert.False(t, st.SetProducts(ps), "identical set must not count as a change")

	ps2 := []catalog.Product{{ID: "p1", Name: "Kopi", Price: 27000, Images: []string{"a.jpg"}}}
	assert.True(t, st.SetProducts(ps2))
}

func TestAccessorsReturnCopies(t *testing.T) {
	st := NewStore()
	st.SetBanners([]string{"b1.jpg"})

	got := st.Banners()
	got[0] = "mutated"
	assert.Equal(t, []string{"b1.jpg"}, st.Banners())
}

func TestDefaultCategoriesSeeded(t *testing.T) {
	st := NewStore()
	assert.Equal(t, catalog.DefaultCategories(), st.Categories())
}
