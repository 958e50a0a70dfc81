package cart

import (
	"testing"

	"github.com/adisetya/lapakstore/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price int) catalog.Product {
	return catalog.Product{ID: id, Name: "Produk " + id, Price: price, Images: []string{catalog.PlaceholderImage}}
}

func TestAddAggregatesByID(t *testing.T) {
	var c Cart
	p1 := product("p1", 10000)
	p2 := product("p2", 5000)

	c.Add(p1)
	c.Add(p2)
	c.Add(p1)
	c.Add(p1)

	require.Len(t, c.Items, 2)
	assert.Equal(t, 3, c.Items[0].Qty)
	assert.Equal(t, "p1", c.Items[0].Product.ID)
	assert.Equal(t, 1, c.Items[1].Qty)
}

func TestRemoveAndSetQty(t *testing.T) {
	var c Cart
	c.Add(product("p1", 10000))
	c.Add(product("p2", 5000))

	c.Remove("p1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, "p2", c.Items[0].Product.ID)

	c.SetQty("p2", 4)
	assert.Equal(t, 4, c.Items[0].Qty)

	// qty nol berarti hapus
	c.SetQty("p2", 0)
	assert.True(t, c.Empty())
}

func TestTotals(t *testing.T) {
	var c Cart
	c.Add(product("p1", 10000))
	c.Add(product("p1", 10000))
	c.Add(product("p2", 5000))

	assert.Equal(t, 25000, c.Subtotal())

	total, err := c.GrandTotal(ShippingRegular)
	require.NoError(t, err)
	assert.Equal(t, 25000+15000+ServiceFee, total)

	total, err = c.GrandTotal(ShippingPickup)
	require.NoError(t, err)
	assert.Equal(t, 25000+ServiceFee, total)
}

func TestGrandTotalRejectsUnknownShipping(t *testing.T) {
	var c Cart
	c.Add(product("p1", 10000))
	_, err := c.GrandTotal("drone")
	assert.Error(t, err)
}
