package cart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() CheckoutInput {
	return CheckoutInput{Name: "Budi", Phone: "08123456789", Address: "Jl. Melati 5", Shipping: ShippingRegular}
}

func TestValidateNamesMissingField(t *testing.T) {
	in := validInput()
	in.Name = "  "
	assert.ErrorIs(t, in.Validate(), ErrMissingName)

	in = validInput()
	in.Phone = ""
	assert.ErrorIs(t, in.Validate(), ErrMissingPhone)

	in = validInput()
	in.Address = ""
	assert.ErrorIs(t, in.Validate(), ErrMissingAddress)

	in = validInput()
	in.Shipping = "drone"
	assert.Error(t, in.Validate())

	assert.NoError(t, validInput().Validate())
}

func TestSummary(t *testing.T) {
	var c Cart
	c.Add(product("p1", 10000))
	c.Add(product("p1", 10000))
	c.Add(product("p2", 5000))

	assert.Equal(t, "2x Produk p1; 1x Produk p2", Summary(c))
}

func TestWhatsAppHandoff(t *testing.T) {
	var c Cart
	c.Add(product("p1", 10000))

	msg := WhatsAppMessage(c, validInput(), 26000)
	assert.Contains(t, msg, "1x Produk p1")
	assert.Contains(t, msg, "Budi")
	assert.Contains(t, msg, "Total: Rp26000")

	link := WhatsAppLink("628111222333", msg)
	require.True(t, strings.HasPrefix(link, "https://wa.me/628111222333?text="))
	// pesan harus ter-escape, tidak ada spasi mentah di query
	assert.NotContains(t, link, " ")
}
