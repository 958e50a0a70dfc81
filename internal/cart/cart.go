package cart

import (
	"fmt"

	"github.com/adisetya/lapakstore/internal/catalog"
)

type Item struct {
	Product catalog.Product `json:"product"`
	Qty     int             `json:"qty"`
}

// Cart is a plain value; persistence lives in Store.
type Cart struct {
	Items []Item `json:"items"`
}

// Add increments qty kalau produk sudah ada, kalau belum masuk dengan qty 1.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.Items {
		if c.Items[i].Product.ID == p.ID {
			c.Items[i].Qty++
			return
		}
	}
	c.Items = append(c.Items, Item{Product: p, Qty: 1})
}

func (c *Cart) Remove(productID string) {
	out := c.Items[:0]
	for _, it := range c.Items {
		if it.Product.ID != productID {
			out = append(out, it)
		}
	}
	c.Items = out
}

// SetQty overrides the quantity; qty <= 0 removes the entry.
func (c *Cart) SetQty(productID string, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Qty = qty
			return
		}
	}
}

func (c *Cart) Empty() bool { return len(c.Items) == 0 }

func (c *Cart) Subtotal() int {
	total := 0
	for _, it := range c.Items {
		total += it.Product.Price * it.Qty
	}
	return total
}

// ShippingMethod is a closed set; pilihan di luar tabel tarif ditolak.
type ShippingMethod string

const (
	ShippingRegular ShippingMethod = "regular"
	ShippingExpress ShippingMethod = "express"
	ShippingPickup  ShippingMethod = "pickup"
)

var shippingTariff = map[ShippingMethod]int{
	ShippingRegular: 15000,
	ShippingExpress: 30000,
	ShippingPickup:  0,
}

// ServiceFee is the flat fee added to every checkout.
const ServiceFee = 1000

func Tariff(m ShippingMethod) (int, bool) {
	t, ok := shippingTariff[m]
	return t, ok
}

// GrandTotal = subtotal + tarif ongkir + biaya layanan tetap.
func (c *Cart) GrandTotal(m ShippingMethod) (int, error) {
	tariff, ok := shippingTariff[m]
	if !ok {
		return 0, fmt.Errorf("unknown shipping method: %q", m)
	}
	return c.Subtotal() + tariff + ServiceFee, nil
}
