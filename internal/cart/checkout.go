package cart

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// CheckoutInput is what the checkout form must carry.
type CheckoutInput struct {
	Name     string         `json:"name"`
	Phone    string         `json:"phone"`
	Address  string         `json:"address"`
	Shipping ShippingMethod `json:"shipping"`
}

var (
	ErrMissingName    = errors.New("nama wajib diisi")
	ErrMissingPhone   = errors.New("nomor telepon wajib diisi")
	ErrMissingAddress = errors.New("alamat wajib diisi")
)

// Validate menolak field wajib yang kosong, satu per satu supaya pesan
// errornya menyebut field yang kurang.
func (in CheckoutInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(in.Phone) == "" {
		return ErrMissingPhone
	}
	if strings.TrimSpace(in.Address) == "" {
		return ErrMissingAddress
	}
	if _, ok := shippingTariff[in.Shipping]; !ok {
		return fmt.Errorf("unknown shipping method: %q", in.Shipping)
	}
	return nil
}

// Summary serializes the cart lines for the order record,
// e.g. "2x Kopi Robusta; 1x Teh Celup".
func Summary(c Cart) string {
	parts := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		parts = append(parts, fmt.Sprintf("%dx %s", it.Qty, it.Product.Name))
	}
	return strings.Join(parts, "; ")
}

// WhatsAppMessage composes the preformatted handoff text.
func WhatsAppMessage(c Cart, in CheckoutInput, grandTotal int) string {
	var b strings.Builder
	b.WriteString("Halo, saya mau pesan:\n")
	for _, it := range c.Items {
		fmt.Fprintf(&b, "- %dx %s (Rp%d)\n", it.Qty, it.Product.Name, it.Product.Price*it.Qty)
	}
	fmt.Fprintf(&b, "\nNama: %s\nTelepon: %s\nAlamat: %s\nPengiriman: %s\n", in.Name, in.Phone, in.Address, in.Shipping)
	fmt.Fprintf(&b, "Total: Rp%d", grandTotal)
	return b.String()
}

// WhatsAppLink builds the wa.me deep link for the seller's number.
func WhatsAppLink(sellerNumber, message string) string {
	return "https://wa.me/" + sellerNumber + "?text=" + url.QueryEscape(message)
}
