package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/adisetya/lapakstore/internal/cart"
	kafkax "github.com/adisetya/lapakstore/internal/kafka"
	"github.com/adisetya/lapakstore/internal/orders"
	"github.com/adisetya/lapakstore/internal/redisx"
	"github.com/adisetya/lapakstore/internal/state"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type CartHandler struct {
	Carts          *cart.Store
	State          *state.Store
	Producer       *kafkax.Producer
	Redis          *redis.Client
	Log            *zap.Logger
	Service        string
	WhatsAppNumber string
}

func (h *CartHandler) Register(r *chi.Mux) {
	r.Get("/api/cart", h.getCart)
	r.Post("/api/cart/items", h.addItem)
	r.Patch("/api/cart/items/{id}", h.setQty)
	r.Delete("/api/cart/items/{id}", h.removeItem)
	r.Post("/api/checkout", h.checkout)
}

// Sesi keranjang diidentifikasi header, bukan cookie; client SPA yang
// membuat dan menyimpannya.
func sessionID(r *http.Request) string {
	return r.Header.Get("X-Session-ID")
}

func (h *CartHandler) withCart(w http.ResponseWriter, r *http.Request, mutate func(c *cart.Cart) bool) {
	sid := sessionID(r)
	if sid == "" {
		writeError(w, http.StatusBadRequest, "missing session")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	c, err := h.Carts.Get(ctx, sid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart unavailable")
		return
	}
	if mutate != nil {
		if !mutate(&c) {
			return
		}
		if err := h.Carts.Save(ctx, sid, c); err != nil {
			writeError(w, http.StatusInternalServerError, "cart save failed")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"cart":     c,
		"subtotal": c.Subtotal(),
	})
}

func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	h.withCart(w, r, nil)
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	p, ok := h.State.Product(req.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	h.withCart(w, r, func(c *cart.Cart) bool {
		c.Add(p)
		return true
	})
}

func (h *CartHandler) setQty(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Qty int `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	id := chi.URLParam(r, "id")
	h.withCart(w, r, func(c *cart.Cart) bool {
		c.SetQty(id, req.Qty)
		return true
	})
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.withCart(w, r, func(c *cart.Cart) bool {
		c.Remove(id)
		return true
	})
}

type checkoutResp struct {
	OrderID      string `json:"order_id"`
	Total        int    `json:"total"`
	WhatsAppLink string `json:"whatsapp_link"`
}

// checkout memvalidasi form, menghitung total, menyusun link WhatsApp,
// lalu menerbitkan event OrderPlaced supaya pesanan tercatat juga di
// seller hub — bukan cuma lewat teks chat.
func (h *CartHandler) checkout(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if sid == "" {
		writeError(w, http.StatusBadRequest, "missing session")
		return
	}

	var in cart.CheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	c, err := h.Carts.Get(ctx, sid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart unavailable")
		return
	}
	if c.Empty() {
		writeError(w, http.StatusBadRequest, "keranjang kosong")
		return
	}

	total, err := c.GrandTotal(in.Shipping)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now().UTC()
	order := orders.Order{
		ID:           uuid.NewString(),
		CustomerName: in.Name,
		Phone:        in.Phone,
		Address:      in.Address,
		ItemsSummary: cart.Summary(c),
		Total:        total,
		Status:       orders.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	items := make([]orders.OrderItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, orders.OrderItem{
			OrderID:   order.ID,
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Qty:       it.Qty,
			Price:     it.Product.Price,
		})
	}

	// Cache status supaya GET cepat sebelum worker sempat menulis journal.
	statusKey := fmt.Sprintf(redisx.KeyOrderStatus, order.ID)
	_ = h.Redis.Set(ctx, statusKey, `{"status":"Pending"}`, redisx.TTLStatusCache).Err()

	ev := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     orders.EventOrderPlaced,
		EventVersion:  1,
		OccurredAt:    now,
		Producer:      h.Service,
		TraceID:       r.Header.Get("X-Request-Id"),
		CorrelationID: order.ID,
		Payload:       kafkax.MustMarshal(orders.OrderPlacedPayload{Order: order, Items: items}),
	}
	h.Producer.Publish(orders.PartitionKey(order.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventOrderPlaced)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)

	msg := cart.WhatsAppMessage(c, in, total)
	link := cart.WhatsAppLink(h.WhatsAppNumber, msg)

	// checkout selesai -> keranjang dikosongkan, balik ke katalog
	if err := h.Carts.Clear(ctx, sid); err != nil {
		h.Log.Warn("clear cart failed", zap.String("session", sid), zap.Error(err))
	}

	writeJSON(w, http.StatusAccepted, checkoutResp{
		OrderID:      order.ID,
		Total:        total,
		WhatsAppLink: link,
	})
}
