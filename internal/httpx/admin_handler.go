package httpx

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/adisetya/lapakstore/internal/catalog"
	"github.com/adisetya/lapakstore/internal/imagehost"
	"github.com/adisetya/lapakstore/internal/orders"
	"github.com/adisetya/lapakstore/internal/redisx"
	"github.com/adisetya/lapakstore/internal/sheet"
	"github.com/adisetya/lapakstore/internal/state"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// AdminHandler is the seller hub API. Gerbang loginnya shared secret
// statis — placeholder, bukan security boundary.
type AdminHandler struct {
	Secret  string
	State   *state.Store
	Sheet   *sheet.Client
	Images  *imagehost.Client
	Journal *orders.Journal
	Redis   *redis.Client
	Log     *zap.Logger
}

func (h *AdminHandler) Register(r *chi.Mux) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Post("/logout", h.logout)
			r.Get("/products", h.listProducts)
			r.Post("/products", h.createProduct)
			r.Put("/products/{id}", h.updateProduct)
			r.Delete("/products/{id}", h.deleteProduct)
			r.Put("/banners", h.setBanners)
			r.Put("/categories", h.setCategories)
			r.Post("/upload", h.uploadImage)
			r.Get("/orders", h.listOrders)
			r.Put("/orders/{id}/status", h.updateOrderStatus)
		})
	})
}

func (h *AdminHandler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Secret string `json:"secret"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if h.Secret == "" || subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.Secret)) != 1 {
		writeError(w, http.StatusUnauthorized, "kode akses salah")
		return
	}

	token := uuid.NewString()
	key := fmt.Sprintf(redisx.KeyAdminSession, token)
	if err := h.Redis.Set(r.Context(), key, "1", redisx.TTLAdminSession).Err(); err != nil {
		writeError(w, http.StatusInternalServerError, "session store unavailable")
		return
	}
	h.State.SetAdminActive(true)
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *AdminHandler) logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Admin-Token")
	key := fmt.Sprintf(redisx.KeyAdminSession, token)
	_ = h.Redis.Del(r.Context(), key).Err()
	h.State.SetAdminActive(false)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AdminHandler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Admin-Token")
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing admin token")
			return
		}
		key := fmt.Sprintf(redisx.KeyAdminSession, token)
		ok, err := redisx.Exists(r.Context(), h.Redis, key)
		if err != nil || !ok {
			writeError(w, http.StatusUnauthorized, "invalid admin token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *AdminHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.State.Products())
}

// pushCatalog dispatches the whole collection after an admin edit.
// Best-effort: error hanya di-log, edit lokal tetap berlaku.
func (h *AdminHandler) pushCatalog(ctx context.Context) {
	err := h.Sheet.DispatchProductSync(ctx, h.State.Products(), h.State.Banners(), h.State.Categories())
	if err != nil {
		h.Log.Warn("product sync dispatch failed", zap.Error(err))
	}
}

func normalizeInput(p *catalog.Product) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if len(p.Images) == 0 {
		p.Images = []string{catalog.PlaceholderImage}
	}
}

func (h *AdminHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if p.Name == "" || p.Price <= 0 {
		writeError(w, http.StatusBadRequest, "nama dan harga wajib diisi")
		return
	}
	normalizeInput(&p)

	ps := h.State.Products()
	for _, existing := range ps {
		if existing.ID == p.ID {
			writeError(w, http.StatusConflict, "produk sudah ada")
			return
		}
	}
	h.State.SetProducts(append(ps, p))
	h.pushCatalog(r.Context())
	writeJSON(w, http.StatusCreated, p)
}

func (h *AdminHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	p.ID = id
	normalizeInput(&p)

	ps := h.State.Products()
	found := false
	for i := range ps {
		if ps[i].ID == id {
			ps[i] = p
			found = true
			break
		}
	}
	if !found {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	h.State.SetProducts(ps)
	h.pushCatalog(r.Context())
	writeJSON(w, http.StatusOK, p)
}

func (h *AdminHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ps := h.State.Products()
	out := ps[:0]
	for _, p := range ps {
		if p.ID != id {
			out = append(out, p)
		}
	}
	if len(out) == len(ps) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	h.State.SetProducts(out)
	h.pushCatalog(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *AdminHandler) setBanners(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URLs []string `json:"urls"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	h.State.SetBanners(req.URLs)
	banners := &redisx.BannerStore{RDB: h.Redis}
	if err := banners.SaveBanners(r.Context(), req.URLs); err != nil {
		h.Log.Warn("persist banners failed", zap.Error(err))
	}
	h.pushCatalog(r.Context())
	writeJSON(w, http.StatusOK, req.URLs)
}

func (h *AdminHandler) setCategories(w http.ResponseWriter, r *http.Request) {
	var cfgs []catalog.CategoryConfig
	if err := json.NewDecoder(r.Body).Decode(&cfgs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	for _, c := range cfgs {
		if _, err := catalog.ParseIcon(string(c.Icon)); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	h.State.SetCategories(cfgs)
	h.pushCatalog(r.Context())
	writeJSON(w, http.StatusOK, cfgs)
}

func (h *AdminHandler) uploadImage(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file image wajib diisi")
		return
	}
	defer file.Close()

	url, ok := h.Images.Upload(r.Context(), header.Filename, file)
	if !ok {
		writeError(w, http.StatusBadGateway, "upload gambar gagal")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (h *AdminHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	list, err := h.Journal.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *AdminHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	to, err := orders.ParseStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	from, err := h.Journal.UpdateStatus(ctx, orderID, to)
	switch {
	case errors.Is(err, orders.ErrNotFound):
		writeError(w, http.StatusNotFound, "order not found")
		return
	case errors.Is(err, orders.ErrBadTransition):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Teruskan ke sheet (best-effort) dan refresh cache status.
	if err := h.Sheet.DispatchOrderStatus(ctx, orderID, string(to)); err != nil {
		h.Log.Warn("order status dispatch failed", zap.String("order_id", orderID), zap.Error(err))
	}
	statusKey := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	body, _ := json.Marshal(map[string]string{"status": string(to)})
	_ = h.Redis.Set(ctx, statusKey, body, redisx.TTLStatusCache).Err()

	writeJSON(w, http.StatusOK, map[string]string{"from": string(from), "to": string(to)})
}
