package httpx

import (
	"net/http"

	"github.com/adisetya/lapakstore/internal/catalog"
	"github.com/adisetya/lapakstore/internal/state"
	"github.com/go-chi/chi/v5"
)

// CatalogHandler serves the browse surface straight from the in-memory
// mirror; tidak pernah menyentuh sheet remote di jalur request.
type CatalogHandler struct {
	Store *state.Store
}

func (h *CatalogHandler) Register(r *chi.Mux) {
	r.Get("/api/products", h.listProducts)
	r.Get("/api/products/{id}", h.getProduct)
	r.Get("/api/categories", h.listCategories)
	r.Get("/api/banners", h.listBanners)
}

func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	ps := h.Store.Products()
	if cat := r.URL.Query().Get("category"); cat != "" && cat != "semua" {
		filtered := make([]catalog.Product, 0, len(ps))
		for _, p := range ps {
			if p.Category == cat {
				filtered = append(filtered, p)
			}
		}
		ps = filtered
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"products": ps,
		"syncing":  h.Store.Syncing(),
	})
}

func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Store.Product(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	visible := make([]catalog.CategoryConfig, 0)
	for _, c := range h.Store.Categories() {
		if c.Visible {
			visible = append(visible, c)
		}
	}
	writeJSON(w, http.StatusOK, visible)
}

func (h *CatalogHandler) listBanners(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Banners())
}
