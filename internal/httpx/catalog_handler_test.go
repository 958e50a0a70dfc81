package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adisetya/lapakstore/internal/catalog"
	"github.com/adisetya/lapakstore/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServer(t *testing.T) (*state.Store, *httptest.Server) {
	t.Helper()
	st := state.NewStore()
	st.SetProducts([]catalog.Product{
		{ID: "p1", Name: "Kopi", Price: 25000, Category: "minuman", Images: []string{"a.jpg"}},
		{ID: "p2", Name: "Keripik", Price: 12000, Category: "snack", Images: []string{"b.jpg"}},
	})
	st.SetBanners([]string{"b1.jpg"})

	r := NewRouter()
	(&CatalogHandler{Store: st}).Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return st, srv
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestListProducts(t *testing.T) {
	_, srv := newCatalogServer(t)

	var body struct {
		Products []catalog.Product `json:"products"`
		Syncing  bool              `json:"syncing"`
	}
	code := getJSON(t, srv.URL+"/api/products", &body)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, body.Products, 2)
}

func TestListProductsFilterByCategory(t *testing.T) {
	_, srv := newCatalogServer(t)

	var body struct {
		Products []catalog.Product `json:"products"`
	}
	code := getJSON(t, srv.URL+"/api/products?category=snack", &body)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, body.Products, 1)
	assert.Equal(t, "p2", body.Products[0].ID)

	// "semua" berarti tanpa filter
	code = getJSON(t, srv.URL+"/api/products?category=semua", &body)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, body.Products, 2)
}

func TestGetProduct(t *testing.T) {
	_, srv := newCatalogServer(t)

	var p catalog.Product
	code := getJSON(t, srv.URL+"/api/products/p1", &p)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Kopi", p.Name)

	code = getJSON(t, srv.URL+"/api/products/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestListBannersAndCategories(t *testing.T) {
	_, srv := newCatalogServer(t)

	var banners []string
	code := getJSON(t, srv.URL+"/api/banners", &banners)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"b1.jpg"}, banners)

	var cats []catalog.CategoryConfig
	code = getJSON(t, srv.URL+"/api/categories", &cats)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, catalog.DefaultCategories(), cats)
}

func TestAdminLoginRejectsWrongSecret(t *testing.T) {
	st := state.NewStore()
	r := NewRouter()
	(&AdminHandler{Secret: "rahasia", State: st}).Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/api/admin/login", "application/json",
		jsonBody(t, map[string]string{"secret": "salah"}))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, st.AdminActive())
}
