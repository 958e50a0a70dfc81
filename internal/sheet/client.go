// Package sheet bicara ke endpoint proxy spreadsheet. Store remotenya
// spreadsheet, bukan database: latensi tidak jelas, shape longgar, jadi
// semua response di-parse ulang defensif dan gagal apa pun dianggap
// "tidak ada data", bukan error fatal.
package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/adisetya/lapakstore/internal/catalog"
	"go.uber.org/zap"
)

const CollectionProducts = "Products"

type Client struct {
	endpoint string
	http     *http.Client
	log      *zap.Logger
}

func New(endpoint string, log *zap.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

// Configured reports whether an endpoint URL has been set at all.
func (c *Client) Configured() bool { return c.endpoint != "" }

// Snapshot is one pull of the product collection, sentinels already
// partitioned away from the actual products.
type Snapshot struct {
	Products        []catalog.Product
	BannerPayload   string
	CategoryPayload string
}

// Empty is true when the pull carried zero rows of any kind.
func (s Snapshot) Empty() bool {
	return len(s.Products) == 0 && s.BannerPayload == "" && s.CategoryPayload == ""
}

// FetchRows does a soft-fail read: transport error, non-2xx, atau body
// yang bukan array JSON semuanya jadi ok=false, biar caller lanjut pakai
// state terakhir yang bagus.
func (c *Client) FetchRows(ctx context.Context, collection string) ([]map[string]any, bool) {
	if !c.Configured() {
		return nil, false
	}
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, false
	}
	q := u.Query()
	q.Set("sheet", collection)
	q.Set("_t", strconv.FormatInt(time.Now().UnixMilli(), 10)) // cache bust
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("sheet fetch failed", zap.String("collection", collection), zap.Error(err))
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Debug("sheet fetch non-2xx", zap.String("collection", collection), zap.Int("status", resp.StatusCode))
		return nil, false
	}

	var rows []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, false
	}
	return rows, true
}

// FetchProducts pulls the product collection and normalizes it.
func (c *Client) FetchProducts(ctx context.Context) (Snapshot, bool) {
	rows, ok := c.FetchRows(ctx, CollectionProducts)
	if !ok {
		return Snapshot{}, false
	}

	var snap Snapshot
	for _, row := range rows {
		switch id := fmt.Sprintf("%v", row["id"]); id {
		case catalog.SentinelBanner:
			if d, isStr := row["description"].(string); isStr {
				snap.BannerPayload = d
			}
		case catalog.SentinelCategories:
			if d, isStr := row["description"].(string); isStr {
				snap.CategoryPayload = d
			}
		default:
			snap.Products = append(snap.Products, catalog.FromRow(row))
		}
	}
	return snap, true
}

// dispatch posts an action payload. Kontrak best-effort: nil artinya
// "request sudah keluar dari proses ini", BUKAN "server menerapkannya".
// Status code sengaja tidak diperiksa; proxy sheet tidak pernah
// mengembalikan sesuatu yang bisa dipercaya.
func (c *Client) dispatch(ctx context.Context, body map[string]any) error {
	if !c.Configured() {
		return fmt.Errorf("sheet endpoint not configured")
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

// DispatchProductSync pushes the whole collection in one write: semua
// produk (images diratakan jadi satu string) plus dua baris sentinel.
func (c *Client) DispatchProductSync(ctx context.Context, products []catalog.Product, banners []string, categories []catalog.CategoryConfig) error {
	rows := make([]map[string]any, 0, len(products)+2)
	for _, p := range products {
		rows = append(rows, catalog.ToRow(p))
	}
	rows = append(rows, catalog.SettingsRows(banners, categories)...)
	return c.dispatch(ctx, map[string]any{
		"action":   "sync_products",
		"products": rows,
	})
}

func (c *Client) DispatchOrderCreate(ctx context.Context, order map[string]any) error {
	return c.dispatch(ctx, map[string]any{
		"action": "create_order",
		"order":  order,
	})
}

func (c *Client) DispatchOrderStatus(ctx context.Context, orderID, status string) error {
	return c.dispatch(ctx, map[string]any{
		"action":   "update_order_status",
		"order_id": orderID,
		"status":   status,
	})
}
