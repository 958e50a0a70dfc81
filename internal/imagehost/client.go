package imagehost

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Client uploads product photos to the image host. Gagal apa pun
// (termasuk key kosong/salah) jadi ok=false, tanpa error terstruktur.
type Client struct {
	uploadURL string
	apiKey    string
	http      *http.Client
	log       *zap.Logger
}

func New(uploadURL, apiKey string, log *zap.Logger) *Client {
	return &Client{
		uploadURL: uploadURL,
		apiKey:    apiKey,
		http:      &http.Client{Timeout: 30 * time.Second},
		log:       log,
	}
}

type uploadResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Upload sends the file as multipart form field "image" and returns the
// hosted URL.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, bool) {
	if c.apiKey == "" {
		return "", false
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		part, err := mw.CreateFormFile("image", filename)
		if err == nil {
			_, err = io.Copy(part, r)
		}
		if err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		_ = pw.CloseWithError(mw.Close())
	}()

	u, err := url.Parse(c.uploadURL)
	if err != nil {
		return "", false
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), pr)
	if err != nil {
		return "", false
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("image upload failed", zap.Error(err))
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("image upload non-2xx", zap.Int("status", resp.StatusCode))
		return "", false
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Data.URL == "" {
		return "", false
	}
	return out.Data.URL, true
}
