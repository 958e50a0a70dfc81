package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Client memanggil endpoint model bahasa yang di-host. Isi balasannya
// cuma ditampilkan, tidak ada logika yang bergantung padanya.
type Client struct {
	endpoint string
	http     *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 20 * time.Second},
	}
}

var ErrNotConfigured = errors.New("chat endpoint not configured")

type request struct {
	Message string `json:"message"`
}

type response struct {
	Reply string `json:"reply"`
}

func (c *Client) Reply(ctx context.Context, message string) (string, error) {
	if c.endpoint == "" {
		return "", ErrNotConfigured
	}
	b, _ := json.Marshal(request{Message: message})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat endpoint status %d", resp.StatusCode)
	}
	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Reply, nil
}
