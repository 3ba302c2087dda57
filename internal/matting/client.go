package matting

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"time"
)

// The matting service runs on a local port and speaks a minimal protocol:
// POST a PNG to /v1/matte, get back a raw RGBA buffer with the dimensions in
// X-Matte-Width and X-Matte-Height headers.

// Client calls the external background-removal service.
type Client struct {
	baseURL string
	hc      *http.Client
}

// NewClient targets a service base URL such as "http://127.0.0.1:7870".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: 60 * time.Second},
	}
}

// Matte sends the image through the matting service and returns the result
// with its model-derived alpha channel.
func (c *Client) Matte(ctx context.Context, img image.Image) (*image.NRGBA, error) {
	var body bytes.Buffer
	if err := png.Encode(&body, img); err != nil {
		return nil, fmt.Errorf("matting: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/matte", &body)
	if err != nil {
		return nil, fmt.Errorf("matting: build request: %w", err)
	}
	req.Header.Set("Content-Type", "image/png")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("matting: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("matting: service returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var w, h int
	if _, err := fmt.Sscanf(resp.Header.Get("X-Matte-Width"), "%d", &w); err != nil {
		return nil, fmt.Errorf("matting: bad X-Matte-Width %q", resp.Header.Get("X-Matte-Width"))
	}
	if _, err := fmt.Sscanf(resp.Header.Get("X-Matte-Height"), "%d", &h); err != nil {
		return nil, fmt.Errorf("matting: bad X-Matte-Height %q", resp.Header.Get("X-Matte-Height"))
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("matting: bad dimensions %dx%d", w, h)
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("matting: read response: %w", err)
	}
	if len(buf) != w*h*4 {
		return nil, fmt.Errorf("matting: RGBA buffer is %d bytes, want %d", len(buf), w*h*4)
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(out.Pix, buf)
	return out, nil
}
