package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ImageSize selects a rendition of a cached poster or backdrop.
type ImageSize string

const (
	ImageSmall    ImageSize = "w185"
	ImageMedium   ImageSize = "w342"
	ImageLarge    ImageSize = "w780"
	ImageOriginal ImageSize = "original"
)

// maxImageBytes bounds FetchImage.
const maxImageBytes = 20 << 20

// ImageCacheStats describes the server's image cache.
type ImageCacheStats struct {
	Files int   `json:"files"`
	Bytes int64 `json:"bytes"`
}

// ImageURL builds the proxied image address for a TMDB path such as
// "/abc.jpg". No request is made.
func (c *Client) ImageURL(path string, size ImageSize) string {
	if path == "" {
		return ""
	}
	if size == "" {
		size = ImageMedium
	}
	return fmt.Sprintf("%s/images/%s/%s", c.baseURL, size, strings.TrimLeft(path, "/"))
}

// FetchImage downloads an image and returns its bytes and content type.
func (c *Client) FetchImage(ctx context.Context, path string, size ImageSize) ([]byte, string, error) {
	if size == "" {
		size = ImageMedium
	}
	resp, err := c.send(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/images/%s/%s", size, strings.TrimLeft(path, "/")),
	})
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// ImageCacheStats reports cache size.
func (c *Client) ImageCacheStats(ctx context.Context) (*ImageCacheStats, error) {
	var resp ImageCacheStats
	if err := c.get(ctx, "/images/cache", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ClearImageCache empties the cache.
func (c *Client) ClearImageCache(ctx context.Context) error {
	return c.delete(ctx, "/images/cache", nil)
}
