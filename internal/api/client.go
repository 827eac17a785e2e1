package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/wallstudio/wallpaper-studio/internal/model"
)

// API path constants
const (
	GeneratePath   = "/api/wallpapers/generate"
	WallpapersPath = "/api/wallpapers"
)

// UserAgent identifies this client to the backend
const UserAgent = "wallpaper-studio"

// Client talks to the wallpaper backend over HTTP. No request timeout is set
// on the underlying http.Client; callers bound calls via context when needed.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client for the given base URL. A trailing slash
// on the base URL is tolerated.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Generate requests one new wallpaper from the backend.
func (c *Client) Generate(ctx context.Context, req model.GenerationRequest) (*model.Wallpaper, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode generation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+GeneratePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build generate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read generate response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp.StatusCode, data)
	}

	var wr wallpaperResponse
	if err := json.Unmarshal(data, &wr); err != nil {
		return nil, fmt.Errorf("failed to decode generate response: %w", err)
	}

	if !wr.Success {
		if wr.Error != "" {
			return nil, fmt.Errorf("generation failed: %s", wr.Error)
		}
		return nil, fmt.Errorf("generation failed")
	}

	return wr.toWallpaper(), nil
}

// List returns all wallpapers from the backend in server order.
func (c *Client) List(ctx context.Context) ([]*model.Wallpaper, error) {
	data, err := c.get(ctx, c.baseURL+WallpapersPath)
	if err != nil {
		return nil, err
	}

	// The backend may return null for an empty gallery; normalize to an
	// empty slice so view state never holds nil.
	wallpapers := []*model.Wallpaper{}
	if body := bytes.TrimSpace(data); len(body) == 0 || string(body) == "null" {
		return wallpapers, nil
	}

	var items []wallpaperResponse
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode wallpaper list: %w", err)
	}

	for i := range items {
		wallpapers = append(wallpapers, items[i].toWallpaper())
	}
	return wallpapers, nil
}

// Get fetches a single wallpaper by id.
func (c *Client) Get(ctx context.Context, id string) (*model.Wallpaper, error) {
	if id == "" {
		return nil, fmt.Errorf("wallpaper id is empty")
	}

	data, err := c.get(ctx, c.baseURL+WallpapersPath+"/"+id)
	if err != nil {
		return nil, err
	}

	var wr wallpaperResponse
	if err := json.Unmarshal(data, &wr); err != nil {
		return nil, fmt.Errorf("failed to decode wallpaper response: %w", err)
	}

	if !wr.Success {
		if wr.Error != "" {
			return nil, fmt.Errorf("wallpaper fetch failed: %s", wr.Error)
		}
		return nil, fmt.Errorf("wallpaper fetch failed")
	}

	return wr.toWallpaper(), nil
}

// get performs a GET request and returns the raw body for 200 responses.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp.StatusCode, data)
	}

	return data, nil
}

// decodeError extracts the backend's error message from a non-200 body,
// falling back to the HTTP status.
func (c *Client) decodeError(status int, data []byte) error {
	var er errorResponse
	if err := json.Unmarshal(data, &er); err == nil && er.message() != "" {
		return fmt.Errorf("backend returned %d: %s", status, er.message())
	}
	return fmt.Errorf("backend returned %d", status)
}
