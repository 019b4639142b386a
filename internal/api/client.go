package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gregjones/httpcache"
	"github.com/rs/zerolog/log"
)

const basePath = "/api"

// Config holds client configuration.
type Config struct {
	ServerURL string
	Timeout   time.Duration
}

// DefaultConfig returns a default client configuration.
func DefaultConfig() Config {
	return Config{
		ServerURL: "http://localhost:8000",
		Timeout:   30 * time.Second,
	}
}

// Client issues typed requests against the marketplace REST API. A single
// instance is shared by all feature calls; the default Authorization
// header is mutable and read at call time. Only the session controller
// writes it.
type Client struct {
	base   string
	httpc  *http.Client
	cached *http.Client

	mu   sync.RWMutex
	auth string
}

// New creates a client for the given configuration. Public read-only
// endpoints go through an in-memory caching transport; everything else
// uses a plain client.
func New(cfg Config) *Client {
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultConfig().ServerURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	return &Client{
		base:  strings.TrimRight(cfg.ServerURL, "/") + basePath,
		httpc: &http.Client{Timeout: cfg.Timeout},
		cached: &http.Client{
			Transport: httpcache.NewTransport(httpcache.NewMemoryCache()),
			Timeout:   cfg.Timeout,
		},
	}
}

// SetAuthHeader sets the default bearer header for all subsequent
// requests. In-flight requests keep the value they were issued with.
func (c *Client) SetAuthHeader(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.auth = "Bearer " + token
}

// ClearAuthHeader removes the default bearer header.
func (c *Client) ClearAuthHeader() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.auth = ""
}

func (c *Client) authHeader() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.auth
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, c.httpc, http.MethodGet, path, nil, out)
}

// GetCached issues a GET through the caching transport. Used for the
// public browse endpoints.
func (c *Client) GetCached(ctx context.Context, path string, out any) error {
	return c.do(ctx, c.cached, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, c.httpc, http.MethodPost, path, body, out)
}

// Patch issues a PATCH with a JSON body and decodes the response into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, c.httpc, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE. The response body is discarded.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, c.httpc, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, httpc *http.Client, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, httpc, out)
}

// doMultipart issues a multipart/form-data request with the given string
// fields plus one file part, used when a listing image is attached.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, fileField, filePath string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field: %w", err)
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile(fileField, filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, c.httpc, out)
}

func (c *Client) send(req *http.Request, httpc *http.Client, out any) error {
	if auth := c.authHeader(); auth != "" {
		req.Header.Set("Authorization", auth)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	started := time.Now()
	resp, err := httpc.Do(req)
	if err != nil {
		log.Debug().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("requestId", requestID).
			Err(err).
			Msg("transport failure")
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Str("requestId", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(started)).
		Msg("api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
