package loadtest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okian/draftsensei/internal/domain/types"
)

// errStatus marks a response with an unexpected status code.
var errStatus = errors.New("unexpected status")

// HTTPClient wraps http.Client with timeout.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

func newHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// getJSON performs a GET and decodes a 200 response into out.
func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

// postJSON posts body as JSON and decodes a 200 response into out.
func (c *HTTPClient) postJSON(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w %d from %s: %s", errStatus, resp.StatusCode, req.URL.Path, bytes.TrimSpace(body))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", req.URL.Path, err)
	}
	return nil
}

// fetchHeroes lists every hero name the service knows.
func fetchHeroes(ctx context.Context, c *HTTPClient) ([]string, error) {
	var list types.HeroList
	if err := c.getJSON(ctx, "/heroes", &list); err != nil {
		return nil, err
	}
	names := make([]string, len(list.Heroes))
	for i, h := range list.Heroes {
		names[i] = h.Name
	}
	return names, nil
}

// fetchResultSize reads the configured suggestion count from /stats.
func fetchResultSize(ctx context.Context, c *HTTPClient) (int, error) {
	var stats struct {
		ResultSize int `json:"resultSize"`
	}
	if err := c.getJSON(ctx, "/stats", &stats); err != nil {
		return 0, err
	}
	return stats.ResultSize, nil
}
