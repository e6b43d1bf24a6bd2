// Package gateway provides HTTP access to the provider gateway (Nango) that
// fronts the connected SaaS providers. The Poller fetches record batches
// through it; the ToolExecutor proxies provider actions through it. OAuth,
// credential refresh, and provider rate limiting live on the gateway side.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is an HTTP client for the gateway API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

// NewClient creates a gateway client. baseURL is the gateway root
// (e.g. https://api.nango.dev); secretKey authenticates this engine.
func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
	}
}

// Record is one synced item from a provider resource. The shape is
// provider-specific; callers pick out the fields they know.
type Record = map[string]any

type recordsResponse struct {
	Records []Record `json:"records"`
}

// ListRecords fetches the synced records of a resource (model) for a
// connection, optionally modified since the given time.
func (c *Client) ListRecords(ctx context.Context, providerConfigKey, connectionID, model string, since time.Time) ([]Record, error) {
	q := url.Values{}
	q.Set("model", model)
	if !since.IsZero() {
		q.Set("modified_after", since.UTC().Format(time.RFC3339))
	}
	endpoint := fmt.Sprintf("%s/records?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create records request: %w", err)
	}
	c.setHeaders(req, providerConfigKey, connectionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch records for %s/%s: %w", providerConfigKey, model, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("gateway returned HTTP %d for records %s/%s: %s",
			resp.StatusCode, providerConfigKey, model, strings.TrimSpace(string(body)))
	}

	var out recordsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode records response: %w", err)
	}
	return out.Records, nil
}

// Proxy performs a provider action through the gateway on behalf of a
// connection: method and path are provider API shaped, body is the action
// arguments. The decoded JSON response is returned verbatim.
func (c *Client) Proxy(ctx context.Context, providerConfigKey, connectionID, method, path string, body any) (any, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal proxy body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	endpoint := fmt.Sprintf("%s/proxy/%s", c.baseURL, strings.TrimLeft(path, "/"))
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create proxy request: %w", err)
	}
	c.setHeaders(req, providerConfigKey, connectionID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("proxy %s %s via %s: %w", method, path, providerConfigKey, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read proxy response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("gateway returned HTTP %d for %s %s: %s",
			resp.StatusCode, method, path, strings.TrimSpace(string(raw)))
	}

	if len(raw) == 0 {
		return nil, nil
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// Some provider endpoints answer with plain text.
		return string(raw), nil
	}
	return decoded, nil
}

func (c *Client) setHeaders(req *http.Request, providerConfigKey, connectionID string) {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Provider-Config-Key", providerConfigKey)
	req.Header.Set("Connection-Id", connectionID)
}
