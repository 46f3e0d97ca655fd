package crmsdk

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

const clientsPath = "/api/clients"

// SDKClient is a client for the CRM service. The zero HTTPClient gets a
// sensible timeout; swap it out for custom transports or tests.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client rooted at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ListClients returns all clients, filtered by the optional search term.
func (c *SDKClient) ListClients(ctx context.Context, search string) ([]Client, error) {
	path := clientsPath
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var clients []Client
	if err := decodeJSON(resp, &clients, http.StatusOK); err != nil {
		return nil, err
	}
	return clients, nil
}

// GetClient fetches a single client by id.
func (c *SDKClient) GetClient(ctx context.Context, id int64) (Client, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("%s/%d", clientsPath, id), nil)
	if err != nil {
		return Client{}, err
	}

	var client Client
	if err := decodeJSON(resp, &client, http.StatusOK); err != nil {
		return Client{}, err
	}
	return client, nil
}

// CreateClient creates a new client record and returns it with the
// server-assigned id and timestamps.
func (c *SDKClient) CreateClient(ctx context.Context, payload ClientPayload) (Client, error) {
	resp, err := c.doJSONRequest(ctx, http.MethodPost, clientsPath, payload)
	if err != nil {
		return Client{}, err
	}

	var client Client
	if err := decodeJSON(resp, &client, http.StatusCreated); err != nil {
		return Client{}, err
	}
	return client, nil
}

// UpdateClient overwrites an existing client record.
func (c *SDKClient) UpdateClient(ctx context.Context, id int64, payload ClientPayload) (Client, error) {
	resp, err := c.doJSONRequest(ctx, http.MethodPatch, fmt.Sprintf("%s/%d", clientsPath, id), payload)
	if err != nil {
		return Client{}, err
	}

	var client Client
	if err := decodeJSON(resp, &client, http.StatusOK); err != nil {
		return Client{}, err
	}
	return client, nil
}

// DeleteClient removes a client record.
func (c *SDKClient) DeleteClient(ctx context.Context, id int64) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", clientsPath, id), nil)
	if err != nil {
		return err
	}

	var empty struct{}
	return decodeJSON(resp, &empty, http.StatusOK)
}

// GetLiveness returns the service liveness report.
func (c *SDKClient) GetLiveness(ctx context.Context) (HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil)
	if err != nil {
		return HealthResponse{}, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return HealthResponse{}, err
	}
	return health, nil
}

func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

func (c *SDKClient) doRequest(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

func (c *SDKClient) doJSONRequest(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.doRequest(ctx, method, path, bytes.NewReader(b))
}

// decodeJSON reads the body once, mapping unexpected statuses to typed
// errors and decoding the expected status into target.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
