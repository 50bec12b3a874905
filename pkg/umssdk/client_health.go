package umssdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.getHealth(ctx, "/livez")
}

// GetReadiness checks if the service can reach its database. A 503 answer
// still carries a HealthResponse; it is returned next to the *APIError so
// callers can see which check failed.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.getHealth(ctx, "/readyz")
}

func (c *Client) getHealth(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var health HealthResponse
	if err := json.Unmarshal(body, &health); err != nil || health.Status == "" {
		if apiErr := parseErrorResponse(resp, body); apiErr != nil {
			return nil, apiErr
		}
		return nil, fmt.Errorf("malformed health response from %s", path)
	}

	if resp.StatusCode != http.StatusOK {
		return &health, parseErrorResponse(resp, body)
	}
	return &health, nil
}
