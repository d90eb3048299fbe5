// Package modelserver is the HTTP adapter for the external trained-model
// service. The model artifact (a regression/classification ensemble trained
// on historical fire data) lives behind a small REST surface: POST /predict
// scores a feature vector, GET /health reports whether the artifact loaded.
package modelserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ag21o9/fire-risk-scoring-service/internal/domain"
)

// Client implements domain.Model against the model server's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a model-server client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type predictRequest struct {
	Features []float64 `json:"features"`
}

type predictResponse struct {
	Score int `json:"score"`
}

// Predict sends the feature vector to the model server and returns the
// integer risk score.
func (c *Client) Predict(ctx context.Context, features domain.FeatureVector) (int, error) {
	body, err := json.Marshal(predictRequest{Features: features.Values()})
	if err != nil {
		return 0, fmt.Errorf("marshal predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("predict request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("model server error: status %d: %s", resp.StatusCode, detail)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode predict response: %w", err)
	}

	return out.Score, nil
}

// CheckReadiness probes the model server's health endpoint. Used by the
// service's /readyz route: the scorer is ready exactly when the model
// artifact behind it is.
func (c *Client) CheckReadiness(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("create health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("model server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model server not healthy: status %d", resp.StatusCode)
	}
	return nil
}
