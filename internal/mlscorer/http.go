package mlscorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Default HTTP client configuration.
const (
	defaultTimeout = 2 * time.Second
	maxErrorBody   = 512
)

// HTTPScorer calls a remote scoring service over JSON/HTTP.
type HTTPScorer struct {
	endpoint   string
	httpClient *http.Client
}

// HTTPOption configures the HTTPScorer.
type HTTPOption func(*HTTPScorer)

// WithTimeout sets the per-call HTTP timeout.
func WithTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPScorer) {
		if d > 0 {
			s.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPScorer) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// NewHTTPScorer creates a scorer client for the given prediction endpoint.
func NewHTTPScorer(endpoint string, opts ...HTTPOption) (*HTTPScorer, error) {
	if endpoint == "" {
		return nil, ErrNoEndpoint
	}
	s := &HTTPScorer{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// predictRequest mirrors the scoring service's request schema.
type predictRequest struct {
	ModelRef string             `json:"model_ref,omitempty"`
	Features map[string]float64 `json:"features"`
}

// predictResponse mirrors the scoring service's response schema.
type predictResponse struct {
	Scores []float64 `json:"scores"`
}

// APIError represents a non-2xx response from the scoring service.
type APIError struct {
	StatusCode int
	Body       string // first 512 bytes
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scorer HTTP %d: %s", e.StatusCode, e.Body)
}

// Predict POSTs the feature map and returns the raw per-touch scores.
func (s *HTTPScorer) Predict(ctx context.Context, features map[string]float64, modelRef string) ([]float64, error) {
	payload, err := json.Marshal(predictRequest{ModelRef: modelRef, Features: features})
	if err != nil {
		return nil, fmt.Errorf("encode predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call scorer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode predict response: %w", err)
	}
	return out.Scores, nil
}
