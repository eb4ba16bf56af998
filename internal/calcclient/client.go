// Package calcclient calls the calculation service over HTTP. A Client
// satisfies keypad.Calculator.
package calcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"remote-calc/internal/keypad"
	"remote-calc/internal/observability"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const (
	calculatePath  = "/calculator/calculate"
	DefaultTimeout = 10 * time.Second
)

// Client sends one request per Calculate call and never retries.
type Client struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

type Option func(*Client)

// WithTimeout bounds each Calculate call. Zero or negative disables the
// bound, leaving only the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient replaces the instrumented default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// New creates a client targeting the given base URL (e.g. "http://127.0.0.1:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
		client:  &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type calcRequest struct {
	Operator string  `json:"operator"`
	A        float64 `json:"a"`
	B        float64 `json:"b"`
}

type calcResponse struct {
	Result float64 `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Calculate asks the service for a op b.
func (c *Client) Calculate(ctx context.Context, op keypad.Operator, a, b float64) (float64, error) {
	if !op.Arithmetic() {
		return 0, fmt.Errorf("calculate: %w: %q", keypad.ErrUnknownOperator, op)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	data, err := json.Marshal(calcRequest{Operator: op.String(), A: a, B: b})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+calculatePath, bytes.NewReader(data))
	if err != nil {
		return 0, err
	}

	requestID := observability.NewRequestID()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(observability.RequestIDHeader, requestID)

	logger := observability.LoggerWithTrace(ctx).With(
		zap.String("operator", op.String()),
		zap.Float64("a", a),
		zap.Float64("b", b),
		zap.String("request_id", requestID),
	)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		logger.Warn("calculation request failed", zap.Error(err))
		return 0, fmt.Errorf("POST %s: %w", calculatePath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := newAPIError(resp)
		logger.Warn("calculation rejected",
			zap.Int("status", apiErr.Status),
			zap.String("error", apiErr.Message),
		)
		return 0, apiErr
	}

	var out calcResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode %s response: %w", calculatePath, err)
	}

	logger.Debug("calculation completed",
		zap.Float64("result", out.Result),
		zap.Duration("duration", time.Since(start)),
	)
	return out.Result, nil
}

// APIError is a non-2xx answer from the service.
type APIError struct {
	Status    int
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("POST %s: %d %s", calculatePath, e.Status, e.Message)
}

func newAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	msg := strings.TrimSpace(string(body))
	var er errorResponse
	if json.Unmarshal(body, &er) == nil && er.Error != "" {
		msg = er.Error
	}

	return &APIError{
		Status:    resp.StatusCode,
		Message:   msg,
		RequestID: resp.Header.Get(observability.RequestIDHeader),
	}
}
