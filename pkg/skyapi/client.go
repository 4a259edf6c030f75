// Package skyapi is the client of the SkyBook booking REST API.
package skyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/skybook/skybook-web/pkg/errors"
	"github.com/skybook/skybook-web/pkg/httpclient"
	"github.com/skybook/skybook-web/pkg/logger"
	"github.com/skybook/skybook-web/pkg/metrics"
	"github.com/skybook/skybook-web/pkg/tracing"
	"go.uber.org/zap"
)

// TokenSource supplies the bearer token of the current session.
type TokenSource interface {
	Load() (string, error)
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return e.Message
}

// Is maps well-known statuses onto the application sentinels.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusNotFound:
		return target == apperrors.ErrNotFound
	case http.StatusUnauthorized:
		return target == apperrors.ErrUnauthorized
	case http.StatusForbidden:
		return target == apperrors.ErrForbidden
	}
	return false
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload) //nolint:errcheck // non-JSON error bodies fall back to the status
	msg := payload.Message
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	return &APIError{Message: msg, StatusCode: status}
}

// MessageOr returns the backend's message for err, or fallback when err
// did not come from the backend.
func MessageOr(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsAuthEndpoint reports whether endpoint must be called without a bearer token.
func IsAuthEndpoint(endpoint string) bool {
	return strings.Contains(endpoint, "/login") || strings.Contains(endpoint, "/signup")
}

type tokenKey struct{}

// WithToken pins the bearer token used for calls made with ctx,
// overriding the TokenSource.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// Client talks to the booking backend. It never retries and never caches.
type Client struct {
	baseURL string
	http    httpclient.Client
	tokens  TokenSource

	Auth     *AuthAPI
	Flights  *FlightsAPI
	Bookings *BookingsAPI
	Payments *PaymentsAPI
	Users    *UsersAPI
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default cookie-keeping HTTP client.
func WithHTTPClient(h httpclient.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// New creates a client for the API rooted at baseURL (".../api/v1").
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpclient.NewStandardClient(),
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthAPI{c: c}
	c.Flights = &FlightsAPI{c: c}
	c.Bookings = &BookingsAPI{c: c}
	c.Payments = &PaymentsAPI{c: c}
	c.Users = &UsersAPI{c: c}
	return c
}

// Request sends a JSON request to endpoint and decodes a 2xx body into out.
// body and out may be nil.
func (c *Client) Request(ctx context.Context, method, endpoint string, body, out interface{}) error {
	return c.do(ctx, "request", method, endpoint, body, out)
}

func (c *Client) do(ctx context.Context, operation, method, endpoint string, body, out interface{}) (err error) {
	start := time.Now()
	ctx, span := tracing.StartClientSpan(ctx, operation, method, endpoint)
	defer span.End()

	defer func() {
		duration := metrics.MeasureDuration(start)
		status := metrics.Status(err)
		metrics.APIClientRequestDuration.WithLabelValues(operation, status).Observe(duration)
		metrics.APIClientRequestTotal.WithLabelValues(operation, status).Inc()

		fields := []zap.Field{
			zap.String("method", method),
			zap.String("endpoint", endpoint),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
			tracing.RecordError(span, err)
		}
		logger.LogAPICall("skyapi", operation, status, duration, fields...)
	}()

	var reader io.Reader = http.NoBody
	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return fmt.Errorf("encode %s body: %w", operation, marshalErr)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.token(ctx); token != "" && !IsAuthEndpoint(endpoint) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	tracing.InjectHeaders(ctx, req.Header)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}

func (c *Client) token(ctx context.Context) string {
	if token, ok := ctx.Value(tokenKey{}).(string); ok {
		return token
	}
	if c.tokens == nil {
		return ""
	}
	token, err := c.tokens.Load()
	if err != nil {
		logger.Warn("Failed to read stored token", zap.Error(err))
		return ""
	}
	return token
}
