package cardapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/cardfront/pkg/logger"
	"github.com/dmitrymomot/cardfront/pkg/requestid"
	"github.com/dmitrymomot/cardfront/svc/card"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 2
	defaultUserAgent  = "cardfront/1.0"

	// maxErrorBody caps how much of a failed response is read for the error message.
	maxErrorBody = 64 << 10
	// maxErrorMessage caps the fallback message taken from a raw body.
	maxErrorMessage = 200
)

// Client talks to the card REST API. It is safe for concurrent use.
type Client struct {
	base       string
	http       *http.Client
	timeout    time.Duration
	maxRetries int
	backoff    BackoffStrategy
	log        *slog.Logger
	userAgent  string
}

// envelope is the wrapper every API response uses.
// Status is kept raw: deployments send it as a string or as a number.
type envelope struct {
	Status  json.RawMessage `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// New returns a client for the API rooted at baseURL, e.g.
// "https://sii-test-api.onrender.com/api". Only http and https are accepted.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme must be http or https", ErrInvalidBaseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidBaseURL)
	}

	c := &Client{
		base:       strings.TrimRight(u.String(), "/"),
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
		backoff:    DefaultBackoff(),
		log:        logger.Discard(),
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{
			Transport: &requestid.Transport{
				Base: &http.Transport{
					Proxy:               http.ProxyFromEnvironment,
					MaxIdleConns:        20,
					MaxIdleConnsPerHost: 10,
					IdleConnTimeout:     90 * time.Second,
				},
			},
		}
	}
	c.log = c.log.With(logger.Component("cardapi"))
	return c, nil
}

// List returns every card.
func (c *Client) List(ctx context.Context) ([]card.Card, error) {
	env, err := c.read(ctx, "/")
	if err != nil {
		return nil, err
	}
	cards := []card.Card{}
	if isNull(env.Data) {
		return cards, nil
	}
	if err := json.Unmarshal(env.Data, &cards); err != nil {
		return nil, errors.Join(ErrDecodeResponse, err)
	}
	return cards, nil
}

// Get fetches one card. The request opts out of caches so edits show immediately.
func (c *Client) Get(ctx context.Context, id int) (card.Card, error) {
	if id <= 0 {
		return card.Card{}, ErrInvalidID
	}
	env, err := c.read(ctx, cardPath(id))
	if err != nil {
		return card.Card{}, err
	}
	if isNull(env.Data) {
		return card.Card{}, ErrNotFound
	}
	var out card.Card
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return card.Card{}, errors.Join(ErrDecodeResponse, err)
	}
	return out, nil
}

// Create stores a new card and returns the record echoed by the API, which
// may be zero if the API answers without data.
func (c *Client) Create(ctx context.Context, p card.Payload) (card.Card, error) {
	env, err := c.write(ctx, http.MethodPost, "/card", p)
	if err != nil {
		return card.Card{}, err
	}
	return decodeCard(env.Data), nil
}

// Update replaces card id with p.
func (c *Client) Update(ctx context.Context, id int, p card.Payload) (card.Card, error) {
	if id <= 0 {
		return card.Card{}, ErrInvalidID
	}
	env, err := c.write(ctx, http.MethodPut, cardPath(id), p)
	if err != nil {
		return card.Card{}, err
	}
	out := decodeCard(env.Data)
	if out.ID == 0 {
		out.ID = id
	}
	return out, nil
}

// Delete removes card id.
func (c *Client) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidID
	}
	_, err := c.write(ctx, http.MethodDelete, cardPath(id), nil)
	return err
}

// Ping reports whether the list endpoint answers with a 2xx. It does not retry.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/", nil)
	return err
}

// read performs an idempotent GET, retrying transient failures.
func (c *Client) read(ctx context.Context, path string) (envelope, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.backoff.NextInterval(attempt)
			c.log.DebugContext(ctx, "retrying card api read",
				logger.URL(path),
				logger.Attempt(attempt+1),
				logger.Duration(delay),
				logger.Error(lastErr),
			)
			select {
			case <-ctx.Done():
				return envelope{}, ctx.Err()
			case <-time.After(delay):
			}
		}

		env, err := c.do(ctx, http.MethodGet, path, nil)
		if err == nil {
			return env, nil
		}
		lastErr = err
		if !c.shouldRetry(ctx, err) {
			break
		}
	}
	return envelope{}, lastErr
}

// write performs a single non-idempotent request. Writes are never retried.
// Any 2xx counts as success, even when the body is not an envelope.
func (c *Client) write(ctx context.Context, method, path string, body any) (envelope, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return envelope{}, fmt.Errorf("cardapi: marshal payload: %w", err)
		}
	}
	env, err := c.do(ctx, method, path, payload)
	if errors.Is(err, ErrDecodeResponse) {
		// a 2xx already committed the write; only the echo is lost
		c.log.DebugContext(ctx, "card api write returned no envelope",
			logger.Method(method),
			logger.URL(path),
			logger.Error(err),
		)
		return envelope{}, nil
	}
	if err != nil {
		c.log.WarnContext(ctx, "card api write failed",
			logger.Method(method),
			logger.URL(path),
			logger.Error(err),
		)
	}
	return env, err
}

func (c *Client) shouldRetry(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return retryable(apiErr.StatusCode)
	}
	return errors.Is(err, ErrUnavailable)
}

// do runs one HTTP exchange under the per-attempt timeout and decodes the envelope.
func (c *Client) do(ctx context.Context, method, path string, payload []byte) (envelope, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, c.base+path, body)
	if err != nil {
		return envelope{}, fmt.Errorf("cardapi: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodGet {
		req.Header.Set("Cache-Control", "no-store")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return envelope{}, ctx.Err()
		}
		return envelope{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.DebugContext(ctx, "card api call",
		logger.Method(method),
		logger.URL(path),
		logger.Status(resp.StatusCode),
		logger.Duration(time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return envelope{}, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return env, nil
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return envelope{}, errors.Join(ErrDecodeResponse, err)
	}
	return env, nil
}

// errorMessage prefers the envelope message, then a sanitised body excerpt.
func errorMessage(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && strings.TrimSpace(env.Message) != "" {
		return strings.TrimSpace(env.Message)
	}
	msg := strings.Join(strings.Fields(string(raw)), " ")
	if len(msg) > maxErrorMessage {
		msg = msg[:maxErrorMessage] + "..."
	}
	return msg
}

func decodeCard(data json.RawMessage) card.Card {
	var out card.Card
	if isNull(data) || data[0] != '{' {
		return out
	}
	_ = json.Unmarshal(data, &out)
	return out
}

func isNull(data json.RawMessage) bool {
	data = bytes.TrimSpace(data)
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}

func cardPath(id int) string {
	return "/card/" + strconv.Itoa(id)
}
