package motion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/roivaz/motion-mcp/internal/logging"
)

const (
	DefaultBaseURL = "https://api.usemotion.com/v1"
	apiKeyHeader   = "X-API-Key"
)

type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration // zero leaves requests unbounded
	HTTPClient *http.Client
	Logger     logging.Logger
}

// Client talks to the Motion REST API. It holds no per-request state and is
// safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	to      time.Duration
	http    *http.Client
	log     logging.Logger
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		to:      cfg.Timeout,
		http:    httpClient,
		log:     cfg.Logger.WithName("motion"),
	}
}

type requestOptions struct {
	method  string
	body    any
	headers http.Header
}

type RequestOption func(*requestOptions)

func WithMethod(method string) RequestOption {
	return func(o *requestOptions) { o.method = method }
}

// WithBody JSON-encodes v as the request body.
func WithBody(v any) RequestOption {
	return func(o *requestOptions) { o.body = v }
}

// WithHeader sets a header, replacing the client defaults for the same name.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) { o.headers.Set(key, value) }
}

// Do issues a single request to <baseURL>/<endpoint> and returns the parsed
// JSON body. endpoint may carry a raw query string; it is not re-escaped.
func (c *Client) Do(ctx context.Context, endpoint string, opts ...RequestOption) (gjson.Result, error) {
	o := requestOptions{method: http.MethodGet, headers: http.Header{}}
	for _, opt := range opts {
		opt(&o)
	}

	var body io.Reader
	if o.body != nil {
		payload, err := json.Marshal(o.body)
		if err != nil {
			return gjson.Result{}, fmt.Errorf("encode %s body: %w", endpoint, err)
		}
		body = bytes.NewReader(payload)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, o.method, c.baseURL+"/"+endpoint, body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("build request for %s: %w", endpoint, err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	for key, values := range o.headers {
		req.Header[key] = values
	}

	start := time.Now()
	c.log.Debug("sending request", "method", o.method, "endpoint", endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, c.annotateError(fmt.Errorf("%s %s: %w", o.method, endpoint, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read %s response: %w", endpoint, err)
	}
	c.log.Debug("received response", "method", o.method, "endpoint", endpoint, "status", resp.StatusCode, "elapsed", time.Since(start).String())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, &UpstreamError{
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
			Endpoint:   endpoint,
		}
	}
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, &DecodeError{Endpoint: endpoint, Err: errors.New("malformed JSON body")}
	}
	return gjson.ParseBytes(raw), nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.to <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.to)
}

func (c *Client) annotateError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) && c.to > 0 {
		return fmt.Errorf("motion call timed out after %s: %w", c.to, err)
	}
	return err
}

// statusText returns the reason phrase sent by the server, falling back to
// the canonical text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
