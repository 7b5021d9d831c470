package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/marketstack/internal/constants"
	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// Client executes requests against the API. Every status code is returned as
// a Response; only transport failures are errors.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	headers      map[string]string
	cookies      []*http.Cookie
	userAgent    string
	timeout      time.Duration
	logger       marketstack.Logger
	debug        bool
	interceptors *marketstack.InterceptorChain
}

// Request is one outgoing call. Path is relative to the base URL and already
// has its path parameters substituted.
type Request struct {
	Endpoint string
	Method   string
	Path     string
	Query    url.Values
	Headers  map[string]string
}

// Response is the raw outcome of a call.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
	Duration   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output and retry diagnostics.
func WithLogger(logger marketstack.Logger) Option {
	return func(c *Client) {
		c.logger = logger
		if logger != nil {
			c.httpClient.Logger = &leveledLogger{logger: logger}
		}
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRetryConfig enables retries for connection errors, 429 and 5xx.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax

		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithTimeout bounds each call. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHeaders adds headers sent with every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithCookies adds cookies sent with every request.
func WithCookies(cookies []*http.Cookie) Option {
	return func(c *Client) {
		c.cookies = append(c.cookies, cookies...)
	}
}

// WithSkipTLSVerify disables certificate verification.
func WithSkipTLSVerify(skip bool) Option {
	return func(c *Client) {
		if !skip {
			return
		}

		transport := cleanhttp.DefaultPooledTransport()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 -- explicit opt-in
		c.httpClient.HTTPClient.Transport = transport
	}
}

// WithInterceptors sets the interceptor chain run around every request.
func WithInterceptors(chain *marketstack.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport for baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = cleanhttp.DefaultPooledClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.ErrorHandler = passthroughStatus
	retryClient.Logger = nil

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: retryClient,
		headers:    make(map[string]string),
		userAgent:  constants.DefaultUserAgent,
		timeout:    constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes req.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	intercepted := &marketstack.Request{
		Endpoint: req.Endpoint,
		Method:   req.Method,
		Path:     req.Path,
		Query:    cloneValues(req.Query),
		Headers:  c.buildHeaders(req.Headers),
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err //nolint:wrapcheck // chain already adds context
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	fullURL := c.baseURL + intercepted.Path
	if len(intercepted.Query) > 0 {
		fullURL += "?" + intercepted.Query.Encode()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, intercepted.Method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = intercepted.Headers
	for _, cookie := range c.cookies {
		httpReq.AddCookie(cookie)
	}

	c.logRequest(intercepted)

	start := time.Now()
	resp, doErr := c.httpClient.Do(httpReq)

	var response *Response
	if doErr == nil {
		response, doErr = readResponse(resp, start)
	}

	raw := &marketstack.RawResponse{Duration: time.Since(start), Error: doErr}
	if response != nil {
		raw.StatusCode = response.StatusCode
		raw.Headers = response.Headers
		raw.Body = response.Body
	}

	interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, raw)

	if doErr != nil {
		c.logError(intercepted, doErr)

		return nil, fmt.Errorf("executing request: %w", doErr)
	}

	c.logResponse(intercepted, response)

	if interceptErr != nil {
		return response, interceptErr //nolint:wrapcheck // chain already adds context
	}

	return response, nil
}

// Get executes a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// passthroughStatus returns the last response unchanged once retries are
// exhausted. Only failures without a response are errors.
func passthroughStatus(resp *http.Response, err error, _ int) (*http.Response, error) {
	if resp != nil {
		return resp, nil
	}

	return nil, err
}

func readResponse(resp *http.Response, start time.Time) (*Response, error) {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Headers:    resp.Header,
		Duration:   time.Since(start),
	}, nil
}

func (c *Client) buildHeaders(extra map[string]string) http.Header {
	headers := make(http.Header)
	headers.Set("Accept", "application/json")
	headers.Set("User-Agent", c.userAgent)

	for k, v := range c.headers {
		headers.Set(k, v)
	}

	for k, v := range extra {
		headers.Set(k, v)
	}

	return headers
}

func (c *Client) logRequest(req *marketstack.Request) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"endpoint": req.Endpoint,
		"method":   req.Method,
		"url":      c.redactedURL(req),
	})
}

func (c *Client) logResponse(req *marketstack.Request, resp *Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"endpoint":    req.Endpoint,
		"status_code": resp.StatusCode,
		"duration":    resp.Duration.String(),
		"bytes":       len(resp.Body),
	})
}

func (c *Client) logError(req *marketstack.Request, err error) {
	if c.logger == nil {
		return
	}

	c.logger.Error("HTTP Request failed", map[string]interface{}{
		"endpoint": req.Endpoint,
		"url":      c.redactedURL(req),
		"error":    err.Error(),
	})
}

func (c *Client) redactedURL(req *marketstack.Request) string {
	if len(req.Query) == 0 {
		return c.baseURL + req.Path
	}

	return c.baseURL + req.Path + "?" + marketstack.RedactQuery(req.Query)
}

func cloneValues(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for k, v := range values {
		out[k] = append([]string(nil), v...)
	}

	return out
}
