package membercrm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
)

const (
	Version = "0.3.0"

	// DefaultAPIPath is appended to an instance URL obtained from a
	// CredentialProvider.
	DefaultAPIPath = "services/apexrest/crm/v1/"

	userAgent     = "go-membercrm/" + Version
	mediaTypeJSON = "application/json"

	headerRateLimit     = "X-RateLimit-Limit"
	headerRateRemaining = "X-RateLimit-Remaining"
	headerRateReset     = "X-RateLimit-Reset"
	headerLimitInfo     = "Sforce-Limit-Info"
	headerNextCursor    = "X-Next-Cursor"
	headerRequestID     = "X-Request-Id"
)

// CredentialProvider supplies the bearer token and the instance base URL
// the CRM should be reached at. Acquiring and refreshing tokens is up to
// the implementation.
type CredentialProvider interface {
	Credentials(ctx context.Context) (accessToken, instanceURL string, err error)
}

// StaticCredentials is a CredentialProvider for a fixed token.
type StaticCredentials struct {
	AccessToken string
	InstanceURL string
}

// Credentials implements CredentialProvider.
func (s StaticCredentials) Credentials(context.Context) (string, string, error) {
	return s.AccessToken, s.InstanceURL, nil
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger used for request and pagination debug output.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.UserAgent = ua
		}
	}
}

// WithDefaultPageSize sets the page size used when list options leave it
// unset.
func WithDefaultPageSize(size int) ClientOption {
	return func(c *Client) {
		if size > 0 {
			c.DefaultPageSize = size
		}
	}
}

// NewClient returns a new CRM API client. If a nil httpClient is provided,
// a new http.Client will be used. address is the API base URL; a trailing
// slash is added when missing.
func NewClient(httpClient *http.Client, address, bearerToken string, opts ...ClientOption) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	if !strings.HasSuffix(address, "/") {
		address += "/"
	}
	baseURL, err := url.Parse(address)
	if err != nil {
		return nil, fmt.Errorf("invalid address: %w", err)
	}

	c := &Client{
		client:          httpClient,
		Address:         baseURL,
		UserAgent:       userAgent,
		BearerToken:     bearerToken,
		DefaultPageSize: DefaultPageSize,
		logger:          slog.New(slog.DiscardHandler),
	}
	c.common.client = c
	c.Members = (*MembersService)(&c.common)
	c.Seekers = (*SeekersService)(&c.common)

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// NewClientWithCredentials asks provider for a token and instance URL and
// returns a client for that instance's API.
func NewClientWithCredentials(ctx context.Context, httpClient *http.Client, provider CredentialProvider, opts ...ClientOption) (*Client, error) {
	if provider == nil {
		return nil, errors.New("credential provider is nil")
	}
	token, instanceURL, err := provider.Credentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("get credentials: %w", err)
	}
	if instanceURL == "" {
		return nil, errors.New("credential provider returned an empty instance URL")
	}
	if !strings.HasSuffix(instanceURL, "/") {
		instanceURL += "/"
	}
	return NewClient(httpClient, instanceURL+DefaultAPIPath, token, opts...)
}

// NewRequest creates an API request. A relative URL can be provided in
// urlStr, in which case it is resolved relative to the Address of the
// Client. Relative URLs should always be specified without a preceding
// slash. If specified, the value pointed to by body is JSON encoded and
// included as the request body.
func (c *Client) NewRequest(method, urlStr string, body any) (*http.Request, error) {
	if !strings.HasSuffix(c.Address.Path, "/") {
		return nil, fmt.Errorf("Address must have a trailing slash, but %q does not", c.Address)
	}

	u, err := c.Address.Parse(urlStr)
	if err != nil {
		return nil, err
	}

	var buf io.ReadWriter
	if body != nil {
		buf = &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, u.String(), buf)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", mediaTypeJSON)
	}
	req.Header.Set("Accept", mediaTypeJSON)
	req.Header.Set(headerRequestID, uuid.NewString())
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if c.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.BearerToken)
	}

	return req, nil
}

// Do sends an API request and returns the API response. The API response is
// JSON decoded and stored in the value pointed to by v, or returned as an
// error if an API error has occurred. Do does not retry.
func (c *Client) Do(ctx context.Context, req *http.Request, v any) (*Response, error) {
	if ctx == nil {
		return nil, errors.New("context must be non-nil")
	}
	req = req.WithContext(ctx)

	c.logger.Debug("sending request",
		"method", req.Method, "url", sanitizeURL(req.URL).String(), "request_id", req.Header.Get(headerRequestID))

	resp, err := c.client.Do(req)
	if err != nil {
		// If we got an error, and the context has been canceled,
		// the context's error is probably more useful.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		return nil, err
	}
	defer resp.Body.Close()

	response := newResponse(resp)

	c.rateMu.Lock()
	c.rate = response.Rate
	c.rateMu.Unlock()

	if err := CheckResponse(resp); err != nil {
		return response, err
	}

	if v != nil {
		decErr := json.NewDecoder(resp.Body).Decode(v)
		if decErr == io.EOF {
			decErr = nil // ignore EOF errors caused by empty response body
		}
		if decErr != nil {
			return response, decErr
		}
	}

	return response, nil
}

// Fetch performs a raw call and returns the undecoded body.
func (c *Client) Fetch(ctx context.Context, fr *FetchRequest) (json.RawMessage, *Response, error) {
	if fr == nil {
		return nil, nil, errors.New("fetch request is nil")
	}
	method := fr.Method
	if method == "" {
		method = http.MethodGet
	}

	u := fr.Endpoint
	if len(fr.Query) > 0 {
		u += "?" + fr.Query.Encode()
	}

	req, err := c.NewRequest(method, u, nil)
	if err != nil {
		return nil, nil, err
	}

	var raw json.RawMessage
	resp, err := c.Do(ctx, req, &raw)
	if err != nil {
		return nil, resp, err
	}
	return raw, resp, nil
}

// Rate returns the rate limit snapshot from the most recent response.
func (c *Client) Rate() Rate {
	c.rateMu.Lock()
	defer c.rateMu.Unlock()
	return c.rate
}

// fetchEnvelope fetches endpoint with opts encoded as the query string and
// resolves the body into an Envelope.
func (c *Client) fetchEnvelope(ctx context.Context, endpoint string, opts any, legacyKey string) (*Envelope, *Response, error) {
	q, err := query.Values(opts)
	if err != nil {
		return nil, nil, err
	}

	raw, resp, err := c.Fetch(ctx, &FetchRequest{Endpoint: endpoint, Method: http.MethodGet, Query: q})
	if err != nil {
		return nil, resp, err
	}

	env, err := ResolveEnvelope(raw, legacyKey)
	if err != nil {
		return nil, resp, err
	}

	// Older endpoints only send the cursor as a header.
	if env.Pagination == nil && resp.NextCursor != "" {
		env.Pagination = &PageInfo{NextCursor: String(resp.NextCursor)}
	}
	resp.populatePagination(env)

	return env, resp, nil
}

// newWalker returns a PageWalker that shares the client's logger and page
// size default.
func (c *Client) newWalker(fetch PageFetchFunc) *PageWalker {
	return NewPageWalker(fetch, WithWalkerLogger(c.logger), WithWalkerPageSize(c.DefaultPageSize))
}

// newResponse creates a new Response for the provided http.Response.
func newResponse(r *http.Response) *Response {
	response := &Response{Response: r}
	response.NextCursor = parseCursor(r)
	response.Rate = parseRate(r)
	return response
}

func (r *Response) populatePagination(env *Envelope) {
	if r == nil || env == nil || env.Pagination == nil {
		return
	}
	r.Pagination = env.Pagination
	if next := StringValue(env.Pagination.NextCursor); next != "" {
		r.NextCursor = next
	}
	r.PreviousCursor = StringValue(env.Pagination.PreviousCursor)
}

// parseCursor extracts the next-page cursor header.
func parseCursor(r *http.Response) string {
	return r.Header.Get(headerNextCursor)
}

// parseRate parses the rate related headers. Generic X-RateLimit headers
// take precedence over the CRM's own "api-usage=used/limit" header.
func parseRate(r *http.Response) Rate {
	var rate Rate
	if limit := r.Header.Get(headerRateLimit); limit != "" {
		rate.Limit, _ = strconv.Atoi(limit)
		if remaining := r.Header.Get(headerRateRemaining); remaining != "" {
			rate.Remaining, _ = strconv.Atoi(remaining)
		}
		if reset := r.Header.Get(headerRateReset); reset != "" {
			if t, err := time.Parse(time.RFC3339, reset); err == nil {
				rate.Reset = t
			}
		}
		return rate
	}

	info := r.Header.Get(headerLimitInfo)
	for _, part := range strings.Split(info, ",") {
		usage, ok := strings.CutPrefix(strings.TrimSpace(part), "api-usage=")
		if !ok {
			continue
		}
		used, limit, ok := strings.Cut(usage, "/")
		if !ok {
			continue
		}
		u, errU := strconv.Atoi(used)
		l, errL := strconv.Atoi(limit)
		if errU == nil && errL == nil {
			rate.Limit = l
			rate.Remaining = max(l-u, 0)
		}
	}
	return rate
}

// addOptions adds the parameters in opts as URL query parameters to s. opts
// must be a struct whose fields may contain "url" tags.
func addOptions(s string, opts any) (string, error) {
	v := reflect.ValueOf(opts)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return s, nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return s, err
	}

	qs, err := query.Values(opts)
	if err != nil {
		return s, err
	}

	u.RawQuery = qs.Encode()
	return u.String(), nil
}
