package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/verus-go/verusrpc/libs/log"
	"github.com/verus-go/verusrpc/rpc/jsonrpc/types"
)

const (
	protoHTTP  = "http"
	protoHTTPS = "https"
)

// Parsed URL structure
type parsedURL struct {
	url.URL
}

// Parse URL and set defaults
func newParsedURL(remoteAddr string) (*parsedURL, error) {
	if !strings.Contains(remoteAddr, "://") {
		remoteAddr = protoHTTP + "://" + remoteAddr
	}

	u, err := url.Parse(remoteAddr)
	if err != nil {
		return nil, err
	}

	switch u.Scheme {
	case protoHTTP, protoHTTPS:
	default:
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	if u.Host == "" {
		return nil, fmt.Errorf("missing host in %q", remoteAddr)
	}

	return &parsedURL{*u}, nil
}

// GetTrimmedURL returns the address without user info, always ending in a
// path.
func (u parsedURL) GetTrimmedURL() string {
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return u.Scheme + "://" + u.Host + path
}

//-------------------------------------------------------------

// Caller implementers can facilitate calling the JSON-RPC endpoint.
type Caller interface {
	Call(ctx context.Context, method string, params []any, result any) (any, error)
}

// Client is a JSON-RPC client which sends positional-parameter requests to
// a daemon over HTTP(S) with Basic authentication.
//
// Request/response format is JSON-RPC 1.0 as spoken by bitcoind and its
// descendants.
//
// Client is safe for concurrent use by multiple goroutines.
type Client struct {
	address  string
	username string
	password string
	version  string
	timeout  time.Duration

	client  *http.Client
	logger  log.Logger
	metrics *Metrics

	nextReqID atomic.Int64
}

var _ Caller = (*Client)(nil)

// Option sets an optional parameter on the Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used to send requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout bounds every request, including reading the response body.
// Zero means no timeout beyond the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics sets the metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithBasicAuth sets the credentials sent with every request. They take
// precedence over credentials embedded in the remote address.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithJSONRPCVersion overrides the "jsonrpc" member of requests.
func WithJSONRPCVersion(version string) Option {
	return func(c *Client) { c.version = version }
}

// DefaultHTTPClient is used to create an http client with some default
// parameters.
func DefaultHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			// Set to true to prevent GZIP-bomb DoS attacks
			DisableCompression: true,
		},
	}
}

// New returns a Client pointed at the given address, e.g.
// "http://127.0.0.1:18843". A missing scheme defaults to http. User info in
// the address is used for Basic authentication unless WithBasicAuth is
// given.
//
// An error is returned on invalid remote.
func New(remote string, opts ...Option) (*Client, error) {
	parsedURL, err := newParsedURL(remote)
	if err != nil {
		return nil, ErrInvalidAddress{Addr: remote, Source: err}
	}

	c := &Client{
		address: parsedURL.GetTrimmedURL(),
		version: types.JSONRPCVersion,
		client:  DefaultHTTPClient(),
		logger:  log.NewNopLogger(),
		metrics: NopMetrics(),
	}
	if parsedURL.User != nil {
		c.username = parsedURL.User.Username()
		c.password, _ = parsedURL.User.Password()
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.timeout > 0 {
		hc := *c.client
		hc.Timeout = c.timeout
		c.client = &hc
	}

	return c, nil
}

// Address returns the endpoint requests are sent to.
func (c *Client) Address() string { return c.address }

// Call issues a POST HTTP request and decodes the result into result. When
// result is nil, the raw result is returned as a json.RawMessage. Numbers
// decoded into interface values are json.Number.
func (c *Client) Call(ctx context.Context, method string, params []any, result any) (any, error) {
	raw, err := c.CallRaw(ctx, method, params)
	if err != nil {
		return nil, err
	}

	if result == nil {
		return raw, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(result); err != nil {
		return nil, ErrProtocol{
			Description: fmt.Sprintf("cannot decode %s result into %T", method, result),
			Source:      err,
		}
	}

	return result, nil
}

// CallRaw issues a POST HTTP request and returns the result member of the
// response exactly as the daemon sent it.
func (c *Client) CallRaw(ctx context.Context, method string, params []any) (result json.RawMessage, err error) {
	if method == "" {
		return nil, ErrInvalidMethod
	}

	id := c.nextRequestID()
	start := time.Now()
	defer func() {
		outcome := outcomeOf(err)
		elapsed := time.Since(start)
		c.metrics.RequestsTotal.With("method", method, "outcome", outcome).Add(1)
		c.metrics.RequestDurationSeconds.With("method", method).Observe(elapsed.Seconds())
		c.logger.Debug("rpc call",
			"method", method,
			"id", id,
			"duration", elapsed,
			"outcome", outcome)
	}()

	request, err := types.ParamsToRequest(id, method, params)
	if err != nil {
		return nil, ErrMarshalRequest{Source: err}
	}
	request.JSONRPC = c.version

	requestBytes, err := json.Marshal(request)
	if err != nil {
		return nil, ErrMarshalRequest{Source: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.address, bytes.NewReader(requestBytes))
	if err != nil {
		return nil, ErrCreateRequest{Source: err}
	}
	req.Header.Set("Content-Type", "text/plain")
	if c.username != "" || c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	httpResponse, err := c.client.Do(req)
	if err != nil {
		return nil, ErrTransport{Source: err}
	}
	defer httpResponse.Body.Close()

	responseBytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, ErrTransport{StatusCode: httpResponse.StatusCode, Source: fmt.Errorf("failed to read response body: %w", err)}
	}

	result, err = unmarshalResponseBytes(httpResponse.StatusCode, responseBytes, id)
	if IsProtocolError(err) {
		c.logger.Debug("malformed response",
			"method", method,
			"id", id,
			"status", httpResponse.StatusCode,
			"body", log.NewLazyBlock(responseBytes, 512))
	}
	return result, err
}

func (c *Client) nextRequestID() types.JSONRPCIntID {
	return types.JSONRPCIntID(c.nextReqID.Add(1))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case IsRPCError(err):
		return outcomeRPCError
	case IsTransportError(err):
		return outcomeTransport
	case IsProtocolError(err):
		return outcomeProtocol
	default:
		return outcomeInvalidParams
	}
}
