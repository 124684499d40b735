// Package rpctest provides a scripted verusd stand-in for tests.
package rpctest

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verus-go/verusrpc/libs/log"
	"github.com/verus-go/verusrpc/rpc/jsonrpc/server"
	"github.com/verus-go/verusrpc/rpc/jsonrpc/types"
)

// Request is a call the daemon received.
type Request struct {
	Method   string
	Params   string
	User     string
	Password string
}

// Daemon answers methods with scripted results or errors. Methods with
// neither fail with "Method not found", like verusd does.
type Daemon struct {
	*httptest.Server

	mtx     sync.Mutex
	results map[string]any
	errors  map[string]*types.RPCError
	seen    []Request
}

// NewDaemon starts a Daemon answering with results. It is closed when t
// finishes.
func NewDaemon(t testing.TB, results map[string]any) *Daemon {
	t.Helper()
	d := &Daemon{
		results: make(map[string]any, len(results)),
		errors:  make(map[string]*types.RPCError),
	}
	for method, res := range results {
		d.results[method] = res
	}

	h := server.NewHandler(d, log.TestingLogger())
	d.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		seen := Request{}
		seen.User, seen.Password, _ = r.BasicAuth()
		var req types.RPCRequest
		if json.Unmarshal(body, &req) == nil {
			seen.Method, seen.Params = req.Method, string(req.Params)
		}
		d.mtx.Lock()
		d.seen = append(d.seen, seen)
		d.mtx.Unlock()

		h.ServeHTTP(w, r)
	}))
	t.Cleanup(d.Close)
	return d
}

// Route implements server.Router.
func (d *Daemon) Route(method string) (server.RPCFunc, bool) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	_, hasResult := d.results[method]
	_, hasErr := d.errors[method]
	if !hasResult && !hasErr {
		return nil, false
	}
	return func(json.RawMessage) (any, error) {
		d.mtx.Lock()
		defer d.mtx.Unlock()
		if rpcErr, ok := d.errors[method]; ok {
			return nil, rpcErr
		}
		return d.results[method], nil
	}, true
}

// SetResult makes method succeed with res.
func (d *Daemon) SetResult(method string, res any) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	delete(d.errors, method)
	d.results[method] = res
}

// SetError makes method fail with the given daemon error.
func (d *Daemon) SetError(method string, code int, msg string) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.errors[method] = &types.RPCError{Code: code, Message: msg}
}

// Requests returns the calls received so far, in order.
func (d *Daemon) Requests() []Request {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return append([]Request(nil), d.seen...)
}

// Params returns the raw params of the latest call to method, or "" if it
// was never called.
func (d *Daemon) Params(method string) string {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	for i := len(d.seen) - 1; i >= 0; i-- {
		if d.seen[i].Method == method {
			return d.seen[i].Params
		}
	}
	return ""
}

// HostPort returns the address the daemon listens on.
func (d *Daemon) HostPort(t testing.TB) (string, int) {
	t.Helper()
	u, err := url.Parse(d.URL)
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)
	return host, p
}
