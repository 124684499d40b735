// Package server implements the daemon side of the JSON-RPC 1.0 protocol
// spoken by verusd. It is used to stand up fake daemons in tests.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/verus-go/verusrpc/libs/log"
	types "github.com/verus-go/verusrpc/rpc/jsonrpc/types"
)

// RPCFunc answers a single call. Returning a *types.RPCError (or
// types.RPCError) sends it to the caller verbatim; any other error becomes an
// internal error.
type RPCFunc func(params json.RawMessage) (any, error)

// Router resolves a method name to its RPCFunc.
type Router interface {
	Route(method string) (RPCFunc, bool)
}

// FuncMap is a fixed Router.
type FuncMap map[string]RPCFunc

func (m FuncMap) Route(method string) (RPCFunc, bool) {
	f, ok := m[method]
	return f, ok
}

// NewHandler returns an http.Handler that decodes a JSON-RPC request, routes
// it and writes the reply the way verusd does: 404 for an unknown method, 500
// for a failed call and 200 otherwise.
func NewHandler(router Router, logger log.Logger) http.Handler {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req types.RPCRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			res := types.NewRPCErrorResponse(nil, types.CodeParseError, fmt.Sprintf("Parse error: %v", err))
			writeOrLog(logger, WriteRPCResponseHTTP(w, http.StatusInternalServerError, res))
			return
		}
		if req.Method == "" {
			res := types.NewRPCErrorResponse(req.ID, types.CodeInvalidRequest, "Method must be a string")
			writeOrLog(logger, WriteRPCResponseHTTP(w, http.StatusBadRequest, res))
			return
		}

		f, ok := router.Route(req.Method)
		if !ok {
			writeOrLog(logger, WriteRPCResponseHTTP(w, http.StatusNotFound, types.RPCMethodNotFoundError(req.ID)))
			return
		}

		result, err := f(req.Params)
		if err != nil {
			writeOrLog(logger, WriteRPCResponseHTTP(w, http.StatusInternalServerError, errorResponse(req, err)))
			return
		}
		writeOrLog(logger, WriteRPCResponseHTTP(w, http.StatusOK, types.NewRPCSuccessResponse(req.ID, result)))
	})
	return RecoverAndLogHandler(h, logger)
}

func errorResponse(req types.RPCRequest, err error) types.RPCResponse {
	var rpcErr *types.RPCError
	if errors.As(err, &rpcErr) {
		return types.NewRPCErrorResponse(req.ID, rpcErr.Code, rpcErr.Message)
	}
	var rpcErrVal types.RPCError
	if errors.As(err, &rpcErrVal) {
		return types.NewRPCErrorResponse(req.ID, rpcErrVal.Code, rpcErrVal.Message)
	}
	return types.NewRPCErrorResponse(req.ID, types.CodeInternalError, err.Error())
}

func writeOrLog(logger log.Logger, err error) {
	if err != nil {
		logger.Error("failed to write response", "err", err)
	}
}

// WriteRPCResponseHTTP marshals res as JSON and writes it to w with the given
// status code.
func WriteRPCResponseHTTP(w http.ResponseWriter, httpCode int, res types.RPCResponse) error {
	jsonBytes, err := json.Marshal(res)
	if err != nil {
		return ErrMarshalResponse{Source: err}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	_, err = w.Write(jsonBytes)
	return err
}

//-----------------------------------------------------------------------------

// RecoverAndLogHandler wraps an HTTP handler, adding error logging.
// If the inner function panics, the outer function recovers, logs, sends an
// HTTP 500 error response.
func RecoverAndLogHandler(handler http.Handler, logger log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rww := &responseWriterWrapper{-1, w}
		begin := time.Now()

		defer func() {
			// Panics while recovering are reported without the logger.
			if e := recover(); e != nil {
				fmt.Fprintf(os.Stderr, "Panic during RPC panic recovery: %v\n%v\n", e, string(debug.Stack()))
				w.WriteHeader(http.StatusInternalServerError)
			}
		}()

		defer func() {
			if e := recover(); e != nil {
				logger.Error("panic in RPC HTTP handler", "err", e, "stack", string(debug.Stack()))

				res := types.NewRPCErrorResponse(nil, types.CodeInternalError, fmt.Sprintf("%v", e))
				writeOrLog(logger, WriteRPCResponseHTTP(rww, http.StatusInternalServerError, res))
			}

			if rww.Status == -1 {
				rww.Status = http.StatusOK
			}
			logger.Debug("served RPC HTTP response",
				"method", r.Method,
				"url", r.URL,
				"status", rww.Status,
				"duration", time.Since(begin),
				"remoteAddr", r.RemoteAddr,
			)
		}()

		handler.ServeHTTP(rww, r)
	})
}

// Remember the status for logging
type responseWriterWrapper struct {
	Status int
	http.ResponseWriter
}

func (w *responseWriterWrapper) WriteHeader(status int) {
	w.Status = status
	w.ResponseWriter.WriteHeader(status)
}
