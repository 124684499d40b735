package client

import (
	"errors"
	"fmt"

	"github.com/verus-go/verusrpc/rpc/jsonrpc/types"
)

// ErrInvalidMethod is returned before any I/O when the method name is empty.
var ErrInvalidMethod = errors.New("method name must be a non-empty string")

type ErrInvalidAddress struct {
	Addr   string
	Source error
}

func (e ErrInvalidAddress) Error() string {
	return fmt.Sprintf("invalid address: %s: %v", e.Addr, e.Source)
}

func (e ErrInvalidAddress) Unwrap() error {
	return e.Source
}

// ErrMarshalRequest is returned when the params cannot be encoded as JSON.
// Nothing is sent.
type ErrMarshalRequest struct {
	Source error
}

func (e ErrMarshalRequest) Error() string {
	return fmt.Sprintf("failed to marshal request: %v", e.Source)
}

func (e ErrMarshalRequest) Unwrap() error {
	return e.Source
}

type ErrCreateRequest struct {
	Source error
}

func (e ErrCreateRequest) Error() string {
	return fmt.Sprintf("failed to create request: %v", e.Source)
}

func (e ErrCreateRequest) Unwrap() error {
	return e.Source
}

// ErrTransport is returned when the HTTP exchange itself fails: the
// connection is refused, the request times out or is canceled, the body
// cannot be read, or the daemon answers with a non-2xx status and no JSON-RPC
// error in the body. StatusCode is zero when no response was received.
type ErrTransport struct {
	StatusCode int
	Source     error
}

func (e ErrTransport) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error (HTTP %d): %v", e.StatusCode, e.Source)
	}
	return fmt.Sprintf("transport error: %v", e.Source)
}

func (e ErrTransport) Unwrap() error {
	return e.Source
}

// ErrProtocol is returned when a reply arrived but is not a usable JSON-RPC
// response.
type ErrProtocol struct {
	Description string
	Source      error
}

func (e ErrProtocol) Error() string {
	if e.Source == nil {
		return fmt.Sprintf("protocol error: %s", e.Description)
	}
	return fmt.Sprintf("protocol error: %s: %v", e.Description, e.Source)
}

func (e ErrProtocol) Unwrap() error {
	return e.Source
}

// IsTransportError reports whether err was caused by the HTTP layer.
func IsTransportError(err error) bool {
	var target ErrTransport
	return errors.As(err, &target)
}

// IsProtocolError reports whether err was caused by a malformed reply.
func IsProtocolError(err error) bool {
	var target ErrProtocol
	return errors.As(err, &target)
}

// IsRPCError reports whether err is an error returned by the daemon.
func IsRPCError(err error) bool {
	var target *types.RPCError
	return errors.As(err, &target)
}
