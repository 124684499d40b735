package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// JSONRPCVersion is the protocol tag sent by default. Bitcoin-family
// daemons speak JSON-RPC 1.0 and ignore the tag otherwise.
const JSONRPCVersion = "1.0"

// a wrapper to emulate a sum type: jsonrpcid = string | int
type jsonrpcid interface {
	isJSONRPCID()
	String() string
}

// JSONRPCStringID a wrapper for JSON-RPC string IDs.
type JSONRPCStringID string

func (JSONRPCStringID) isJSONRPCID()      {}
func (id JSONRPCStringID) String() string { return string(id) }

// JSONRPCIntID a wrapper for JSON-RPC integer IDs.
type JSONRPCIntID int64

func (JSONRPCIntID) isJSONRPCID()      {}
func (id JSONRPCIntID) String() string { return fmt.Sprintf("%d", id) }

// idFromRaw decodes an ID as echoed by the daemon. A missing or null ID
// yields a nil jsonrpcid.
func idFromRaw(raw json.RawMessage) (jsonrpcid, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return JSONRPCStringID(s), nil
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("json-rpc ID (%s) is of unknown type", raw)
		}
		i, err := n.Int64()
		if err != nil {
			return nil, fmt.Errorf("json-rpc ID (%s) is not an integer", raw)
		}
		return JSONRPCIntID(i), nil
	}
}

//----------------------------------------
// REQUEST

// RPCRequest is a single positional-parameter call.
type RPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      jsonrpcid       `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"` // always a JSON array
}

// UnmarshalJSON custom JSON unmarshaling due to jsonrpcid being string or int
func (req *RPCRequest) UnmarshalJSON(data []byte) error {
	unsafeReq := struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params"`
	}{}

	if err := json.Unmarshal(data, &unsafeReq); err != nil {
		return err
	}

	id, err := idFromRaw(unsafeReq.ID)
	if err != nil {
		return err
	}

	req.JSONRPC = unsafeReq.JSONRPC
	req.ID = id
	req.Method = unsafeReq.Method
	req.Params = unsafeReq.Params
	return nil
}

// NewRPCRequest returns a JSON-RPC 1.0 request.
func NewRPCRequest(id jsonrpcid, method string, params json.RawMessage) RPCRequest {
	return RPCRequest{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Method:  method,
		Params:  params,
	}
}

func (req RPCRequest) String() string {
	return fmt.Sprintf("RPCRequest{%s %s/%s}", req.ID, req.Method, req.Params)
}

// ParamsToRequest constructs a new RPCRequest with the given ID, method, and
// positional parameters. nil params are encoded as an empty array.
func ParamsToRequest(id jsonrpcid, method string, params []any) (RPCRequest, error) {
	if params == nil {
		params = []any{}
	}
	payload, err := json.Marshal(params)
	if err != nil {
		return RPCRequest{}, err
	}
	return NewRPCRequest(id, method, payload), nil
}

//----------------------------------------
// RESPONSE

// RPCError is an error reported by the daemon. Code and Message are
// kept verbatim.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (err RPCError) Error() string {
	return fmt.Sprintf("RPC error %v - %s", err.Code, err.Message)
}

var (
	// ErrNotObject is returned when a response body is valid JSON but not an
	// object.
	ErrNotObject = errors.New("response is not a JSON object")
	// ErrEmptyResponse is returned when a response carries neither a result
	// nor an error.
	ErrEmptyResponse = errors.New("response has neither result nor error")
)

// RPCResponse is a decoded daemon reply. Exactly one of Result and Error is
// meaningful: Error is nil for a successful call.
type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc,omitempty"`
	ID      jsonrpcid       `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// UnmarshalJSON decodes a response, tracking which members were present. A
// JSON null result is kept as the literal "null" so that a successful call
// returning null is distinguishable from a missing result.
func (resp *RPCResponse) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return ErrNotObject
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}

	*resp = RPCResponse{}

	if raw, ok := members["jsonrpc"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &resp.JSONRPC); err != nil {
			return fmt.Errorf("jsonrpc: %w", err)
		}
	}

	id, err := idFromRaw(members["id"])
	if err != nil {
		return err
	}
	resp.ID = id

	if raw, ok := members["error"]; ok && !isNull(raw) {
		rpcErr := &RPCError{}
		if err := json.Unmarshal(raw, rpcErr); err != nil {
			return fmt.Errorf("error: %w", err)
		}
		resp.Error = rpcErr
	}

	if raw, ok := members["result"]; ok {
		resp.Result = raw
	}

	if resp.Error == nil && resp.Result == nil {
		return ErrEmptyResponse
	}

	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// NewRPCSuccessResponse returns a response carrying res as its result.
func NewRPCSuccessResponse(id jsonrpcid, res any) RPCResponse {
	result, err := json.Marshal(res)
	if err != nil {
		return NewRPCErrorResponse(id, -32603, fmt.Sprintf("error marshaling response: %v", err))
	}
	return RPCResponse{ID: id, Result: result}
}

// NewRPCErrorResponse returns a response carrying a daemon error.
func NewRPCErrorResponse(id jsonrpcid, code int, msg string) RPCResponse {
	return RPCResponse{
		ID:    id,
		Error: &RPCError{Code: code, Message: msg},
	}
}

func (resp RPCResponse) String() string {
	if resp.Error == nil {
		return fmt.Sprintf("RPCResponse{%s %s}", resp.ID, resp.Result)
	}
	return fmt.Sprintf("RPCResponse{%s %v}", resp.ID, resp.Error)
}

// Standard error codes, as used by bitcoind-derived daemons.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
	CodeMiscError      = -1
	CodeInvalidAddress = -5
	CodeInWarmup       = -28
)

// RPCMethodNotFoundError is the reply to an unknown method.
func RPCMethodNotFoundError(id jsonrpcid) RPCResponse {
	return NewRPCErrorResponse(id, CodeMethodNotFound, "Method not found")
}

// RPCInvalidParamsError is the reply to a call with unusable params.
func RPCInvalidParamsError(id jsonrpcid, err error) RPCResponse {
	return NewRPCErrorResponse(id, CodeInvalidParams, err.Error())
}
