package mock

/*
package mock returns Caller implementations that replay scripted
responses and record the calls made through them.

This is useful in tests, when you don't need a real daemon but want a
high level of control over the responses (eg. error handling), or if you
just want to record the calls to verify in your tests.

For real clients, you probably want the "http" package.
*/

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	vsync "github.com/verus-go/verusrpc/libs/sync"
	"github.com/verus-go/verusrpc/rpc/client"
	rpctypes "github.com/verus-go/verusrpc/rpc/jsonrpc/types"
)

// Call is used by recorders to save a call and response.
// It can also be used to configure mock responses.
type Call struct {
	Name     string
	Args     any
	Response any
	Error    error
}

// GetResponse will generate the appropriate response for us, when
// using the Call struct to configure a Mock handler.
//
// When configuring a response, if only one of Response or Error is
// set then that will always be returned. If both are set, then
// we return Response if the Args match the set args, Error otherwise.
func (c Call) GetResponse(args any) (any, error) {
	// handle the case with no response
	if c.Response == nil {
		if c.Error == nil {
			panic("Misconfigured call, you must set either Response or Error")
		}
		return nil, c.Error
	}
	// response without error
	if c.Error == nil {
		return c.Response, nil
	}
	// have both, we must check args....
	if reflect.DeepEqual(args, c.Args) {
		return c.Response, nil
	}
	return nil, c.Error
}

// Caller replays the Call configured for each method name. Methods without
// a configured Call fail with the daemon's "Method not found" error. Every
// call is recorded.
type Caller struct {
	mtx       vsync.Mutex
	responses map[string]Call
	calls     []Call
}

var _ client.Caller = (*Caller)(nil)

// NewCaller returns a Caller answering with responses, keyed by method.
func NewCaller(responses map[string]Call) *Caller {
	if responses == nil {
		responses = make(map[string]Call)
	}
	return &Caller{responses: responses}
}

// SetResponse configures the answer to method.
func (m *Caller) SetResponse(method string, call Call) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.responses[method] = call
}

// Calls returns a copy of the recorded calls.
func (m *Caller) Calls() []Call {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return append([]Call(nil), m.calls...)
}

// Call implements client.Caller.
func (m *Caller) Call(_ context.Context, method string, params []any, result any) (any, error) {
	m.mtx.Lock()
	call, ok := m.responses[method]
	m.mtx.Unlock()

	var (
		res any
		err error
	)
	if ok {
		res, err = call.GetResponse(params)
	} else {
		err = &rpctypes.RPCError{Code: rpctypes.CodeMethodNotFound, Message: "Method not found"}
	}

	m.mtx.Lock()
	m.calls = append(m.calls, Call{Name: method, Args: params, Response: res, Error: err})
	m.mtx.Unlock()

	if err != nil {
		return nil, err
	}
	return decodeInto(res, result)
}

// decodeInto round-trips res through JSON so that result receives what a
// real daemon reply would have produced.
func decodeInto(res, result any) (any, error) {
	raw, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("mock response: %w", err)
	}
	if result == nil {
		return json.RawMessage(raw), nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(result); err != nil {
		return nil, fmt.Errorf("mock response into %T: %w", result, err)
	}
	return result, nil
}

// CallRecorder can wrap another type (Caller, full client)
// and record the calls
type CallRecorder struct {
	Client client.Caller

	mtx   vsync.Mutex
	calls []Call
}

var _ client.Caller = (*CallRecorder)(nil)

func NewCallRecorder(c client.Caller) *CallRecorder {
	return &CallRecorder{Client: c}
}

// Calls returns a copy of the recorded calls.
func (r *CallRecorder) Calls() []Call {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]Call(nil), r.calls...)
}

func (r *CallRecorder) Call(ctx context.Context, method string, params []any, result any) (any, error) {
	res, err := r.Client.Call(ctx, method, params, result)
	r.mtx.Lock()
	r.calls = append(r.calls, Call{Name: method, Args: params, Response: res, Error: err})
	r.mtx.Unlock()
	return res, err
}
