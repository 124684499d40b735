package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type SampleResult struct {
	Value string
}

type responseTest struct {
	id       jsonrpcid
	expected string
}

var responseTests = []responseTest{
	{JSONRPCStringID("1"), `"1"`},
	{JSONRPCStringID("alphabet"), `"alphabet"`},
	{JSONRPCStringID(""), `""`},
	{JSONRPCStringID("àáâ"), `"àáâ"`},
	{JSONRPCIntID(-1), "-1"},
	{JSONRPCIntID(0), "0"},
	{JSONRPCIntID(1), "1"},
	{JSONRPCIntID(100), "100"},
}

func TestResponses(t *testing.T) {
	assert := assert.New(t)
	for _, tt := range responseTests {
		jsonid := tt.id
		a := NewRPCSuccessResponse(jsonid, &SampleResult{"hello"})
		b, err := json.Marshal(a)
		require.NoError(t, err)
		s := fmt.Sprintf(`{"id":%v,"result":{"Value":"hello"},"error":null}`, tt.expected)
		assert.Equal(s, string(b))

		g := RPCMethodNotFoundError(jsonid)
		h, err := json.Marshal(g)
		require.NoError(t, err)
		i := fmt.Sprintf(`{"id":%v,"result":null,"error":{"code":-32601,"message":"Method not found"}}`, tt.expected)
		assert.Equal(i, string(h))
	}
}

func TestUnmarshallResponses(t *testing.T) {
	assert := assert.New(t)
	for _, tt := range responseTests {
		response := &RPCResponse{}
		err := json.Unmarshal(
			[]byte(fmt.Sprintf(`{"result":{"Value":"hello"},"error":null,"id":%v}`, tt.expected)),
			response,
		)
		require.NoError(t, err)
		a := NewRPCSuccessResponse(tt.id, &SampleResult{"hello"})
		assert.Equal(a, *response)
	}

	response := &RPCResponse{}
	err := json.Unmarshal([]byte(`{"result":{"Value":"hello"},"id":true}`), response)
	require.Error(t, err)

	err = json.Unmarshal([]byte(`{"result":1,"id":1.5}`), response)
	require.Error(t, err)
}

func TestUnmarshalResponseShape(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr error
		check   func(t *testing.T, resp RPCResponse)
	}{
		{
			name:    "array body",
			body:    `[1,2,3]`,
			wantErr: ErrNotObject,
		},
		{
			name:    "string body",
			body:    `"hello"`,
			wantErr: ErrNotObject,
		},
		{
			name:    "neither result nor error",
			body:    `{"id":1}`,
			wantErr: ErrEmptyResponse,
		},
		{
			name:    "null error and no result",
			body:    `{"error":null,"id":1}`,
			wantErr: ErrEmptyResponse,
		},
		{
			name: "null result is a result",
			body: `{"result":null,"error":null,"id":1}`,
			check: func(t *testing.T, resp RPCResponse) {
				assert.Nil(t, resp.Error)
				assert.Equal(t, "null", string(resp.Result))
			},
		},
		{
			name: "error with null id",
			body: `{"result":null,"error":{"code":-28,"message":"Loading block index..."},"id":null}`,
			check: func(t *testing.T, resp RPCResponse) {
				require.NotNil(t, resp.Error)
				assert.Equal(t, CodeInWarmup, resp.Error.Code)
				assert.Equal(t, "Loading block index...", resp.Error.Message)
				assert.Nil(t, resp.ID)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var resp RPCResponse
			err := json.Unmarshal([]byte(tc.body), &resp)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, resp)
		})
	}
}

func TestParamsToRequest(t *testing.T) {
	req, err := ParamsToRequest(JSONRPCIntID(7), "getblock", []any{"100", 2})
	require.NoError(t, err)

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Equal(t, `{"jsonrpc":"1.0","id":7,"method":"getblock","params":["100",2]}`, string(b))

	req, err = ParamsToRequest(JSONRPCIntID(8), "getinfo", nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(req.Params))

	_, err = ParamsToRequest(JSONRPCIntID(9), "getinfo", []any{make(chan int)})
	require.Error(t, err)

	var decoded RPCRequest
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, JSONRPCIntID(7), decoded.ID)
	assert.Equal(t, "getblock", decoded.Method)
}

func TestRPCError(t *testing.T) {
	err := error(&RPCError{Code: -5, Message: "Invalid address"})
	assert.Equal(t, "RPC error -5 - Invalid address", err.Error())

	var rpcErr *RPCError
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, CodeInvalidAddress, rpcErr.Code)
}
