package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/verus-go/verusrpc/rpc/jsonrpc/types"
)

// unmarshalResponseBytes classifies a reply. A JSON-RPC error in the body
// wins over the HTTP status: bitcoind answers failed calls with 404 or 500
// and a well-formed error envelope.
func unmarshalResponseBytes(
	statusCode int,
	responseBytes []byte,
	expectedID types.JSONRPCIntID,
) (json.RawMessage, error) {
	success := statusCode >= 200 && statusCode < 300

	response := &types.RPCResponse{}
	if err := json.Unmarshal(responseBytes, response); err != nil {
		if !success {
			return nil, ErrTransport{
				StatusCode: statusCode,
				Source:     fmt.Errorf("unexpected status %q", http.StatusText(statusCode)),
			}
		}
		return nil, ErrProtocol{Description: describeDecodeError(err), Source: err}
	}

	// A daemon error is returned as is, whatever ID it carries.
	if response.Error != nil {
		return nil, response.Error
	}

	if !success {
		return nil, ErrTransport{
			StatusCode: statusCode,
			Source:     fmt.Errorf("unexpected status %q with a result body", http.StatusText(statusCode)),
		}
	}

	if err := validateAndVerifyID(response, expectedID); err != nil {
		return nil, ErrProtocol{Description: "wrong ID", Source: err}
	}

	return response.Result, nil
}

func describeDecodeError(err error) string {
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		return "invalid JSON"
	case errors.Is(err, types.ErrNotObject):
		return "not a JSON object"
	case errors.Is(err, types.ErrEmptyResponse):
		return "missing result and error"
	default:
		return "malformed response"
	}
}

// id: It MUST be the same as the value of the id member in the Request Object.
func validateAndVerifyID(res *types.RPCResponse, expectedID types.JSONRPCIntID) error {
	if res.ID == nil {
		return errors.New("no ID")
	}
	id, ok := res.ID.(types.JSONRPCIntID)
	if !ok {
		return fmt.Errorf("expected JSONRPCIntID, got %T", res.ID)
	}
	if expectedID != id {
		return fmt.Errorf("response ID (%d) does not match request ID (%d)", id, expectedID)
	}
	return nil
}
