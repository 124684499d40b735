package mock

import (
	"context"

	"github.com/verus-go/verusrpc/rpc/client"
)

// BlockCountMock returns the result specified by the Call
type BlockCountMock struct {
	Call
}

var _ client.BlockCountClient = (*BlockCountMock)(nil)

func (m *BlockCountMock) GetBlockCount(context.Context) (int64, error) {
	res, err := m.GetResponse(nil)
	if err != nil {
		return 0, err
	}
	return res.(int64), nil
}

// BlockCountRecorder can wrap another type (BlockCountMock, full client)
// and record the getblockcount calls
type BlockCountRecorder struct {
	Client client.BlockCountClient
	Calls  []Call
}

var _ client.BlockCountClient = (*BlockCountRecorder)(nil)

func NewBlockCountRecorder(client client.BlockCountClient) *BlockCountRecorder {
	return &BlockCountRecorder{
		Client: client,
		Calls:  []Call{},
	}
}

func (r *BlockCountRecorder) addCall(call Call) {
	r.Calls = append(r.Calls, call)
}

func (r *BlockCountRecorder) GetBlockCount(ctx context.Context) (int64, error) {
	res, err := r.Client.GetBlockCount(ctx)
	r.addCall(Call{
		Name:     "getblockcount",
		Response: res,
		Error:    err,
	})
	return res, err
}
