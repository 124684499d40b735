package http

import (
	"context"

	"github.com/verus-go/verusrpc/rpc/client"
	ctypes "github.com/verus-go/verusrpc/rpc/core/types"
	jsonrpcclient "github.com/verus-go/verusrpc/rpc/jsonrpc/client"
)

/*
HTTP is a Client implementation that communicates with a Verus daemon over
JSON-RPC.

HTTP is safe for concurrent use.

Example:

	c, err := New("http://127.0.0.1:18843",
		jsonrpcclient.WithBasicAuth(user, password))
	if err != nil {
		// handle error
	}

	info, err := c.GetInfo(ctx)
	if err != nil {
		// handle error
	}

	block, err := c.GetBlock(ctx, "100", 1)
	if err != nil {
		// handle error
	}
	hash, _ := block.Get("hash")
*/
type HTTP struct {
	caller   client.Caller
	registry *client.Registry
}

var _ client.Client = (*HTTP)(nil)

// New takes a remote endpoint in the form <protocol>://<host>:<port> and
// options for the underlying JSON-RPC client. An error is returned on
// invalid remote.
func New(remote string, opts ...jsonrpcclient.Option) (*HTTP, error) {
	rc, err := jsonrpcclient.New(remote, opts...)
	if err != nil {
		return nil, err
	}
	return NewWithCaller(rc), nil
}

// NewWithCaller wraps any Caller, e.g. a mock.
func NewWithCaller(caller client.Caller) *HTTP {
	return &HTTP{
		caller:   caller,
		registry: client.DefaultRegistry(),
	}
}

// Call implements client.Caller. It is not checked against the registry.
func (c *HTTP) Call(ctx context.Context, method string, params []any, result any) (any, error) {
	return c.caller.Call(ctx, method, params, result)
}

// Invoke checks name against the registry and forwards it.
func (c *HTTP) Invoke(ctx context.Context, name string, args ...any) (ctypes.Value, error) {
	return c.registry.Invoke(ctx, c.caller, name, args...)
}

func (c *HTTP) value(ctx context.Context, method string, params ...any) (ctypes.Value, error) {
	if params == nil {
		params = []any{}
	}
	var result ctypes.Value
	if _, err := c.caller.Call(ctx, method, params, &result); err != nil {
		return ctypes.Value{}, err
	}
	return result, nil
}

func (c *HTTP) str(ctx context.Context, method string, params ...any) (string, error) {
	if params == nil {
		params = []any{}
	}
	var result string
	if _, err := c.caller.Call(ctx, method, params, &result); err != nil {
		return "", err
	}
	return result, nil
}

//-----------------------------------------------------------------------------
// control

func (c *HTTP) GetInfo(ctx context.Context) (*ctypes.ResultInfo, error) {
	result := new(ctypes.ResultInfo)
	if _, err := c.caller.Call(ctx, "getinfo", []any{}, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Help returns the help text of command, or of every command when command
// is empty.
func (c *HTTP) Help(ctx context.Context, command string) (string, error) {
	if command == "" {
		return c.str(ctx, "help")
	}
	return c.str(ctx, "help", command)
}

func (c *HTTP) Stop(ctx context.Context) (string, error) {
	return c.str(ctx, "stop")
}

//-----------------------------------------------------------------------------
// blockchain

func (c *HTTP) GetBlockchainInfo(ctx context.Context) (*ctypes.ResultBlockchainInfo, error) {
	result := new(ctypes.ResultBlockchainInfo)
	if _, err := c.caller.Call(ctx, "getblockchaininfo", []any{}, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTP) GetBestBlockHash(ctx context.Context) (string, error) {
	return c.str(ctx, "getbestblockhash")
}

func (c *HTTP) GetBlockCount(ctx context.Context) (int64, error) {
	var result int64
	if _, err := c.caller.Call(ctx, "getblockcount", []any{}, &result); err != nil {
		return 0, err
	}
	return result, nil
}

func (c *HTTP) GetBlockHash(ctx context.Context, height int64) (string, error) {
	return c.str(ctx, "getblockhash", height)
}

// GetBlock returns the block at hashOrHeight. verbosity 0 yields a hex
// string, 1 an object, 2 an object with decoded transactions.
func (c *HTTP) GetBlock(ctx context.Context, hashOrHeight string, verbosity int) (ctypes.Value, error) {
	return c.value(ctx, "getblock", hashOrHeight, verbosity)
}

// GetRawTransaction returns the transaction txid, as hex or decoded when
// verbose. The daemon expects verbose as 0 or 1.
func (c *HTTP) GetRawTransaction(ctx context.Context, txid string, verbose bool) (ctypes.Value, error) {
	flag := 0
	if verbose {
		flag = 1
	}
	return c.value(ctx, "getrawtransaction", txid, flag)
}

//-----------------------------------------------------------------------------
// wallet

func (c *HTTP) GetWalletInfo(ctx context.Context) (*ctypes.ResultWalletInfo, error) {
	result := new(ctypes.ResultWalletInfo)
	if _, err := c.caller.Call(ctx, "getwalletinfo", []any{}, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTP) GetNewAddress(ctx context.Context) (string, error) {
	return c.str(ctx, "getnewaddress")
}

func (c *HTTP) ValidateAddress(ctx context.Context, address string) (*ctypes.ResultValidateAddress, error) {
	result := new(ctypes.ResultValidateAddress)
	if _, err := c.caller.Call(ctx, "validateaddress", []any{address}, result); err != nil {
		return nil, err
	}
	return result, nil
}

//-----------------------------------------------------------------------------
// mining

func (c *HTTP) GetGenerate(ctx context.Context) (ctypes.Value, error) {
	return c.value(ctx, "getgenerate")
}

func (c *HTTP) SetGenerate(ctx context.Context, generate bool, genProcLimit *int) (ctypes.Value, error) {
	if genProcLimit == nil {
		return c.value(ctx, "setgenerate", generate)
	}
	return c.value(ctx, "setgenerate", generate, *genProcLimit)
}

func (c *HTTP) GetMiningInfo(ctx context.Context) (*ctypes.ResultMiningInfo, error) {
	result := new(ctypes.ResultMiningInfo)
	if _, err := c.caller.Call(ctx, "getmininginfo", []any{}, result); err != nil {
		return nil, err
	}
	return result, nil
}

//-----------------------------------------------------------------------------
// currency

// EstimateConversion sends req as the single object estimateconversion
// takes.
func (c *HTTP) EstimateConversion(ctx context.Context, req client.ConversionRequest) (ctypes.Value, error) {
	return c.value(ctx, "estimateconversion", req)
}

func (c *HTTP) GetCurrency(ctx context.Context, currency string) (ctypes.Value, error) {
	return c.value(ctx, "getcurrency", currency)
}

// GetCurrencyState sends an empty heights argument as "" so that the
// daemon reads the current state.
func (c *HTTP) GetCurrencyState(ctx context.Context, currency, heights, conversionDataCurrency string) (ctypes.Value, error) {
	params := []any{currency, heights}
	if conversionDataCurrency != "" {
		params = append(params, conversionDataCurrency)
	}
	return c.value(ctx, "getcurrencystate", params...)
}

func (c *HTTP) GetImports(ctx context.Context, currency string, startHeight, endHeight *int64) (ctypes.Value, error) {
	return c.value(ctx, "getimports", heightRangeParams(currency, startHeight, endHeight)...)
}

func (c *HTTP) GetExports(ctx context.Context, currency string, startHeight, endHeight *int64) (ctypes.Value, error) {
	return c.value(ctx, "getexports", heightRangeParams(currency, startHeight, endHeight)...)
}

// heightRangeParams builds [currency, start|"", end?].
func heightRangeParams(currency string, start, end *int64) []any {
	params := []any{currency}
	if start != nil {
		params = append(params, *start)
	} else {
		params = append(params, "")
	}
	if end != nil {
		params = append(params, *end)
	}
	return params
}

//-----------------------------------------------------------------------------
// identity

func (c *HTTP) GetIdentity(ctx context.Context, identity string) (ctypes.Value, error) {
	return c.value(ctx, "getidentity", identity)
}
