package client

/*
The client package provides a general purpose interface (Client) for
connecting to a Verus daemon, as well as higher-level functionality.

The main implementation for production code is client.HTTP, which
connects via http to the JSON-RPC interface of the daemon.

For tests, use mock.Caller to script responses without a daemon.

Every method the daemon accepts can also be reached through the generic
Invoke, which checks the command against the Registry before sending it.
*/

import (
	"context"
	"encoding/json"

	ctypes "github.com/verus-go/verusrpc/rpc/core/types"
)

// Caller sends a single JSON-RPC call with positional params and decodes the
// result into result.
type Caller interface {
	Call(ctx context.Context, method string, params []any, result any) (any, error)
}

// Client describes the interface of daemon clients.
type Client interface {
	Caller
	ControlClient
	ChainClient
	WalletClient
	MiningClient
	CurrencyClient
	IdentityClient
}

// ControlClient covers node control calls.
type ControlClient interface {
	GetInfo(ctx context.Context) (*ctypes.ResultInfo, error)
	Help(ctx context.Context, command string) (string, error)
	Stop(ctx context.Context) (string, error)
}

// BlockCountClient reports the chain height.
type BlockCountClient interface {
	GetBlockCount(ctx context.Context) (int64, error)
}

// ChainClient covers blockchain queries.
type ChainClient interface {
	BlockCountClient
	GetBlockchainInfo(ctx context.Context) (*ctypes.ResultBlockchainInfo, error)
	GetBestBlockHash(ctx context.Context) (string, error)
	GetBlockHash(ctx context.Context, height int64) (string, error)
	GetBlock(ctx context.Context, hashOrHeight string, verbosity int) (ctypes.Value, error)
	GetRawTransaction(ctx context.Context, txid string, verbose bool) (ctypes.Value, error)
}

// WalletClient covers wallet calls.
type WalletClient interface {
	GetWalletInfo(ctx context.Context) (*ctypes.ResultWalletInfo, error)
	GetNewAddress(ctx context.Context) (string, error)
	ValidateAddress(ctx context.Context, address string) (*ctypes.ResultValidateAddress, error)
}

// MiningClient covers mining and staking calls.
type MiningClient interface {
	GetGenerate(ctx context.Context) (ctypes.Value, error)
	// SetGenerate turns mining or staking on or off. A nil genProcLimit
	// leaves the thread count to the daemon; 0 means stake only.
	SetGenerate(ctx context.Context, generate bool, genProcLimit *int) (ctypes.Value, error)
	GetMiningInfo(ctx context.Context) (*ctypes.ResultMiningInfo, error)
}

// CurrencyClient covers currency definitions, conversions and cross-chain
// transfers.
type CurrencyClient interface {
	EstimateConversion(ctx context.Context, req ConversionRequest) (ctypes.Value, error)
	GetCurrency(ctx context.Context, currency string) (ctypes.Value, error)
	// GetCurrencyState returns the state of currency. heights is "n",
	// "m,n" or "m,n,o" and may be empty.
	GetCurrencyState(ctx context.Context, currency, heights, conversionDataCurrency string) (ctypes.Value, error)
	GetImports(ctx context.Context, currency string, startHeight, endHeight *int64) (ctypes.Value, error)
	GetExports(ctx context.Context, currency string, startHeight, endHeight *int64) (ctypes.Value, error)
}

// IdentityClient covers VerusID calls.
type IdentityClient interface {
	GetIdentity(ctx context.Context, identity string) (ctypes.Value, error)
}

// ConversionRequest is the single object estimateconversion takes. Via is
// omitted when empty.
type ConversionRequest struct {
	Currency  string      `json:"currency"`
	ConvertTo string      `json:"convertto"`
	Amount    json.Number `json:"amount"`
	Via       string      `json:"via,omitempty"`
}
