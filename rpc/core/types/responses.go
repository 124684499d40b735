package coretypes

import "encoding/json"

// Node state info returned by getinfo.
type ResultInfo struct {
	Version            int64       `json:"version"`
	ProtocolVersion    int64       `json:"protocolversion"`
	VRSCVersion        string      `json:"VRSCversion"`
	Notarized          int64       `json:"notarized"`
	PrevMoMHeight      int64       `json:"prevMoMheight"`
	NotarizedHash      string      `json:"notarizedhash"`
	NotarizedTxID      string      `json:"notarizedtxid"`
	Blocks             int64       `json:"blocks"`
	LongestChain       int64       `json:"longestchain"`
	TimeOffset         int64       `json:"timeoffset"`
	TipTime            int64       `json:"tiptime"`
	Connections        int64       `json:"connections"`
	Proxy              string      `json:"proxy"`
	Difficulty         float64     `json:"difficulty"`
	Testnet            bool        `json:"testnet"`
	PayTxFee           json.Number `json:"paytxfee"`
	RelayFee           json.Number `json:"relayfee"`
	Errors             string      `json:"errors"`
	CCID               int64       `json:"CCid"`
	Name               string      `json:"name"`
	P2PPort            int64       `json:"p2pport"`
	RPCPort            int64       `json:"rpcport"`
	Magic              int64       `json:"magic"`
	Premine            json.Number `json:"premine"`
	WalletVersion      int64       `json:"walletversion"`
	Balance            json.Number `json:"balance"`
	UnconfirmedBalance json.Number `json:"unconfirmed_balance"`
	ImmatureBalance    json.Number `json:"immature_balance"`
	KeypoolOldest      int64       `json:"keypoololdest"`
	KeypoolSize        int64       `json:"keypoolsize"`
	Sapling            int64       `json:"sapling"`
}

// Wallet state returned by getwalletinfo. Reserve balances are keyed by
// currency name.
type ResultWalletInfo struct {
	WalletVersion             int64                  `json:"walletversion"`
	Balance                   json.Number            `json:"balance"`
	UnconfirmedBalance        json.Number            `json:"unconfirmed_balance"`
	ImmatureBalance           json.Number            `json:"immature_balance"`
	EligibleStakingOutputs    int64                  `json:"eligible_staking_outputs"`
	EligibleStakingBalance    json.Number            `json:"eligible_staking_balance"`
	ReserveBalance            map[string]json.Number `json:"reserve_balance,omitempty"`
	UnconfirmedReserveBalance map[string]json.Number `json:"unconfirmed_reserve_balance,omitempty"`
	ImmatureReserveBalance    map[string]json.Number `json:"immature_reserve_balance,omitempty"`
	TxCount                   int64                  `json:"txcount"`
	KeypoolOldest             int64                  `json:"keypoololdest"`
	KeypoolSize               int64                  `json:"keypoolsize"`
	PayTxFee                  json.Number            `json:"paytxfee"`
	SeedFP                    string                 `json:"seedfp"`
}

// Mining and staking state returned by getmininginfo.
type ResultMiningInfo struct {
	Blocks           int64       `json:"blocks"`
	CurrentBlockSize int64       `json:"currentblocksize"`
	CurrentBlockTx   int64       `json:"currentblocktx"`
	AverageBlockFees json.Number `json:"averageblockfees"`
	Difficulty       float64     `json:"difficulty"`
	StakingSupply    json.Number `json:"stakingsupply"`
	Errors           string      `json:"errors"`
	GenProcLimit     int64       `json:"genproclimit"`
	LocalHashPS      json.Number `json:"localhashps"`
	NetworkHashPS    json.Number `json:"networkhashps"`
	PooledTx         int64       `json:"pooledtx"`
	Testnet          bool        `json:"testnet"`
	Chain            string      `json:"chain"`
	Generate         bool        `json:"generate"`
	Staking          bool        `json:"staking"`
	NumThreads       int64       `json:"numthreads"`
	MergeMining      int64       `json:"mergemining"`
}

// Chain processing state returned by getblockchaininfo. Members whose shape
// changes between daemon releases are kept as Values.
type ResultBlockchainInfo struct {
	Chain                string      `json:"chain"`
	Name                 string      `json:"name"`
	ChainID              string      `json:"chainid"`
	Blocks               int64       `json:"blocks"`
	Headers              int64       `json:"headers"`
	BestBlockHash        string      `json:"bestblockhash"`
	Difficulty           float64     `json:"difficulty"`
	VerificationProgress float64     `json:"verificationprogress"`
	ChainWork            string      `json:"chainwork"`
	ChainStake           string      `json:"chainstake"`
	Pruned               bool        `json:"pruned"`
	SizeOnDisk           json.Number `json:"size_on_disk"`
	Commitments          int64       `json:"commitments"`
	ValuePools           Value       `json:"valuePools"`
	Softforks            Value       `json:"softforks"`
	Upgrades             Value       `json:"upgrades"`
	Consensus            Value       `json:"consensus"`
}

// Address details returned by validateaddress. Only IsValid is always set.
type ResultValidateAddress struct {
	IsValid      bool   `json:"isvalid"`
	Address      string `json:"address,omitempty"`
	ScriptPubKey string `json:"scriptPubKey,omitempty"`
	SegID        int64  `json:"segid,omitempty"`
	IsMine       bool   `json:"ismine,omitempty"`
	IsWatchOnly  bool   `json:"iswatchonly,omitempty"`
	IsScript     bool   `json:"isscript,omitempty"`
	PubKey       string `json:"pubkey,omitempty"`
	IsCompressed bool   `json:"iscompressed,omitempty"`
	Account      string `json:"account,omitempty"`
}
