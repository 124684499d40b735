package client

var defaultRegistry = NewRegistry(
	// control
	Command{Name: "getinfo", Category: CategoryControl, MinArgs: 0, MaxArgs: 0,
		Help: "Returns an object containing various state info."},
	Command{Name: "help", Category: CategoryControl, MinArgs: 0, MaxArgs: 1, Usage: "[command]",
		Help: "Lists all commands, or gets help for a specified command."},
	Command{Name: "stop", Category: CategoryControl, MinArgs: 0, MaxArgs: 0,
		Help: "Stops the daemon."},
	Command{Name: "processupgradedata", Category: CategoryControl, MinArgs: 1, MaxArgs: 1, Usage: "<upgradedata>",
		Help: "Processes an upgrade data object (upgradeid, minimumdaemonversion, activationheight, activationtime)."},

	// wallet
	Command{Name: "getwalletinfo", Category: CategoryWallet, MinArgs: 0, MaxArgs: 0,
		Help: "Returns an object containing wallet state info."},
	Command{Name: "getnewaddress", Category: CategoryWallet, MinArgs: 0, MaxArgs: 0,
		Help: "Returns a new address from the keypool and marks it as used."},
	Command{Name: "validateaddress", Category: CategoryWallet, MinArgs: 1, MaxArgs: 1, Usage: "<address>",
		Help: "Returns information about the given address."},
	Command{Name: "listtransactions", Category: CategoryWallet, MinArgs: 0, MaxArgs: 4, Usage: "[account] [count] [from] [includewatchonly]",
		Help: "Returns the most recent wallet transactions."},
	Command{Name: "sendcurrency", Category: CategoryWallet, MinArgs: 2, MaxArgs: 5, Usage: "<fromaddress> <outputs> [minconf] [feeamount] [returntxtemplate]",
		Help: "Sends one or many currencies to one or many addresses."},

	// blockchain
	Command{Name: "getbestblockhash", Category: CategoryBlockchain, MinArgs: 0, MaxArgs: 0,
		Help: "Returns the hash of the best (tip) block in the longest chain."},
	Command{Name: "getblock", Category: CategoryBlockchain, MinArgs: 1, MaxArgs: 2, Usage: "<hash|height> [verbosity]",
		Help: "Returns block data: hex for verbosity 0, an object for 1, with transactions for 2."},
	Command{Name: "getblockcount", Category: CategoryBlockchain, MinArgs: 0, MaxArgs: 0,
		Help: "Returns the number of blocks in the best valid chain."},
	Command{Name: "getblockhash", Category: CategoryBlockchain, MinArgs: 1, MaxArgs: 1, Usage: "<index>",
		Help: "Returns the hash of the block at the given height."},
	Command{Name: "getblockchaininfo", Category: CategoryBlockchain, MinArgs: 0, MaxArgs: 0,
		Help: "Returns an object with blockchain processing state."},
	Command{Name: "getrawtransaction", Category: CategoryBlockchain, MinArgs: 1, MaxArgs: 2, Usage: "<txid> [verbose]",
		Help: "Returns raw transaction data, decoded when verbose is 1."},
	Command{Name: "coinsupply", Category: CategoryBlockchain, MinArgs: 0, MaxArgs: 1, Usage: "[height]",
		Help: "Returns coin supply information at a given height."},
	Command{Name: "getblockdeltas", Category: CategoryBlockchain, MinArgs: 1, MaxArgs: 1, Usage: "<blockhash>",
		Help: "Returns the deltas of a block."},
	Command{Name: "getblockhashes", Category: CategoryBlockchain, MinArgs: 2, MaxArgs: 3, Usage: "<high> <low> [options]",
		Help: "Returns block hashes within a timestamp range."},
	Command{Name: "getblockheader", Category: CategoryBlockchain, MinArgs: 1, MaxArgs: 2, Usage: "<blockhash> [verbose]",
		Help: "Returns information about a block header."},
	Command{Name: "getchaintips", Category: CategoryBlockchain, MinArgs: 0, MaxArgs: 0,
		Help: "Returns all known tips in the block tree."},
	Command{Name: "getchaintxstats", Category: CategoryBlockchain, MinArgs: 0, MaxArgs: 2, Usage: "[nblocks] [blockhash]",
		Help: "Returns statistics about the number and rate of transactions."},
	Command{Name: "getdifficulty", Category: CategoryBlockchain, MinArgs: 0, MaxArgs: 0,
		Help: "Returns the proof-of-work difficulty as a multiple of the minimum."},
	Command{Name: "getmempoolinfo", Category: CategoryBlockchain, MinArgs: 0, MaxArgs: 0,
		Help: "Returns details on the state of the memory pool."},
	Command{Name: "getrawmempool", Category: CategoryBlockchain, MinArgs: 0, MaxArgs: 1, Usage: "[verbose]",
		Help: "Returns the transaction ids in the memory pool."},
	Command{Name: "getspentinfo", Category: CategoryBlockchain, MinArgs: 1, MaxArgs: 1, Usage: "<{txid,index}>",
		Help: "Returns the txid and index where an output is spent."},
	Command{Name: "gettxout", Category: CategoryBlockchain, MinArgs: 2, MaxArgs: 3, Usage: "<txid> <n> [includemempool]",
		Help: "Returns details about an unspent transaction output."},
	Command{Name: "gettxoutproof", Category: CategoryBlockchain, MinArgs: 1, MaxArgs: 2, Usage: "<txids> [blockhash]",
		Help: "Returns a hex proof that transactions were included in a block."},
	Command{Name: "gettxoutsetinfo", Category: CategoryBlockchain, MinArgs: 0, MaxArgs: 0,
		Help: "Returns statistics about the unspent output set."},
	Command{Name: "verifychain", Category: CategoryBlockchain, MinArgs: 0, MaxArgs: 2, Usage: "[checklevel] [numblocks]",
		Help: "Verifies the blockchain database."},
	Command{Name: "verifytxoutproof", Category: CategoryBlockchain, MinArgs: 1, MaxArgs: 1, Usage: "<proof>",
		Help: "Verifies that a proof points to a transaction in a block."},
	Command{Name: "z_gettreestate", Category: CategoryBlockchain, MinArgs: 1, MaxArgs: 1, Usage: "<hash|height>",
		Help: "Returns the note commitment tree state for a block."},

	// address index
	Command{Name: "getaddressbalance", Category: CategoryAddressIndex, MinArgs: 1, MaxArgs: 1, Usage: "<{addresses}>",
		Help: "Returns the balance of one or more addresses."},
	Command{Name: "getaddressdeltas", Category: CategoryAddressIndex, MinArgs: 1, MaxArgs: 1, Usage: "<{addresses,start,end,...}>",
		Help: "Returns all balance changes of one or more addresses."},
	Command{Name: "getaddressmempool", Category: CategoryAddressIndex, MinArgs: 1, MaxArgs: 1, Usage: "<{addresses}>",
		Help: "Returns the mempool deltas of one or more addresses."},
	Command{Name: "getaddresstxids", Category: CategoryAddressIndex, MinArgs: 1, MaxArgs: 1, Usage: "<{addresses,start,end}>",
		Help: "Returns the transaction ids of one or more addresses."},
	Command{Name: "getaddressutxos", Category: CategoryAddressIndex, MinArgs: 1, MaxArgs: 1, Usage: "<{addresses}>",
		Help: "Returns the unspent outputs of one or more addresses."},
	Command{Name: "getsnapshot", Category: CategoryAddressIndex, MinArgs: 0, MaxArgs: 1, Usage: "[top]",
		Help: "Returns a snapshot of address and amount pairs."},

	// kv
	Command{Name: "kvsearch", Category: CategoryKV, MinArgs: 1, MaxArgs: 1, Usage: "<key>",
		Help: "Searches for a key stored with kvupdate."},
	Command{Name: "kvupdate", Category: CategoryKV, MinArgs: 3, MaxArgs: 4, Usage: "<key> <value> <days> [passphrase]",
		Help: "Stores a key/value pair."},

	// mining
	Command{Name: "getgenerate", Category: CategoryMining, MinArgs: 0, MaxArgs: 0,
		Help: "Returns whether the daemon is mining or staking."},
	Command{Name: "setgenerate", Category: CategoryMining, MinArgs: 1, MaxArgs: 2, Usage: "<generate> [genproclimit]",
		Help: "Turns mining or staking on or off; genproclimit 0 stakes only."},
	Command{Name: "getmininginfo", Category: CategoryMining, MinArgs: 0, MaxArgs: 0,
		Help: "Returns mining related information."},
	Command{Name: "generate", Category: CategoryMining, MinArgs: 1, MaxArgs: 1, Usage: "<numblocks>",
		Help: "Mines blocks immediately (regtest only)."},

	// currency
	Command{Name: "estimateconversion", Category: CategoryCurrency, MinArgs: 1, MaxArgs: 1, Usage: "<{currency,convertto,amount[,via]}>",
		Help: "Estimates the output of a currency conversion."},
	Command{Name: "getcurrency", Category: CategoryCurrency, MinArgs: 1, MaxArgs: 1, Usage: "<currency>",
		Help: "Returns the definition of a currency."},
	Command{Name: "getcurrencystate", Category: CategoryCurrency, MinArgs: 1, MaxArgs: 3, Usage: "<currency> [heights] [conversiondatacurrency]",
		Help: "Returns the state of a currency over a height range."},
	Command{Name: "getcurrencyconverters", Category: CategoryCurrency, MinArgs: 0, MaxArgs: Variadic, Usage: "[currency ...]",
		Help: "Returns the fractional currencies that convert between the given currencies."},
	Command{Name: "getimports", Category: CategoryCurrency, MinArgs: 1, MaxArgs: 3, Usage: "<currency> [startheight] [endheight]",
		Help: "Returns the import transactions of a chain or currency."},
	Command{Name: "getexports", Category: CategoryCurrency, MinArgs: 1, MaxArgs: 3, Usage: "<currency> [startheight] [endheight]",
		Help: "Returns the export transactions of a chain or currency."},

	// crosschain
	Command{Name: "MoMoMdata", Category: CategoryCrosschain, MinArgs: 3, MaxArgs: 3, Usage: "<symbol> <kmdheight> <ccid>",
		Help: "Returns MoMoM data."},
	Command{Name: "assetchainproof", Category: CategoryCrosschain, MinArgs: 1, MaxArgs: 1, Usage: "<txid>",
		Help: "Returns an assetchain proof for a transaction."},
	Command{Name: "calc_MoM", Category: CategoryCrosschain, MinArgs: 2, MaxArgs: 2, Usage: "<height> <MoMdepth>",
		Help: "Calculates a merkle of merkles."},
	Command{Name: "getNotarisationsForBlock", Category: CategoryCrosschain, MinArgs: 1, MaxArgs: 1, Usage: "<blockhash>",
		Help: "Returns the notarisation transactions of a block."},
	Command{Name: "height_MoM", Category: CategoryCrosschain, MinArgs: 1, MaxArgs: 1, Usage: "<height>",
		Help: "Returns the merkle of merkles at a height."},
	Command{Name: "migrate_completeimporttransaction", Category: CategoryCrosschain, MinArgs: 1, MaxArgs: 1, Usage: "<importtx>",
		Help: "Completes a cross-chain import transaction."},
	Command{Name: "migrate_converttoexport", Category: CategoryCrosschain, MinArgs: 3, MaxArgs: 3, Usage: "<rawtx> <destsymbol> <exportamount>",
		Help: "Converts a raw transaction to a cross-chain export."},
	Command{Name: "migrate_createimporttransaction", Category: CategoryCrosschain, MinArgs: 2, MaxArgs: 2, Usage: "<burntx> <payouts>",
		Help: "Creates an import transaction from a burn transaction."},
	Command{Name: "scanNotarisationsDB", Category: CategoryCrosschain, MinArgs: 2, MaxArgs: 3, Usage: "<blockheight> <symbol> [blockslimit]",
		Help: "Scans the notarisations database."},
	Command{Name: "z_getpaymentdisclosure", Category: CategoryCrosschain, MinArgs: 3, MaxArgs: 4, Usage: "<txid> <js_index> <output_index> [message]",
		Help: "Generates a payment disclosure for a joinsplit output."},
	Command{Name: "z_validatepaymentdisclosure", Category: CategoryCrosschain, MinArgs: 1, MaxArgs: 1, Usage: "<paymentdisclosure>",
		Help: "Validates a payment disclosure."},

	// identity
	Command{Name: "getidentity", Category: CategoryIdentity, MinArgs: 1, MaxArgs: 4, Usage: "<name@|iaddress> [height] [txproof] [txproofheight]",
		Help: "Returns the definition of a VerusID."},
	Command{Name: "updateidentity", Category: CategoryIdentity, MinArgs: 1, MaxArgs: 5, Usage: "<identity> [returntx] [tokenupdate] [feeoffer] [sourceoffunds]",
		Help: "Updates an identity."},
	Command{Name: "registeridentity", Category: CategoryIdentity, MinArgs: 1, MaxArgs: 4, Usage: "<registration> [returntx] [feeoffer] [sourceoffunds]",
		Help: "Registers a new identity from a name commitment."},
	Command{Name: "registernamecommitment", Category: CategoryIdentity, MinArgs: 2, MaxArgs: 5, Usage: "<name> <controladdress> [referral] [parent] [sourceoffunds]",
		Help: "Registers a name commitment."},
	Command{Name: "revokeidentity", Category: CategoryIdentity, MinArgs: 1, MaxArgs: 5, Usage: "<identity> [returntx] [tokenrevoke] [feeoffer] [sourceoffunds]",
		Help: "Revokes an identity."},
	Command{Name: "recoveridentity", Category: CategoryIdentity, MinArgs: 1, MaxArgs: 5, Usage: "<identity> [returntx] [tokenrecover] [feeoffer] [sourceoffunds]",
		Help: "Recovers a revoked identity."},
	Command{Name: "setidentitytimelock", Category: CategoryIdentity, MinArgs: 2, MaxArgs: 5, Usage: "<identity> <timelock> [returntx] [feeoffer] [sourceoffunds]",
		Help: "Sets a timelock on an identity."},

	// marketplace
	Command{Name: "makeoffer", Category: CategoryMarketplace, MinArgs: 2, MaxArgs: 4, Usage: "<fromaddress> <offer> [returntx] [feeamount]",
		Help: "Creates an offer to exchange currencies or identities."},
	Command{Name: "takeoffer", Category: CategoryMarketplace, MinArgs: 2, MaxArgs: 4, Usage: "<fromaddress> <offer> [returntx] [feeamount]",
		Help: "Accepts an existing offer."},
	Command{Name: "getoffers", Category: CategoryMarketplace, MinArgs: 0, MaxArgs: 3, Usage: "[currency|identity] [iscurrency] [withtx]",
		Help: "Returns open offers."},
	Command{Name: "closeoffers", Category: CategoryMarketplace, MinArgs: 0, MaxArgs: 3, Usage: "[offers] [transparentorprivatefundsdestination] [privatefundsdestination]",
		Help: "Closes offers made by this wallet."},
)
