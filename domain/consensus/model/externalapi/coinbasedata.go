package externalapi

// CoinbaseData is the decoded form of a coinbase transaction's payload: the
// blue score of the block it belongs to, the subsidy that block is
// entitled to mint, and the identity of the miner that built it.
type CoinbaseData struct {
	BlueScore uint64
	Subsidy   uint64
	MinerData MinerData
}

// BlockRewardData is the fee/subsidy accounting record for a single
// mergeset ancestor, as produced by the (external) fee and subsidy
// accounting step. The coinbase builder consumes one of these per ancestor
// referenced in a block's mergeset.
type BlockRewardData struct {
	Subsidy         uint64
	TotalFees       uint64
	ScriptPublicKey ScriptPublicKey
}

// NewBlockRewardData creates a new BlockRewardData.
func NewBlockRewardData(subsidy, totalFees uint64, scriptPublicKey ScriptPublicKey) *BlockRewardData {
	return &BlockRewardData{Subsidy: subsidy, TotalFees: totalFees, ScriptPublicKey: scriptPublicKey}
}
