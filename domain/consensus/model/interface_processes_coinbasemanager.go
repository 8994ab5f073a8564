package model

import "github.com/waglayla/waglaylad/domain/consensus/model/externalapi"

// CoinbaseTransactionTemplate is the result of building a block's expected
// coinbase transaction: the transaction itself, plus whether any red-block
// reward was folded into the merging block's own output.
type CoinbaseTransactionTemplate struct {
	Transaction  *externalapi.DomainTransaction
	HasRedReward bool
}

// CoinbaseManager exposes the pure functions that build and validate a
// block's coinbase transaction: the subsidy schedule, the payload codec,
// and the reward distributor, composed together.
type CoinbaseManager interface {
	// ExpectedCoinbaseTransaction builds the coinbase transaction a block at
	// daaScore, built by the miner described by minerData, is expected to
	// carry, given its mergeset partition and the reward/DAA-window data for
	// every hash referenced in that partition.
	ExpectedCoinbaseTransaction(
		daaScore uint64,
		minerData externalapi.MinerData,
		ghostdagData *externalapi.GhostdagData,
		mergesetRewards map[externalapi.DomainHash]*externalapi.BlockRewardData,
		mergesetNonDAA map[externalapi.DomainHash]struct{},
	) (*CoinbaseTransactionTemplate, error)

	// CalcBlockSubsidy returns the subsidy a block at daaScore is entitled
	// to mint.
	CalcBlockSubsidy(daaScore uint64) uint64

	// SerializeCoinbasePayload encodes coinbaseData into its wire form.
	SerializeCoinbasePayload(coinbaseData *externalapi.CoinbaseData) ([]byte, error)

	// DeserializeCoinbasePayload decodes a coinbase transaction's payload.
	DeserializeCoinbasePayload(payload []byte) (*externalapi.CoinbaseData, error)

	// ModifyCoinbasePayload rewrites payload's miner data in place,
	// preserving its blue score and subsidy fields.
	ModifyCoinbasePayload(payload []byte, minerData externalapi.MinerData) ([]byte, error)
}
