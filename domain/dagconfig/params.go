// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dagconfig defines the per-network parameters the coinbase and
// genesis subsystem needs: each network's genesis block and the constants
// its CoinbaseManager is constructed from.
package dagconfig

// Params defines the coinbase/genesis-relevant parameters of a network.
// Every field here is static program data, assembled once as a package-level
// var literal and never mutated afterward - there is no flag parsing, no
// environment lookup, no reload.
type Params struct {
	// Name is a human-readable identifier for the network.
	Name string

	// GenesisBlock is the first block of the network's DAG.
	GenesisBlock *GenesisBlock

	// CoinbasePayloadScriptPublicKeyMaxLength is the maximum length, in
	// bytes, a script public key embedded in a coinbase payload may have.
	CoinbasePayloadScriptPublicKeyMaxLength uint8

	// MaxCoinbasePayloadLength is the maximum total length, in bytes, a
	// coinbase transaction's payload may have.
	MaxCoinbasePayloadLength int

	// DeflationaryPhaseDAAScore is the DAA score at which the network
	// switches from the flat PreDeflationaryPhaseBaseSubsidy to the
	// BPS-scaled monthly subsidy table.
	DeflationaryPhaseDAAScore uint64

	// PreDeflationaryPhaseBaseSubsidy is the flat per-block subsidy minted
	// before DeflationaryPhaseDAAScore is reached.
	PreDeflationaryPhaseBaseSubsidy uint64

	// TargetTimePerBlockMilliseconds is the network's target block
	// interval. It must evenly divide 1000; CoinbaseManager asserts this
	// at construction.
	TargetTimePerBlockMilliseconds uint64

	// HFRelaunchDAAScore is preserved for API parity with the relaunch
	// hard-fork flag; this subsystem stores it but never consults it.
	HFRelaunchDAAScore uint64
}

// deflationaryPhaseDAAScoreAt1BPS and preDeflationaryPhaseBaseSubsidyAt1BPS
// are the 1-BPS baseline figures the subsidy table itself was computed
// against. Networks running at a different BPS scale both by their block
// rate, the same way the subsidy table is scaled, so that deflation begins
// at the same wall-clock offset and issues at the same average rate
// regardless of block cadence.
const (
	deflationaryPhaseDAAScoreAt1BPS       = 15_778_800
	preDeflationaryPhaseBaseSubsidyAt1BPS = 50_000_000_000
)

// MainnetParams defines the network parameters for the main network.
var MainnetParams = Params{
	Name:                                    "waglayla-mainnet",
	GenesisBlock:                            &MainnetGenesisBlock,
	CoinbasePayloadScriptPublicKeyMaxLength: 150,
	MaxCoinbasePayloadLength:                204,
	DeflationaryPhaseDAAScore:               deflationaryPhaseDAAScoreAt1BPS,
	PreDeflationaryPhaseBaseSubsidy:         preDeflationaryPhaseBaseSubsidyAt1BPS,
	TargetTimePerBlockMilliseconds:          1000,
	HFRelaunchDAAScore:                      0,
}

// TestnetParams defines the network parameters for the test network. It
// runs at the same 1-BPS rate as mainnet, mirroring its economic
// parameters so testing is representative.
var TestnetParams = Params{
	Name:                                    "waglayla-testnet",
	GenesisBlock:                            &TestnetGenesisBlock,
	CoinbasePayloadScriptPublicKeyMaxLength: 150,
	MaxCoinbasePayloadLength:                204,
	DeflationaryPhaseDAAScore:               deflationaryPhaseDAAScoreAt1BPS,
	PreDeflationaryPhaseBaseSubsidy:         preDeflationaryPhaseBaseSubsidyAt1BPS,
	TargetTimePerBlockMilliseconds:          1000,
	HFRelaunchDAAScore:                      0,
}

// TestnetScaledParams defines the network parameters for the scaled test
// network (a.k.a. testnet-11), which runs at 10 BPS. Its deflationary-phase
// DAA score and base subsidy are the 1-BPS baseline scaled by the same
// factor of 10, so the network reaches the same point in its issuance curve
// at the same wall-clock time as the 1-BPS networks, just counted in ten
// times as many blocks.
var TestnetScaledParams = Params{
	Name:                                    "waglayla-testnet-11",
	GenesisBlock:                            &TestnetScaledGenesisBlock,
	CoinbasePayloadScriptPublicKeyMaxLength: 150,
	MaxCoinbasePayloadLength:                204,
	DeflationaryPhaseDAAScore:               deflationaryPhaseDAAScoreAt1BPS * 10,
	PreDeflationaryPhaseBaseSubsidy:         preDeflationaryPhaseBaseSubsidyAt1BPS / 10,
	TargetTimePerBlockMilliseconds:          100,
	HFRelaunchDAAScore:                      0,
}

// SimnetParams defines the network parameters for the simulation test
// network.
var SimnetParams = Params{
	Name:                                    "waglayla-simnet",
	GenesisBlock:                            &SimnetGenesisBlock,
	CoinbasePayloadScriptPublicKeyMaxLength: 150,
	MaxCoinbasePayloadLength:                204,
	DeflationaryPhaseDAAScore:               deflationaryPhaseDAAScoreAt1BPS,
	PreDeflationaryPhaseBaseSubsidy:         preDeflationaryPhaseBaseSubsidyAt1BPS,
	TargetTimePerBlockMilliseconds:          1000,
	HFRelaunchDAAScore:                      0,
}

// DevnetParams defines the network parameters for the development network.
var DevnetParams = Params{
	Name:                                    "waglayla-devnet",
	GenesisBlock:                            &DevnetGenesisBlock,
	CoinbasePayloadScriptPublicKeyMaxLength: 150,
	MaxCoinbasePayloadLength:                204,
	DeflationaryPhaseDAAScore:               deflationaryPhaseDAAScoreAt1BPS,
	PreDeflationaryPhaseBaseSubsidy:         preDeflationaryPhaseBaseSubsidyAt1BPS,
	TargetTimePerBlockMilliseconds:          1000,
	HFRelaunchDAAScore:                      0,
}

// Networks lists every registered network's parameters, in the order they
// appear in the genesis constants table. Tests iterate this slice to check
// properties that must hold for every network uniformly.
var Networks = []*Params{
	&MainnetParams,
	&TestnetParams,
	&TestnetScaledParams,
	&SimnetParams,
	&DevnetParams,
}
