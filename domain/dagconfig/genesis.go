// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dagconfig

import (
	"github.com/waglayla/waglaylad/domain/consensus/model/externalapi"
	"github.com/waglayla/waglaylad/domain/consensus/utils/constants"
	"github.com/waglayla/waglaylad/domain/consensus/utils/subnetworks"
	"github.com/waglayla/waglaylad/domain/consensus/utils/transactionhelper"
)

// GenesisBlock holds the constants uniquely identifying one network's
// genesis block: the block a network's entire history is anchored to. Every
// field here is consensus-critical and must be transcribed bit-for-bit from
// the network's canonical source.
type GenesisBlock struct {
	Hash            externalapi.DomainHash
	Version         uint16
	HashMerkleRoot  externalapi.DomainHash
	UTXOCommitment  externalapi.UTXOCommitment
	Timestamp       uint64
	Bits            uint32
	Nonce           uint64
	DAAScore        uint64
	CoinbasePayload []byte
}

// ToHeader builds the finalized block header a genesis block's constants
// describe: no parents, an all-zero accepted-ID Merkle root and pruning
// point (neither concept applies to a block with no parents), and zero blue
// work/blue score.
func (g *GenesisBlock) ToHeader() *externalapi.DomainBlockHeader {
	return &externalapi.DomainBlockHeader{
		Version:              g.Version,
		ParentHashes:         []*externalapi.DomainHash{},
		HashMerkleRoot:       g.HashMerkleRoot,
		AcceptedIDMerkleRoot: externalapi.ZeroHash,
		UTXOCommitment:       g.UTXOCommitment,
		TimeInMilliseconds:   g.Timestamp,
		Bits:                 g.Bits,
		Nonce:                g.Nonce,
		DAAScore:             g.DAAScore,
		BlueWork:             0,
		BlueScore:            0,
		PruningPoint:         externalapi.ZeroHash,
	}
}

// ToBlock builds the full genesis block: the header from ToHeader, plus the
// genesis block's single coinbase transaction, carrying CoinbasePayload and
// no outputs of its own (the genesis coinbase mints nothing payable; its
// payload exists only to anchor the network's identity in the first block).
func (g *GenesisBlock) ToBlock() *externalapi.DomainBlock {
	coinbaseTx := transactionhelper.NewSubnetworkTransaction(
		constants.TXVersion,
		[]*externalapi.DomainTransactionInput{},
		[]*externalapi.DomainTransactionOutput{},
		subnetworks.SubnetworkIDCoinbase,
		0,
		g.CoinbasePayload,
	)

	return &externalapi.DomainBlock{
		Header:       g.ToHeader(),
		Transactions: []*externalapi.DomainTransaction{coinbaseTx},
	}
}

// genesisPayload builds the 20-byte prefix shared by every network's genesis
// coinbase payload - the 19-byte fixed header (blue_score=0,
// subsidy=100_000_000 sompi, script_pub_key_version=0, script length 1)
// plus a single OP-FALSE script byte - followed by the network's
// identifying ASCII tag and any trailing bytes it appends.
func genesisPayload(tag ...byte) []byte {
	payload := []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // Blue score
		0x00, 0xE1, 0xF5, 0x05, 0x00, 0x00, 0x00, 0x00, // Subsidy (100_000_000 sompi)
		0x00, 0x00, // Script public key version
		0x01, // Script public key length
		0x00, // OP-FALSE
	}
	return append(payload, tag...)
}

// mainnetTag / testnetTag / simnetTag / devnetTag are the ASCII network tags
// appended to the fixed 20-byte genesis payload prefix.
var (
	mainnetTag = []byte("waglayla-mainnet")
	testnetTag = []byte("waglayla-testnet")
	simnetTag  = []byte("waglayla-simnet")
	devnetTag  = []byte("waglayla-devnet")
)

// MainnetGenesisBlock is the genesis block for the main network.
var MainnetGenesisBlock = GenesisBlock{
	Hash: externalapi.DomainHash{
		0x91, 0x79, 0xa1, 0xc8, 0xdf, 0xd2, 0x90, 0xd6,
		0x91, 0x4c, 0x0f, 0x1d, 0xae, 0x0e, 0xc4, 0x1a,
		0xa2, 0x49, 0x5d, 0xe2, 0x0d, 0x78, 0x85, 0x88,
		0x49, 0x21, 0x97, 0x97, 0xe4, 0x45, 0x4f, 0xbe,
	},
	Version: 0,
	HashMerkleRoot: externalapi.DomainHash{
		0xd8, 0x44, 0x1d, 0x07, 0x66, 0x63, 0x12, 0xeb,
		0x8c, 0xf0, 0x51, 0x6a, 0x0c, 0x53, 0xcc, 0x46,
		0x60, 0xa7, 0xaf, 0x4a, 0xb3, 0x4c, 0x83, 0x5a,
		0xf0, 0xfd, 0xd2, 0x05, 0x90, 0xb5, 0x7d, 0xb3,
	},
	UTXOCommitment:  externalapi.EmptyMUHash,
	Timestamp:       0x1922F4E39A6,
	Bits:            0x1e7fffff,
	Nonce:           0x4e616f72,
	DAAScore:        0,
	CoinbasePayload: genesisPayload(mainnetTag...),
}

// TestnetGenesisBlock is the genesis block for the test network.
var TestnetGenesisBlock = GenesisBlock{
	Hash: externalapi.DomainHash{
		0x57, 0xd9, 0x4c, 0x8a, 0xb3, 0x04, 0xf6, 0xe2,
		0x62, 0xe0, 0xc6, 0x2e, 0x0a, 0xbf, 0xad, 0x6b,
		0x95, 0x4f, 0x8f, 0x7e, 0x68, 0x21, 0x3c, 0x42,
		0x6e, 0x06, 0xf5, 0x78, 0xe8, 0xf4, 0x5b, 0xbc,
	},
	Version: 0,
	HashMerkleRoot: externalapi.DomainHash{
		0x00, 0x36, 0x41, 0x22, 0x4f, 0x19, 0xb8, 0x20,
		0xda, 0xfb, 0x37, 0xa0, 0x2b, 0x3b, 0xd7, 0x16,
		0x02, 0xd8, 0xb2, 0x19, 0x69, 0xfe, 0x9a, 0x73,
		0x96, 0x8c, 0xca, 0x52, 0x7e, 0xe6, 0xb7, 0x36,
	},
	UTXOCommitment:  externalapi.EmptyMUHash,
	Timestamp:       0x1922F4D97FE,
	Bits:            0x1e7fffff,
	Nonce:           0x14582,
	DAAScore:        0,
	CoinbasePayload: genesisPayload(testnetTag...),
}

// TestnetScaledGenesisBlock is the genesis block for the scaled test network
// (a.k.a. testnet-11): a 10-BPS variant of TestnetGenesisBlock. Its Bits
// field is independently derived from TestnetGenesisBlock's via
// compactbits - see dagconfig's genesis_test.go for the law that ties the
// two together - rather than being an unrelated magic number.
var TestnetScaledGenesisBlock = GenesisBlock{
	Hash: externalapi.DomainHash{
		0xd6, 0xc1, 0x82, 0x5a, 0x48, 0x2b, 0x0a, 0x7e,
		0x95, 0x03, 0x74, 0x2f, 0xa0, 0x18, 0xa7, 0x5b,
		0xc1, 0xbd, 0x09, 0x0d, 0xfd, 0x4f, 0x66, 0xf0,
		0x20, 0x87, 0x2e, 0x25, 0xfe, 0xb5, 0x5c, 0xfc,
	},
	Version: 0,
	HashMerkleRoot: externalapi.DomainHash{
		0x06, 0xe7, 0x41, 0x2d, 0x29, 0xb4, 0x7e, 0x7b,
		0x98, 0xfa, 0x98, 0x2f, 0x74, 0x07, 0x53, 0xf2,
		0xe7, 0xfd, 0x62, 0xee, 0x73, 0x41, 0x46, 0x29,
		0xcc, 0x29, 0x8c, 0x43, 0xf7, 0x29, 0x14, 0x93,
	},
	UTXOCommitment:  externalapi.EmptyMUHash,
	Timestamp:       0x1922F4D97FE,
	Bits:            504155340,
	Nonce:           0x14582,
	DAAScore:        0,
	CoinbasePayload: append(genesisPayload(testnetTag...), 0x0b, 0x04), // TN11, Relaunch 4
}

// SimnetGenesisBlock is the genesis block for the simulation test network.
var SimnetGenesisBlock = GenesisBlock{
	Hash: externalapi.DomainHash{
		0x98, 0x88, 0xfe, 0x7e, 0xca, 0xcb, 0x4d, 0xda,
		0xd1, 0x49, 0x4f, 0x4f, 0xfa, 0xf5, 0xc4, 0xf3,
		0xb0, 0x3a, 0x71, 0xed, 0x7d, 0xc9, 0xee, 0x1c,
		0xca, 0xcb, 0x10, 0xd1, 0xe8, 0xa8, 0xeb, 0x5b,
	},
	Version: 0,
	HashMerkleRoot: externalapi.DomainHash{
		0x19, 0x46, 0xd6, 0x29, 0xf7, 0xe9, 0x22, 0xa7,
		0xbc, 0xed, 0x59, 0x19, 0x05, 0x21, 0xc3, 0x77,
		0x1f, 0x73, 0xd3, 0x52, 0xdd, 0xbb, 0xb6, 0x86,
		0x56, 0x4a, 0xd7, 0xfd, 0x56, 0x85, 0x7c, 0x1b,
	},
	UTXOCommitment:  externalapi.EmptyMUHash,
	Timestamp:       0x17c5f62fbb6,
	Bits:            0x207fffff,
	Nonce:           0x2,
	DAAScore:        0,
	CoinbasePayload: genesisPayload(simnetTag...),
}

// DevnetGenesisBlock is the genesis block for the development network.
var DevnetGenesisBlock = GenesisBlock{
	Hash: externalapi.DomainHash{
		0x4c, 0xb4, 0x8d, 0x0b, 0x20, 0x73, 0xb8, 0x02,
		0x36, 0x01, 0x45, 0xa1, 0x5a, 0xd1, 0xab, 0xdc,
		0x01, 0xd8, 0x9b, 0x5c, 0x2f, 0xe4, 0x72, 0x26,
		0x30, 0xab, 0x9b, 0x5f, 0xe9, 0xdf, 0xc4, 0xf2,
	},
	Version: 0,
	HashMerkleRoot: externalapi.DomainHash{
		0x58, 0xab, 0xf2, 0x03, 0x21, 0xd7, 0x07, 0x16,
		0x16, 0x2b, 0x6b, 0xf8, 0xd9, 0xf5, 0x89, 0xca,
		0x33, 0xae, 0x6e, 0x32, 0xb3, 0xb1, 0x9a, 0xbb,
		0x7f, 0xa6, 0x5d, 0x11, 0x41, 0xa3, 0xf9, 0x4d,
	},
	UTXOCommitment:  externalapi.EmptyMUHash,
	Timestamp:       0x11e9db49828,
	Bits:            0x1e21bc1c,
	Nonce:           0x48e5e,
	DAAScore:        0,
	CoinbasePayload: genesisPayload(devnetTag...),
}
