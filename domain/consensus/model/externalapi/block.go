package externalapi

// DomainBlockHeader is a block header: everything needed to verify a
// block's proof of work and its place in the DAG, without its transaction
// bodies.
type DomainBlockHeader struct {
	Version              uint16
	ParentHashes         []*DomainHash
	HashMerkleRoot       DomainHash
	AcceptedIDMerkleRoot DomainHash
	UTXOCommitment       UTXOCommitment
	TimeInMilliseconds   uint64
	Bits                 uint32
	Nonce                uint64
	DAAScore             uint64
	BlueWork             uint64
	BlueScore            uint64
	PruningPoint         DomainHash
}

// DomainBlock is a block header together with its transactions.
type DomainBlock struct {
	Header       *DomainBlockHeader
	Transactions []*DomainTransaction
}
