package externalapi

// DomainTransactionOutpoint is the transaction and output index a
// transaction input spends.
type DomainTransactionOutpoint struct {
	TransactionID DomainHash
	Index         uint32
}

// DomainTransactionInput is a transaction input. Coinbase transactions
// never have any inputs - this type exists so DomainTransaction's shape
// matches every other transaction in the system, not because the coinbase
// manager ever populates one.
type DomainTransactionInput struct {
	PreviousOutpoint DomainTransactionOutpoint
	SignatureScript  []byte
	Sequence         uint64
}

// DomainTransactionOutput is a transaction output: an amount, in sompi, and
// the script that must be satisfied to spend it.
type DomainTransactionOutput struct {
	Value           uint64
	ScriptPublicKey ScriptPublicKey
}

// NewTransactionOutput creates a new DomainTransactionOutput.
func NewTransactionOutput(value uint64, scriptPublicKey ScriptPublicKey) *DomainTransactionOutput {
	return &DomainTransactionOutput{Value: value, ScriptPublicKey: scriptPublicKey}
}

// DomainTransaction is a Kaspa-style DAG transaction. The coinbase manager
// only ever constructs instances with no inputs and a non-native
// SubnetworkID.
type DomainTransaction struct {
	Version      uint16
	Inputs       []*DomainTransactionInput
	Outputs      []*DomainTransactionOutput
	LockTime     uint64
	SubnetworkID DomainSubnetworkID
	Gas          uint64
	Payload      []byte

	// Mass is the transaction's storage/compute mass, as assessed by the
	// (external) mass-calculation step. The coinbase builder always
	// produces a fresh template with Mass left at zero: it is filled in by
	// the block assembler once the full block is known.
	Mass uint64
}
