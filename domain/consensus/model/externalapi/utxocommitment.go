package externalapi

// UTXOCommitmentSize is the size, in bytes, of a UTXO commitment.
const UTXOCommitmentSize = 32

// UTXOCommitment is a Muhash multiset commitment to the full UTXO set
// accepted up to and including a given block. Computing one from a UTXO set
// is the responsibility of the (external) UTXO/Muhash subsystem; this
// module only stores, compares, and embeds the 32-byte result.
type UTXOCommitment [UTXOCommitmentSize]byte

// EmptyMUHash is the commitment of the empty UTXO set - the value every
// genesis block embeds, since no block has ever been accepted yet. See the
// open question recorded in DESIGN.md before changing this value: its
// derivation from the Muhash construction lives outside this module's
// scope, and the all-zero value is a placeholder pending review.
var EmptyMUHash = UTXOCommitment{}
