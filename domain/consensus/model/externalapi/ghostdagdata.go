package externalapi

// GhostdagData carries the subset of a GHOSTDAG-ordering result the
// coinbase manager needs: the block's blue score and the blue/red partition
// of its mergeset. The ordering of MergeSetBlues and MergeSetReds is
// determined entirely by the GHOSTDAG manager and must be preserved by
// every consumer - the coinbase builder pays blues out in exactly the order
// it receives them.
type GhostdagData struct {
	BlueScore     uint64
	MergeSetBlues []*DomainHash
	MergeSetReds  []*DomainHash
}
