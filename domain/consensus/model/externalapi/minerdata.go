package externalapi

// MinerData identifies the miner that is building or mined a block: the
// script that should receive that miner's share of rewards, plus an
// arbitrary, miner-chosen extra data blob (conventionally a client version
// string) carried along in the coinbase payload for diagnostics.
type MinerData struct {
	ScriptPublicKey ScriptPublicKey
	ExtraData       []byte
}

// Clone returns a deep copy of this MinerData.
func (md MinerData) Clone() MinerData {
	extraDataClone := make([]byte, len(md.ExtraData))
	copy(extraDataClone, md.ExtraData)
	return MinerData{ScriptPublicKey: md.ScriptPublicKey.Clone(), ExtraData: extraDataClone}
}
