package externalapi

// ScriptPublicKey houses a script and a version that together describe how
// a transaction output may be spent. The version allows the script
// interpreter to evolve without invalidating old outputs: an output's
// ScriptPublicKey is only interpreted under the rules of the version it
// declares.
type ScriptPublicKey struct {
	Version uint16
	Script  []byte
}

// NewScriptPublicKey returns a new ScriptPublicKey with the given version
// and script. The provided script is not copied; callers that intend to
// reuse the backing array should clone it first.
func NewScriptPublicKey(version uint16, script []byte) ScriptPublicKey {
	return ScriptPublicKey{Version: version, Script: script}
}

// Clone returns a deep copy of this ScriptPublicKey.
func (spk ScriptPublicKey) Clone() ScriptPublicKey {
	scriptClone := make([]byte, len(spk.Script))
	copy(scriptClone, spk.Script)
	return ScriptPublicKey{Version: spk.Version, Script: scriptClone}
}

// Equal returns whether spk equals other.
func (spk ScriptPublicKey) Equal(other ScriptPublicKey) bool {
	if spk.Version != other.Version {
		return false
	}
	if len(spk.Script) != len(other.Script) {
		return false
	}
	for i, b := range spk.Script {
		if other.Script[i] != b {
			return false
		}
	}
	return true
}
