package coinbasemanager

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/waglayla/waglaylad/domain/consensus/model/externalapi"
	"github.com/waglayla/waglaylad/domain/consensus/ruleerrors"
)

// minPayloadLength is the size of the fixed header every coinbase payload
// carries: blue_score (8) + subsidy (8) + script_pub_key_version (2) +
// script_pub_key_len (1).
const minPayloadLength = 8 + 8 + 2 + 1

// SerializeCoinbasePayload encodes coinbaseData's blue score, subsidy, and
// miner data into the fixed little-endian wire layout every coinbase
// transaction's payload follows.
func (c *coinbaseManager) SerializeCoinbasePayload(coinbaseData *externalapi.CoinbaseData) ([]byte, error) {
	script := coinbaseData.MinerData.ScriptPublicKey.Script
	if len(script) > int(c.coinbasePayloadScriptPublicKeyMaxLength) {
		return nil, errors.Wrapf(ruleerrors.ErrPayloadScriptPublicKeyLenAboveMax,
			"script public key length (%d) is above the allowed maximum (%d)",
			len(script), c.coinbasePayloadScriptPublicKeyMaxLength)
	}

	payload := make([]byte, minPayloadLength+len(script)+len(coinbaseData.MinerData.ExtraData))

	binary.LittleEndian.PutUint64(payload[0:8], coinbaseData.BlueScore)
	binary.LittleEndian.PutUint64(payload[8:16], coinbaseData.Subsidy)
	binary.LittleEndian.PutUint16(payload[16:18], coinbaseData.MinerData.ScriptPublicKey.Version)
	payload[18] = byte(len(script))
	copy(payload[minPayloadLength:], script)
	copy(payload[minPayloadLength+len(script):], coinbaseData.MinerData.ExtraData)

	return payload, nil
}

// DeserializeCoinbasePayload parses a coinbase transaction's payload back
// into its blue score, subsidy, and miner data, validating every length
// constraint the wire layout requires.
func (c *coinbaseManager) DeserializeCoinbasePayload(payload []byte) (*externalapi.CoinbaseData, error) {
	if len(payload) < minPayloadLength {
		return nil, errors.Wrapf(ruleerrors.ErrPayloadLenBelowMin,
			"payload length (%d) is below the minimum (%d)", len(payload), minPayloadLength)
	}
	if len(payload) > c.maxCoinbasePayloadLength {
		return nil, errors.Wrapf(ruleerrors.ErrPayloadLenAboveMax,
			"payload length (%d) is above the maximum (%d)", len(payload), c.maxCoinbasePayloadLength)
	}

	blueScore := binary.LittleEndian.Uint64(payload[0:8])
	subsidy := binary.LittleEndian.Uint64(payload[8:16])
	scriptPubKeyVersion := binary.LittleEndian.Uint16(payload[16:18])
	scriptPubKeyLength := payload[18]

	if scriptPubKeyLength > c.coinbasePayloadScriptPublicKeyMaxLength {
		return nil, errors.Wrapf(ruleerrors.ErrPayloadScriptPublicKeyLenAboveMax,
			"declared script public key length (%d) is above the allowed maximum (%d)",
			scriptPubKeyLength, c.coinbasePayloadScriptPublicKeyMaxLength)
	}

	remaining := payload[minPayloadLength:]
	if len(remaining) < int(scriptPubKeyLength) {
		return nil, errors.Wrapf(ruleerrors.ErrPayloadCantContainScriptPublicKey,
			"payload has only %d bytes remaining after its header, which can't contain the declared "+
				"script public key of length %d", len(remaining), scriptPubKeyLength)
	}

	script := make([]byte, scriptPubKeyLength)
	copy(script, remaining[:scriptPubKeyLength])
	extraData := remaining[scriptPubKeyLength:]

	return &externalapi.CoinbaseData{
		BlueScore: blueScore,
		Subsidy:   subsidy,
		MinerData: externalapi.MinerData{
			ScriptPublicKey: externalapi.ScriptPublicKey{
				Version: scriptPubKeyVersion,
				Script:  script,
			},
			ExtraData: extraData,
		},
	}, nil
}

// ModifyCoinbasePayload rewrites an existing payload's miner data in place,
// preserving its blue score and subsidy fields untouched. Whenever the new
// payload fits within the capacity of payload's backing array (in particular
// when its length is unchanged), that array is reused; otherwise a larger
// one is allocated.
func (c *coinbaseManager) ModifyCoinbasePayload(payload []byte, minerData externalapi.MinerData) ([]byte, error) {
	if len(payload) < minPayloadLength {
		return nil, errors.Wrapf(ruleerrors.ErrPayloadLenBelowMin,
			"payload length (%d) is below the minimum (%d)", len(payload), minPayloadLength)
	}

	script := minerData.ScriptPublicKey.Script
	if len(script) > int(c.coinbasePayloadScriptPublicKeyMaxLength) {
		return nil, errors.Wrapf(ruleerrors.ErrPayloadScriptPublicKeyLenAboveMax,
			"script public key length (%d) is above the allowed maximum (%d)",
			len(script), c.coinbasePayloadScriptPublicKeyMaxLength)
	}

	// Truncating to the header and re-appending reuses payload's backing
	// array whenever the new tail fits within its existing capacity,
	// instead of always allocating a fresh one.
	header := payload[:minPayloadLength]
	binary.LittleEndian.PutUint16(header[16:18], minerData.ScriptPublicKey.Version)
	header[18] = byte(len(script))

	newPayload := append(header, script...)
	newPayload = append(newPayload, minerData.ExtraData...)

	return newPayload, nil
}
