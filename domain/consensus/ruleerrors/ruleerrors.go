// Package ruleerrors holds the sentinel errors the coinbase payload codec
// can return. Callers compare against these with errors.Is; the
// accompanying message (attached via errors.Wrapf at the call site) carries
// the offending lengths for diagnostics.
package ruleerrors

import "github.com/pkg/errors"

var (
	// ErrPayloadLenBelowMin indicates a coinbase payload shorter than the
	// fixed 19-byte header every payload must have.
	ErrPayloadLenBelowMin = errors.New("payload length is below the minimum")

	// ErrPayloadLenAboveMax indicates a coinbase payload longer than the
	// network's max-coinbase-payload-length limit.
	ErrPayloadLenAboveMax = errors.New("payload length is above the maximum")

	// ErrPayloadScriptPublicKeyLenAboveMax indicates a script public key -
	// either supplied for serialization or declared in a payload being
	// parsed - longer than the network's script-public-key length cap.
	ErrPayloadScriptPublicKeyLenAboveMax = errors.New("payload script public key length is above the maximum")

	// ErrPayloadCantContainScriptPublicKey indicates a payload whose
	// declared script length doesn't fit in the bytes remaining after the
	// fixed header.
	ErrPayloadCantContainScriptPublicKey = errors.New("payload can't contain the declared script public key")
)
