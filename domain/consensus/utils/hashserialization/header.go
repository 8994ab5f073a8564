package hashserialization

import (
	"io"

	"github.com/pkg/errors"
	"github.com/waglayla/waglaylad/domain/consensus/model/externalapi"
	"github.com/waglayla/waglaylad/domain/consensus/utils/hashes"
)

func serializeHeader(w io.Writer, header *externalapi.DomainBlockHeader) error {
	if err := writeUint16(w, header.Version); err != nil {
		return err
	}

	if err := writeUint64(w, uint64(len(header.ParentHashes))); err != nil {
		return err
	}
	for _, hash := range header.ParentHashes {
		if err := writeHash(w, *hash); err != nil {
			return err
		}
	}

	if err := writeHash(w, header.HashMerkleRoot); err != nil {
		return err
	}
	if err := writeHash(w, header.AcceptedIDMerkleRoot); err != nil {
		return err
	}
	if _, err := w.Write(header.UTXOCommitment[:]); err != nil {
		return err
	}
	if err := writeUint64(w, header.TimeInMilliseconds); err != nil {
		return err
	}
	if err := writeUint32(w, header.Bits); err != nil {
		return err
	}
	if err := writeUint64(w, header.Nonce); err != nil {
		return err
	}
	if err := writeUint64(w, header.DAAScore); err != nil {
		return err
	}
	if err := writeUint64(w, header.BlueWork); err != nil {
		return err
	}
	if err := writeUint64(w, header.BlueScore); err != nil {
		return err
	}
	return writeHash(w, header.PruningPoint)
}

// HeaderHash returns the hash of a fully-serialized block header.
func HeaderHash(header *externalapi.DomainBlockHeader) *externalapi.DomainHash {
	writer := hashes.NewDoubleHashWriter()
	err := serializeHeader(writer, header)
	if err != nil {
		panic(errors.Wrap(err, "HeaderHash() failed. this should never fail unless DomainBlockHeader was changed"))
	}
	res := writer.Finalize()
	return &res
}
