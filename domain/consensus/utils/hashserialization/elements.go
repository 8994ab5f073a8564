package hashserialization

import (
	"encoding/binary"
	"io"

	"github.com/waglayla/waglaylad/domain/consensus/model/externalapi"
)

var littleEndian = binary.LittleEndian

func writeUint16(w io.Writer, value uint16) error {
	var buf [2]byte
	littleEndian.PutUint16(buf[:], value)
	_, err := w.Write(buf[:])
	return err
}

func writeUint32(w io.Writer, value uint32) error {
	var buf [4]byte
	littleEndian.PutUint32(buf[:], value)
	_, err := w.Write(buf[:])
	return err
}

func writeUint64(w io.Writer, value uint64) error {
	var buf [8]byte
	littleEndian.PutUint64(buf[:], value)
	_, err := w.Write(buf[:])
	return err
}

func writeHash(w io.Writer, hash externalapi.DomainHash) error {
	_, err := w.Write(hash[:])
	return err
}

// writeVarBytes writes the length of data as a uint64 followed by data
// itself, so that a reader with no other framing can tell where the field
// ends.
func writeVarBytes(w io.Writer, data []byte) error {
	if err := writeUint64(w, uint64(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}
