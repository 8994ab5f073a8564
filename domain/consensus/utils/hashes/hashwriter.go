// Package hashes provides the double SHA-256 hash writer used to derive
// block and transaction hashes throughout the coinbase/genesis subsystem.
// Block hashes, transaction hashes, transaction IDs, and Merkle branches all
// go through this same construction - sha256(sha256(data)) - with no
// per-purpose keying or domain separation, matching the "double sha256
// everything" hashing every call site in the teacher performs.
package hashes

import (
	"crypto/sha256"
	"hash"

	"github.com/pkg/errors"
	"github.com/waglayla/waglaylad/domain/consensus/model/externalapi"
)

// HashWriter accumulates written bytes and produces their double SHA-256
// digest as a DomainHash. It implements io.Writer so callers can stream a
// serialization into it field by field instead of building an intermediate
// buffer.
type HashWriter struct {
	hasher hash.Hash
}

// NewDoubleHashWriter returns a HashWriter that double-SHA-256-hashes
// everything written to it.
func NewDoubleHashWriter() *HashWriter {
	return &HashWriter{hasher: sha256.New()}
}

// Write implements io.Writer.
func (hw *HashWriter) Write(p []byte) (int, error) {
	return hw.hasher.Write(p)
}

// Finalize returns the double SHA-256 hash of everything written so far.
func (hw *HashWriter) Finalize() externalapi.DomainHash {
	firstPass := hw.hasher.Sum(nil)
	return sha256.Sum256(firstPass)
}

// HashData returns the double SHA-256 hash of an arbitrary byte slice. Used
// for hashing things that are not themselves transactions or headers, such
// as a coinbase payload.
func HashData(data []byte) externalapi.DomainHash {
	w := NewDoubleHashWriter()
	_, err := w.Write(data)
	if err != nil {
		panic(errors.Wrap(err, "HashData: sha256.Write never fails"))
	}
	return w.Finalize()
}
