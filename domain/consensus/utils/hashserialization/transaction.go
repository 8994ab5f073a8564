package hashserialization

import (
	"io"

	"github.com/pkg/errors"
	"github.com/waglayla/waglaylad/domain/consensus/model/externalapi"
	"github.com/waglayla/waglaylad/domain/consensus/utils/hashes"
	"github.com/waglayla/waglaylad/domain/consensus/utils/transactionhelper"
)

// txEncoding is a bitmask controlling which transaction fields get hashed.
type txEncoding uint8

const (
	txEncodingFull txEncoding = 0

	txEncodingExcludeSignatureScript txEncoding = 1 << iota
)

// TransactionHash returns the hash of the fully-serialized transaction,
// including its payload. Two transactions with the same hash are
// byte-for-byte identical.
func TransactionHash(tx *externalapi.DomainTransaction) *externalapi.DomainHash {
	writer := hashes.NewDoubleHashWriter()
	err := serializeTransaction(writer, tx, txEncodingFull)
	if err != nil {
		panic(errors.Wrap(err, "TransactionHash() failed. this should never fail for structurally-valid transactions"))
	}
	res := writer.Finalize()
	return &res
}

// TransactionID returns the hash of the transaction with its signature
// scripts zeroed out. Coinbase transactions have no inputs, so their ID
// always equals their hash over the signature-script-free encoding; the
// exclusion flag only matters for non-coinbase transactions.
func TransactionID(tx *externalapi.DomainTransaction) *externalapi.DomainHash {
	var encodingFlags txEncoding
	if !transactionhelper.IsCoinBase(tx) {
		encodingFlags = txEncodingExcludeSignatureScript
	}
	writer := hashes.NewDoubleHashWriter()
	err := serializeTransaction(writer, tx, encodingFlags)
	if err != nil {
		panic(errors.Wrap(err, "TransactionID() failed. this should never fail for structurally-valid transactions"))
	}
	res := writer.Finalize()
	return &res
}

func serializeTransaction(w io.Writer, tx *externalapi.DomainTransaction, encodingFlags txEncoding) error {
	if err := writeUint16(w, tx.Version); err != nil {
		return err
	}

	if err := writeUint64(w, uint64(len(tx.Inputs))); err != nil {
		return err
	}
	for _, input := range tx.Inputs {
		if err := writeTransactionInput(w, input, encodingFlags); err != nil {
			return err
		}
	}

	if err := writeUint64(w, uint64(len(tx.Outputs))); err != nil {
		return err
	}
	for _, output := range tx.Outputs {
		if err := writeTransactionOutput(w, output); err != nil {
			return err
		}
	}

	if err := writeUint64(w, tx.LockTime); err != nil {
		return err
	}

	if _, err := w.Write(tx.SubnetworkID[:]); err != nil {
		return err
	}

	if err := writeUint64(w, tx.Gas); err != nil {
		return err
	}

	return writeVarBytes(w, tx.Payload)
}

func writeTransactionInput(w io.Writer, input *externalapi.DomainTransactionInput, encodingFlags txEncoding) error {
	if err := writeHash(w, input.PreviousOutpoint.TransactionID); err != nil {
		return err
	}
	if err := writeUint32(w, input.PreviousOutpoint.Index); err != nil {
		return err
	}

	if encodingFlags&txEncodingExcludeSignatureScript == txEncodingExcludeSignatureScript {
		if err := writeVarBytes(w, []byte{}); err != nil {
			return err
		}
	} else if err := writeVarBytes(w, input.SignatureScript); err != nil {
		return err
	}

	return writeUint64(w, input.Sequence)
}

func writeTransactionOutput(w io.Writer, output *externalapi.DomainTransactionOutput) error {
	if err := writeUint64(w, output.Value); err != nil {
		return err
	}
	if err := writeUint16(w, output.ScriptPublicKey.Version); err != nil {
		return err
	}
	return writeVarBytes(w, output.ScriptPublicKey.Script)
}
