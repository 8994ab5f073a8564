// Package transactionhelper holds small, widely-used helpers for building
// and classifying transactions, shared by anything that needs to construct
// or recognize a coinbase transaction.
package transactionhelper

import (
	"github.com/waglayla/waglaylad/domain/consensus/model/externalapi"
	"github.com/waglayla/waglaylad/domain/consensus/utils/subnetworks"
)

// NewSubnetworkTransaction creates a new DomainTransaction for the given
// subnetwork, filling in the fields every subnetwork transaction shares.
func NewSubnetworkTransaction(version uint16, inputs []*externalapi.DomainTransactionInput,
	outputs []*externalapi.DomainTransactionOutput, subnetworkID externalapi.DomainSubnetworkID,
	gas uint64, payload []byte) *externalapi.DomainTransaction {

	return &externalapi.DomainTransaction{
		Version:      version,
		Inputs:       inputs,
		Outputs:      outputs,
		LockTime:     0,
		SubnetworkID: subnetworkID,
		Gas:          gas,
		Payload:      payload,
	}
}

// IsCoinBase determines whether a transaction is a coinbase transaction, by
// checking that it belongs to the coinbase subnetwork.
func IsCoinBase(tx *externalapi.DomainTransaction) bool {
	return tx.SubnetworkID.Equal(subnetworks.SubnetworkIDCoinbase)
}
