// Package subnetworks holds the well-known subnetwork IDs every node must
// recognize natively.
package subnetworks

import "github.com/waglayla/waglaylad/domain/consensus/model/externalapi"

// SubnetworkIDNative is the subnetwork ID of ordinary, fully-validated
// transactions.
var SubnetworkIDNative = externalapi.DomainSubnetworkID{}

// SubnetworkIDCoinbase is the subnetwork ID every coinbase transaction
// carries.
var SubnetworkIDCoinbase = externalapi.DomainSubnetworkID{1}

// IsBuiltIn returns whether the given subnetwork ID is one of the built-in
// subnetworks every node processes regardless of subnetwork registration.
func IsBuiltIn(id externalapi.DomainSubnetworkID) bool {
	return id.Equal(SubnetworkIDNative) || id.Equal(SubnetworkIDCoinbase)
}
