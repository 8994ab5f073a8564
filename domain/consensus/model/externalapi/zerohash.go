package externalapi

// ZeroHash is the DomainHash value consisting of all zeroes. It is used as
// the accepted-ID Merkle root and pruning point of every genesis header,
// since neither concept is meaningful for a block with no parents.
var ZeroHash = DomainHash{}
