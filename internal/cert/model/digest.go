package model

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Fingerprint computes the one-way digest anchored on the ledger: legacy
// Keccak-256 over the input, 0x-prefixed hex. This must match the digest the
// smart contract clients compute.
func Fingerprint(data []byte) string {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return "0x" + hex.EncodeToString(h.Sum(nil))
}

// Hash returns the fingerprint of the list's canonical serialization. It is the
// certificate's identity and primary key.
func (l FieldList) Hash() string {
	return Fingerprint(l.Serialize())
}

// VerifyHash recomputes the fingerprint from the authoritative fields and
// reports whether it equals the claimed hash. A mismatch signals tampered data
// or a serialization-order bug and must abort the action that produced it.
func (l FieldList) VerifyHash(claimed string) bool {
	return l.Hash() == claimed
}
