package crypto

import (
	"crypto/sha256"

	"github.com/decred/dcrd/crypto/ripemd160"
)

const (
	// AccountIDSize is the length of an account ID.
	AccountIDSize = 20
	// NodeIDSize is the length of a node ID.
	NodeIDSize = 20
)

// hash160 returns RIPEMD160(SHA256(b)), the digest behind both account and
// node IDs.
func hash160(b []byte) []byte {
	sum := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

// CalcAccountID derives the account ID of a public key of either key type.
// The whole key is hashed, including the 0xED prefix of Ed25519 keys.
func CalcAccountID(publicKey []byte) [AccountIDSize]byte {
	var id [AccountIDSize]byte
	copy(id[:], hash160(publicKey))
	return id
}

// CalcNodeID derives the ID a validator or peer node is known by from its
// node public key.
func CalcNodeID(publicKey []byte) [NodeIDSize]byte {
	var id [NodeIDSize]byte
	copy(id[:], hash160(publicKey))
	return id
}
