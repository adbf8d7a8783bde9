// Package crypto provides the hashing and key identification primitives the
// codecs need: account IDs, hash prefixes, SHA-512Half and public key
// classification.
package crypto

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PublicKeyLength is the length of a ledger public key of either algorithm.
const PublicKeyLength = 33

// ed25519KeyPrefix marks an Ed25519 key padded to 33 bytes.
const ed25519KeyPrefix = 0xED

// ErrInvalidPublicKey is returned by ParsePublicKey for keys that are not a
// valid point of their algorithm.
var ErrInvalidPublicKey = errors.New("invalid public key")

// KeyType represents the type of cryptographic key used in XRPL.
type KeyType int

const (
	// KeyTypeUnknown indicates an unknown or invalid key type.
	KeyTypeUnknown KeyType = iota
	// KeyTypeSecp256k1 indicates a secp256k1 (ECDSA) key.
	KeyTypeSecp256k1
	// KeyTypeEd25519 indicates an Ed25519 key.
	KeyTypeEd25519
)

// String returns the string representation of the key type.
func (kt KeyType) String() string {
	switch kt {
	case KeyTypeSecp256k1:
		return "secp256k1"
	case KeyTypeEd25519:
		return "ed25519"
	default:
		return "unknown"
	}
}

// KeyTypeFromString parses the names returned by String.
func KeyTypeFromString(s string) (KeyType, error) {
	switch s {
	case "secp256k1":
		return KeyTypeSecp256k1, nil
	case "ed25519":
		return KeyTypeEd25519, nil
	}
	return KeyTypeUnknown, fmt.Errorf("unknown key type %q", s)
}

// PublicKeyType determines the key type from a public key's raw bytes.
// It returns KeyTypeUnknown if the public key format is not recognized.
//
// Public key formats:
//   - Ed25519: 33 bytes, first byte is 0xED
//   - secp256k1: 33 bytes, first byte is 0x02 or 0x03 (compressed format)
func PublicKeyType(pubKey []byte) KeyType {
	if len(pubKey) != PublicKeyLength {
		return KeyTypeUnknown
	}

	switch pubKey[0] {
	case ed25519KeyPrefix:
		return KeyTypeEd25519
	case 0x02, 0x03:
		return KeyTypeSecp256k1
	default:
		return KeyTypeUnknown
	}
}

// IsValidPublicKey returns true if the public key has a valid format.
func IsValidPublicKey(pubKey []byte) bool {
	return PublicKeyType(pubKey) != KeyTypeUnknown
}

// ParsePublicKey classifies pubKey and, for secp256k1, checks that it is a
// point on the curve. Ed25519 keys are only checked for shape.
func ParsePublicKey(pubKey []byte) (KeyType, error) {
	kt := PublicKeyType(pubKey)
	switch kt {
	case KeyTypeSecp256k1:
		if _, err := secp256k1.ParsePubKey(pubKey); err != nil {
			return KeyTypeUnknown, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
		}
	case KeyTypeUnknown:
		return KeyTypeUnknown, fmt.Errorf("%w: unrecognized format", ErrInvalidPublicKey)
	}
	return kt, nil
}
