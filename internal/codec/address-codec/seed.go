package addresscodec

import (
	"github.com/LeJamon/xrplcodec/internal/crypto"
)

// EncodeSeed encodes 16 bytes of entropy as a seed for keyType.
func EncodeSeed(entropy []byte, keyType crypto.KeyType) (string, error) {
	switch keyType {
	case crypto.KeyTypeSecp256k1:
		return Encode(entropy, FamilySeedPrefix, FamilySeedLength)
	case crypto.KeyTypeEd25519:
		return Encode(entropy, ED25519SeedPrefix, FamilySeedLength)
	}
	return "", wrapf(ErrInvalidKeyType, "%s", keyType)
}

// DecodeSeed returns the entropy of a seed and the algorithm its version
// selects.
func DecodeSeed(seed string) ([]byte, crypto.KeyType, error) {
	d, err := DecodeWithVersions(seed, [][]byte{ED25519SeedPrefix, FamilySeedPrefix}, FamilySeedLength)
	if err != nil {
		return nil, crypto.KeyTypeUnknown, err
	}
	return d.Payload, d.KeyType, nil
}
