// Package addresscodec implements Base58Check, the text encoding of account
// addresses, public keys and seeds. Every encoded value is a version prefix
// followed by a payload and the first four bytes of the payload's double
// SHA-256.
package addresscodec

import (
	"bytes"
	"crypto/sha256"

	"github.com/LeJamon/xrplcodec/internal/crypto"
)

const (
	// AccountAddressLength is the payload length of a classic address.
	AccountAddressLength = 20
	// PublicKeyLength is the payload length of a public key.
	PublicKeyLength = 33
	// FamilySeedLength is the entropy length of a seed.
	FamilySeedLength = 16

	checksumLength = 4
)

var (
	// AccountAddressPrefix is the version of classic addresses ('r').
	AccountAddressPrefix = []byte{0x00}
	// AccountPublicKeyPrefix is the version of account public keys ('a').
	AccountPublicKeyPrefix = []byte{0x23}
	// AccountSecretKeyPrefix is the version of account private keys ('p').
	AccountSecretKeyPrefix = []byte{0x22}
	// NodePublicKeyPrefix is the version of node public keys ('n').
	NodePublicKeyPrefix = []byte{0x1C}
	// NodePrivateKeyPrefix is the version of node private keys.
	NodePrivateKeyPrefix = []byte{0x20}
	// FamilySeedPrefix is the version of secp256k1 seeds ('s').
	FamilySeedPrefix = []byte{0x21}
	// ED25519SeedPrefix is the version of Ed25519 seeds ("sEd").
	ED25519SeedPrefix = []byte{0x01, 0xE1, 0x4B}
)

// Decoded is the result of DecodeWithVersions. KeyType is set when the
// version is one of the seed versions.
type Decoded struct {
	Version []byte
	Payload []byte
	KeyType crypto.KeyType
}

func checksum(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:checksumLength]
}

// Base58CheckEncode encodes prefix||input followed by its checksum.
func Base58CheckEncode(input []byte, prefix ...byte) string {
	body := make([]byte, 0, len(prefix)+len(input)+checksumLength)
	body = append(body, prefix...)
	body = append(body, input...)
	body = append(body, checksum(body)...)
	return EncodeBase58(body)
}

// Base58CheckDecode verifies the checksum of s and returns the version
// prefix and payload together.
func Base58CheckDecode(s string) ([]byte, error) {
	b, err := DecodeBase58(s)
	if err != nil {
		return nil, err
	}
	if len(b) < checksumLength+1 {
		return nil, wrapf(ErrInvalidPayloadLength, "%d bytes is too short", len(b))
	}
	body, sum := b[:len(b)-checksumLength], b[len(b)-checksumLength:]
	if !bytes.Equal(checksum(body), sum) {
		return nil, ErrChecksum
	}
	return body, nil
}

// Encode encodes payload under prefix. The payload must be expectedLength
// bytes long.
func Encode(payload, prefix []byte, expectedLength int) (string, error) {
	if len(payload) != expectedLength {
		return "", wrapf(ErrInvalidPayloadLength, "got %d bytes, want %d", len(payload), expectedLength)
	}
	return Base58CheckEncode(payload, prefix...), nil
}

// Decode decodes s and checks that it carries prefix. The payload is
// returned without the prefix.
func Decode(s string, prefix []byte) ([]byte, error) {
	body, err := Base58CheckDecode(s)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(body, prefix) {
		return nil, ErrInvalidVersion
	}
	return body[len(prefix):], nil
}

// DecodeWithVersions decodes s against each candidate version in turn and
// returns the first one whose prefix matches with a payload of
// expectedLength bytes.
func DecodeWithVersions(s string, versions [][]byte, expectedLength int) (Decoded, error) {
	body, err := Base58CheckDecode(s)
	if err != nil {
		return Decoded{}, err
	}
	for _, v := range versions {
		if bytes.HasPrefix(body, v) && len(body)-len(v) == expectedLength {
			return Decoded{Version: v, Payload: body[len(v):], KeyType: seedKeyType(v)}, nil
		}
	}
	return Decoded{}, ErrInvalidVersion
}

func seedKeyType(version []byte) crypto.KeyType {
	switch {
	case bytes.Equal(version, ED25519SeedPrefix):
		return crypto.KeyTypeEd25519
	case bytes.Equal(version, FamilySeedPrefix):
		return crypto.KeyTypeSecp256k1
	}
	return crypto.KeyTypeUnknown
}
