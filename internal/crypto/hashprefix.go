package crypto

import (
	"crypto/sha512"
	"encoding/binary"
)

// HashPrefix represents hash prefixes used in XRPL for domain separation.
// These prefixes are inserted before the source material to put each hash
// in its own "space", ensuring different types of objects produce different hashes.
type HashPrefix uint32

const (
	// HashPrefixTransactionID is the prefix for transaction ID calculation (TXN\0).
	HashPrefixTransactionID HashPrefix = 0x54584E00

	// HashPrefixTxSign is the prefix for inner transaction to sign (STX\0).
	HashPrefixTxSign HashPrefix = 0x53545800

	// HashPrefixTxMultiSign is the prefix for inner transaction to multi-sign (SMT\0).
	HashPrefixTxMultiSign HashPrefix = 0x534D5400

	// HashPrefixPaymentChannelClaim is the prefix for payment channel claim (CLM\0).
	HashPrefixPaymentChannelClaim HashPrefix = 0x434C4D00

	// HashPrefixBatch is the prefix for batch (BCH\0).
	HashPrefixBatch HashPrefix = 0x42434800
)

// Bytes returns the hash prefix as a 4-byte big-endian slice.
func (hp HashPrefix) Bytes() []byte {
	return binary.BigEndian.AppendUint32(nil, uint32(hp))
}

// PrependHashPrefix prepends the specified hash prefix to the data.
func PrependHashPrefix(prefix HashPrefix, data []byte) []byte {
	result := make([]byte, 4, 4+len(data))
	binary.BigEndian.PutUint32(result, uint32(prefix))
	return append(result, data...)
}

// FinishMultiSigningData appends the signer's account ID to the signing data.
// The account ID binds a multi-signature to one signer, so a signature made
// with a shared key cannot be replayed for another account.
func FinishMultiSigningData(signingData []byte, accountID [AccountIDSize]byte) []byte {
	result := make([]byte, 0, len(signingData)+AccountIDSize)
	result = append(result, signingData...)
	return append(result, accountID[:]...)
}

// Sha512Half returns the first 32 bytes of the SHA-512 digest of msg.
func Sha512Half(msg []byte) [32]byte {
	h := sha512.Sum512(msg)
	var result [32]byte
	copy(result[:], h[:32])
	return result
}
