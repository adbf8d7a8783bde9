package addresscodec

import (
	"encoding/hex"

	"github.com/LeJamon/xrplcodec/internal/crypto"
)

// EncodeAccountIDToClassicAddress encodes a 20 byte account ID.
func EncodeAccountIDToClassicAddress(accountID []byte) (string, error) {
	return Encode(accountID, AccountAddressPrefix, AccountAddressLength)
}

// DecodeClassicAddressToAccountID returns the version prefix and the 20
// byte account ID of a classic address.
func DecodeClassicAddressToAccountID(address string) (typePrefix, accountID []byte, err error) {
	payload, err := Decode(address, AccountAddressPrefix)
	if err != nil {
		return nil, nil, err
	}
	if len(payload) != AccountAddressLength {
		return nil, nil, wrapf(ErrInvalidPayloadLength, "account ID of %d bytes", len(payload))
	}
	return AccountAddressPrefix, payload, nil
}

// IsValidClassicAddress reports whether address decodes to an account ID.
func IsValidClassicAddress(address string) bool {
	_, _, err := DecodeClassicAddressToAccountID(address)
	return err == nil
}

// Sha256RipeMD160 returns RIPEMD160(SHA256(b)).
func Sha256RipeMD160(b []byte) []byte {
	id := crypto.CalcAccountID(b)
	return id[:]
}

// EncodeClassicAddressFromPublicKeyHex derives the classic address of a hex
// encoded public key.
func EncodeClassicAddressFromPublicKeyHex(pubKeyHex string) (string, error) {
	pubKey, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return "", wrapf(ErrInvalidPublicKey, "%v", err)
	}
	if _, err := crypto.ParsePublicKey(pubKey); err != nil {
		return "", wrapf(ErrInvalidPublicKey, "%v", err)
	}
	return EncodeAccountIDToClassicAddress(Sha256RipeMD160(pubKey))
}
