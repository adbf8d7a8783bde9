package addresscodec

import (
	"github.com/mr-tron/base58"
)

// Alphabet is the XRP Ledger base58 dictionary. It omits 0, O, I and l.
const Alphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

var xrplAlphabet = base58.NewAlphabet(Alphabet)

// EncodeBase58 encodes b without a checksum. Leading zero bytes become 'r'.
func EncodeBase58(b []byte) string {
	return base58.EncodeAlphabet(b, xrplAlphabet)
}

// DecodeBase58 reverses EncodeBase58.
func DecodeBase58(s string) ([]byte, error) {
	if s == "" {
		return nil, ErrInvalidBase58
	}
	b, err := base58.DecodeAlphabet(s, xrplAlphabet)
	if err != nil {
		return nil, wrapf(ErrInvalidBase58, "%v", err)
	}
	return b, nil
}
