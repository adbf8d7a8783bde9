package types

import (
	"fmt"

	addresscodec "github.com/LeJamon/xrplcodec/internal/codec/address-codec"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/byteseq"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

const accountIDLength = 20

// AccountID is a 20 byte account identifier rendered as a classic address.
// As a field it is VL encoded; inside amounts and paths it is raw.
type AccountID struct{}

// FromJSON accepts a classic address, 40 hex characters or "" (the zero
// account).
func (a *AccountID) FromJSON(value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: AccountID got %T", ErrNotAString, value)
	}
	return encodeAccountID(s)
}

// ToJSON reads an account ID. With a length hint of 0 it returns "".
func (a *AccountID) ToJSON(p interfaces.BinaryParser, opts ...int) (any, error) {
	n, ok := lengthHint(opts)
	if ok {
		if n == 0 {
			return "", nil
		}
		if n != accountIDLength {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidAccountIDLength, n)
		}
	}
	b, err := p.ReadBytes(accountIDLength)
	if err != nil {
		return nil, err
	}
	return addresscodec.EncodeAccountIDToClassicAddress(b)
}

func encodeAccountID(s string) ([]byte, error) {
	if s == "" {
		return make([]byte, accountIDLength), nil
	}
	if len(s) == accountIDLength*2 && hexDigits.MatchString(s) {
		return byteseq.DecodeHex(s)
	}
	_, accountID, err := addresscodec.DecodeClassicAddressToAccountID(s)
	if err != nil {
		return nil, fmt.Errorf("AccountID %q: %w", s, err)
	}
	return accountID, nil
}
