package addresscodec

import (
	"fmt"

	"github.com/LeJamon/xrplcodec/internal/codec/codecerr"
)

var (
	// ErrInvalidBase58 is returned for text outside the base58 alphabet.
	ErrInvalidBase58 = codecerr.New(codecerr.KindAddressEncoding, "invalid base58 text")
	// ErrChecksum is returned when the trailing four bytes do not match.
	ErrChecksum = codecerr.New(codecerr.KindAddressEncoding, "checksum mismatch")
	// ErrInvalidVersion is returned when the decoded version prefix is not
	// one of the expected ones.
	ErrInvalidVersion = codecerr.New(codecerr.KindAddressEncoding, "unexpected version prefix")
	// ErrInvalidPayloadLength is returned when a payload has the wrong size
	// for its version.
	ErrInvalidPayloadLength = codecerr.New(codecerr.KindAddressEncoding, "invalid payload length")
	// ErrInvalidKeyType is returned for a seed algorithm that has no version.
	ErrInvalidKeyType = codecerr.New(codecerr.KindAddressEncoding, "invalid key type")
	// ErrInvalidPublicKey is returned for public key bytes of an unknown algorithm.
	ErrInvalidPublicKey = codecerr.New(codecerr.KindAddressEncoding, "invalid public key")
)

func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
