// Package interfaces defines the parser and serializer contracts the type
// codecs are written against.
//
//revive:disable:var-naming
package interfaces

import (
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/definitions"
	serdesinterfaces "github.com/LeJamon/xrplcodec/internal/codec/binary-codec/serdes/interfaces"
)

// BinaryParser is an interface that defines the methods for a binary parser.
type BinaryParser interface {
	ReadByte() (byte, error)
	ReadField() (*definitions.FieldInstance, error)
	Peek() (byte, error)
	ReadBytes(n int) ([]byte, error)
	HasMore() bool
	ReadVariableLength() (int, error)
	Definitions() serdesinterfaces.Definitions
}
