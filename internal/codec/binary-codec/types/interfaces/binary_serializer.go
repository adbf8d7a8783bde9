//revive:disable:var-naming
package interfaces

import (
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/definitions"
	serdesinterfaces "github.com/LeJamon/xrplcodec/internal/codec/binary-codec/serdes/interfaces"
)

// BinarySerializer is an interface that defines the methods for a binary serializer.
type BinarySerializer interface {
	WriteFieldAndValue(fieldInstance definitions.FieldInstance, value []byte) error
	Put(b ...byte)
	GetSink() []byte
	Definitions() serdesinterfaces.Definitions
}
