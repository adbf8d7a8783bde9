package testutil

import (
	"testing"

	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/serdes"
)

// GetFieldInstance returns a FieldInstance for the given field name.
// It fails the test if the field is not found.
func GetFieldInstance(t *testing.T, fieldName string) definitions.FieldInstance {
	t.Helper()
	fi, err := definitions.Get().GetFieldInstanceByFieldName(fieldName)
	if err != nil {
		t.Fatalf("failed to get field instance for %s: %v", fieldName, err)
	}
	return *fi
}

// NewSerializer returns an empty serializer over the default definitions.
func NewSerializer() *serdes.BinarySerializer {
	return serdes.NewBinarySerializer(serdes.NewFieldIDCodec(definitions.Get()))
}

// NewParser returns a parser over data and the default definitions.
func NewParser(t *testing.T, data []byte) *serdes.BinaryParser {
	t.Helper()
	return serdes.NewBinaryParser(data, definitions.Get())
}
