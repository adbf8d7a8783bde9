package interfaces

import "github.com/LeJamon/xrplcodec/internal/codec/binary-codec/definitions"

// Definitions is the subset of the definitions table the parser, serializer
// and field codecs depend on.
type Definitions interface {
	GetFieldNameByFieldHeader(fh definitions.FieldHeader) (string, error)
	GetFieldInstanceByFieldName(fieldName string) (*definitions.FieldInstance, error)
	GetFieldHeaderByFieldName(fieldName string) (*definitions.FieldHeader, error)
	CreateFieldHeader(typecode, fieldcode int32) definitions.FieldHeader

	GetTransactionTypeCodeByTransactionTypeName(name string) (int32, error)
	GetTransactionTypeNameByTransactionTypeCode(code int32) (string, error)
	GetLedgerEntryTypeCodeByLedgerEntryTypeName(name string) (int32, error)
	GetLedgerEntryTypeNameByLedgerEntryTypeCode(code int32) (string, error)
	GetTransactionResultTypeCodeByTransactionResultName(name string) (int32, error)
	GetTransactionResultNameByTransactionResultTypeCode(code int32) (string, error)
}
