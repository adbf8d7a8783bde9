// Package definitions holds the field, type, transaction type, ledger entry
// type and transaction result tables that drive the binary codec.
//
// A table is immutable once built. Get returns the process-wide table built
// from the embedded definitions.json; Load builds an independent table from
// any document of the same shape.
package definitions

import (
	_ "embed"
	"sort"
	"sync"
)

//go:embed definitions.json
var embeddedDefinitions []byte

var (
	defaultOnce sync.Once
	defaultDefs *Definitions
	defaultErr  error
)

// Definitions is a loaded definitions table.
type Definitions struct {
	Types              map[string]int32
	LedgerEntryTypes   map[string]int32
	Fields             map[string]*FieldInstance
	TransactionResults map[string]int32
	TransactionTypes   map[string]int32

	fieldNamesByHeader   map[FieldHeader]string
	ledgerEntryTypeNames map[int32]string
	txResultNames        map[int32]string
	txTypeNames          map[int32]string
}

// Get returns the table built from the embedded definitions.json. It panics
// if the embedded document is invalid, which only a broken build can cause.
func Get() *Definitions {
	defaultOnce.Do(func() {
		defaultDefs, defaultErr = Load(embeddedDefinitions)
	})
	if defaultErr != nil {
		panic("definitions: embedded definitions.json: " + defaultErr.Error())
	}
	return defaultDefs
}

// Embedded returns the raw embedded definitions document.
func Embedded() []byte {
	out := make([]byte, len(embeddedDefinitions))
	copy(out, embeddedDefinitions)
	return out
}

// GetTypeCodeByTypeName returns the type code of a type name such as "UInt32".
func (d *Definitions) GetTypeCodeByTypeName(typeName string) (int32, error) {
	code, ok := d.Types[typeName]
	if !ok {
		return 0, &NotFoundError{Table: "TypeName", Key: typeName}
	}
	return code, nil
}

// GetTypeNameByFieldName returns the type name of a field.
func (d *Definitions) GetTypeNameByFieldName(fieldName string) (string, error) {
	fi, err := d.GetFieldInstanceByFieldName(fieldName)
	if err != nil {
		return "", err
	}
	return fi.Type, nil
}

// GetFieldInstanceByFieldName returns the field with the given name.
func (d *Definitions) GetFieldInstanceByFieldName(fieldName string) (*FieldInstance, error) {
	fi, ok := d.Fields[fieldName]
	if !ok {
		return nil, &NotFoundError{Table: "FieldName", Key: fieldName}
	}
	return fi, nil
}

// GetFieldHeaderByFieldName returns the header of a field.
func (d *Definitions) GetFieldHeaderByFieldName(fieldName string) (*FieldHeader, error) {
	fi, err := d.GetFieldInstanceByFieldName(fieldName)
	if err != nil {
		return nil, err
	}
	fh := fi.FieldHeader
	return &fh, nil
}

// GetFieldNameByFieldHeader returns the name of the field with header fh.
func (d *Definitions) GetFieldNameByFieldHeader(fh FieldHeader) (string, error) {
	name, ok := d.fieldNamesByHeader[fh]
	if !ok {
		return "", &NotFoundError{Table: "FieldHeader", Key: fh}
	}
	return name, nil
}

// GetFieldInstanceByFieldHeader returns the field with header fh.
func (d *Definitions) GetFieldInstanceByFieldHeader(fh FieldHeader) (*FieldInstance, error) {
	name, err := d.GetFieldNameByFieldHeader(fh)
	if err != nil {
		return nil, err
	}
	return d.GetFieldInstanceByFieldName(name)
}

// CreateFieldHeader builds a header from a type code and field code.
func (d *Definitions) CreateFieldHeader(typecode, fieldcode int32) FieldHeader {
	return FieldHeader{TypeCode: typecode, FieldCode: fieldcode}
}

// GetTransactionTypeCodeByTransactionTypeName maps e.g. "Payment" to 0.
func (d *Definitions) GetTransactionTypeCodeByTransactionTypeName(name string) (int32, error) {
	code, ok := d.TransactionTypes[name]
	if !ok {
		return 0, &NotFoundError{Table: "TransactionType", Key: name}
	}
	return code, nil
}

// GetTransactionTypeNameByTransactionTypeCode maps e.g. 0 to "Payment".
func (d *Definitions) GetTransactionTypeNameByTransactionTypeCode(code int32) (string, error) {
	name, ok := d.txTypeNames[code]
	if !ok {
		return "", &NotFoundError{Table: "TransactionType", Key: code}
	}
	return name, nil
}

// GetLedgerEntryTypeCodeByLedgerEntryTypeName maps e.g. "AccountRoot" to 97.
func (d *Definitions) GetLedgerEntryTypeCodeByLedgerEntryTypeName(name string) (int32, error) {
	code, ok := d.LedgerEntryTypes[name]
	if !ok {
		return 0, &NotFoundError{Table: "LedgerEntryType", Key: name}
	}
	return code, nil
}

// GetLedgerEntryTypeNameByLedgerEntryTypeCode maps e.g. 97 to "AccountRoot".
func (d *Definitions) GetLedgerEntryTypeNameByLedgerEntryTypeCode(code int32) (string, error) {
	name, ok := d.ledgerEntryTypeNames[code]
	if !ok {
		return "", &NotFoundError{Table: "LedgerEntryType", Key: code}
	}
	return name, nil
}

// GetTransactionResultTypeCodeByTransactionResultName maps e.g. "tesSUCCESS" to 0.
func (d *Definitions) GetTransactionResultTypeCodeByTransactionResultName(name string) (int32, error) {
	code, ok := d.TransactionResults[name]
	if !ok {
		return 0, &NotFoundError{Table: "TransactionResult", Key: name}
	}
	return code, nil
}

// GetTransactionResultNameByTransactionResultTypeCode maps e.g. 0 to "tesSUCCESS".
func (d *Definitions) GetTransactionResultNameByTransactionResultTypeCode(code int32) (string, error) {
	name, ok := d.txResultNames[code]
	if !ok {
		return "", &NotFoundError{Table: "TransactionResult", Key: code}
	}
	return name, nil
}

// SortedFieldNames returns the serialized field names in canonical order.
func (d *Definitions) SortedFieldNames() []string {
	names := make([]string, 0, len(d.Fields))
	for name, fi := range d.Fields {
		if fi.IsSerialized {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return CompareFields(d.Fields[names[i]], d.Fields[names[j]]) < 0
	})
	return names
}
