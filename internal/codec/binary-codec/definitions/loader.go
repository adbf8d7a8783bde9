package definitions

import (
	"fmt"
	"reflect"

	"github.com/ugorji/go/codec"

	"github.com/LeJamon/xrplcodec/internal/codec/codecerr"
)

// rawDefinitions mirrors the top level of a definitions document. FIELDS is
// a list of [name, info] pairs, so it is decoded loosely and converted.
type rawDefinitions struct {
	Types              map[string]int32 `codec:"TYPES"`
	LedgerEntryTypes   map[string]int32 `codec:"LEDGER_ENTRY_TYPES"`
	Fields             [][]interface{}  `codec:"FIELDS"`
	TransactionResults map[string]int32 `codec:"TRANSACTION_RESULTS"`
	TransactionTypes   map[string]int32 `codec:"TRANSACTION_TYPES"`
}

type fieldInfo struct {
	Nth            int32
	IsVLEncoded    bool
	IsSerialized   bool
	IsSigningField bool
	Type           string
}

func jsonHandle() *codec.JsonHandle {
	jh := new(codec.JsonHandle)
	jh.MapType = reflect.TypeOf(map[string]interface{}(nil))
	return jh
}

// Load parses a definitions document and builds a table from it.
func Load(data []byte) (*Definitions, error) {
	var raw rawDefinitions
	if err := codec.NewDecoderBytes(data, jsonHandle()).Decode(&raw); err != nil {
		return nil, codecerr.Errorf(codecerr.KindMalformedField, "decoding definitions: %w", err)
	}
	if len(raw.Types) == 0 || len(raw.Fields) == 0 {
		return nil, codecerr.New(codecerr.KindMalformedField, "definitions document has no TYPES or FIELDS")
	}

	d := &Definitions{
		Types:              raw.Types,
		LedgerEntryTypes:   raw.LedgerEntryTypes,
		Fields:             make(map[string]*FieldInstance, len(raw.Fields)),
		TransactionResults: raw.TransactionResults,
		TransactionTypes:   raw.TransactionTypes,
		fieldNamesByHeader: make(map[FieldHeader]string, len(raw.Fields)),
	}

	for i, entry := range raw.Fields {
		name, info, err := convertFieldEntry(entry)
		if err != nil {
			return nil, codecerr.Errorf(codecerr.KindMalformedField, "FIELDS[%d]: %w", i, err)
		}
		typeCode, ok := d.Types[info.Type]
		if !ok {
			return nil, codecerr.Errorf(codecerr.KindMalformedField, "field %s has undefined type %s", name, info.Type)
		}
		fi := newFieldInstance(name, info, typeCode)
		d.Fields[name] = fi
		if fi.IsSerialized && typeCode > 0 && fi.Nth > 0 {
			if other, dup := d.fieldNamesByHeader[fi.FieldHeader]; dup {
				return nil, codecerr.Errorf(codecerr.KindMalformedField, "fields %s and %s share header %v", other, name, fi.FieldHeader)
			}
			d.fieldNamesByHeader[fi.FieldHeader] = name
		}
	}

	d.txTypeNames = invert(d.TransactionTypes)
	d.ledgerEntryTypeNames = invert(d.LedgerEntryTypes)
	d.txResultNames = invert(d.TransactionResults)

	log.Debugf("Loaded definitions: %d types, %d fields, %d transaction types, %d ledger entry types, %d transaction results",
		len(d.Types), len(d.Fields), len(d.TransactionTypes), len(d.LedgerEntryTypes), len(d.TransactionResults))

	return d, nil
}

func convertFieldEntry(entry []interface{}) (string, fieldInfo, error) {
	var info fieldInfo
	if len(entry) != 2 {
		return "", info, fmt.Errorf("expected [name, info] pair, got %d elements", len(entry))
	}
	name, ok := entry[0].(string)
	if !ok {
		return "", info, fmt.Errorf("field name is %T, want string", entry[0])
	}
	m, ok := entry[1].(map[string]interface{})
	if !ok {
		return "", info, fmt.Errorf("field %s info is %T, want object", name, entry[1])
	}

	nth, err := toInt32(m["nth"])
	if err != nil {
		return "", info, fmt.Errorf("field %s nth: %w", name, err)
	}
	info.Nth = nth
	info.IsVLEncoded, _ = m["isVLEncoded"].(bool)
	info.IsSerialized, _ = m["isSerialized"].(bool)
	info.IsSigningField, _ = m["isSigningField"].(bool)
	if info.Type, ok = m["type"].(string); !ok {
		return "", info, fmt.Errorf("field %s has no type", name)
	}
	return name, info, nil
}

func toInt32(v interface{}) (int32, error) {
	switch n := v.(type) {
	case int64:
		return int32(n), nil
	case uint64:
		return int32(n), nil
	case float64:
		return int32(n), nil
	case int:
		return int32(n), nil
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}

func invert(m map[string]int32) map[int32]string {
	out := make(map[int32]string, len(m))
	for name, code := range m {
		out[code] = name
	}
	return out
}
