package types

import (
	"fmt"

	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

const (
	typeAccount  = 0x01
	typeCurrency = 0x10
	typeIssuer   = 0x20

	pathSeparatorByte = 0xFF
	pathSetEndByte    = 0x00
)

// PathSet is a list of payment paths. Each path is a list of hops and each
// hop names an account, a currency, an issuer or a combination.
type PathSet struct{}

// FromJSON encodes an array of arrays of hop objects.
func (p *PathSet) FromJSON(value any) ([]byte, error) {
	paths, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: PathSet got %T", ErrNotAnArray, value)
	}

	var out []byte
	for i, raw := range paths {
		if i > 0 {
			out = append(out, pathSeparatorByte)
		}
		path, err := encodePath(raw)
		if err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
		out = append(out, path...)
	}
	return append(out, pathSetEndByte), nil
}

func encodePath(value any) ([]byte, error) {
	hops, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: path got %T", ErrNotAnArray, value)
	}
	if len(hops) == 0 {
		return nil, ErrEmptyPath
	}

	var out []byte
	for _, raw := range hops {
		hop, err := encodeHop(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, hop...)
	}
	return out, nil
}

func encodeHop(value any) ([]byte, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: hop got %T", ErrNotAnObject, value)
	}

	var typ byte
	body := make([]byte, 0, 3*accountIDLength)
	if v, ok := m["account"]; ok {
		b, err := (&AccountID{}).FromJSON(v)
		if err != nil {
			return nil, err
		}
		typ |= typeAccount
		body = append(body, b...)
	}
	if v, ok := m["currency"]; ok {
		b, err := (&Currency{}).FromJSON(v)
		if err != nil {
			return nil, err
		}
		typ |= typeCurrency
		body = append(body, b...)
	}
	if v, ok := m["issuer"]; ok {
		b, err := (&AccountID{}).FromJSON(v)
		if err != nil {
			return nil, err
		}
		typ |= typeIssuer
		body = append(body, b...)
	}
	if typ == 0 {
		return nil, ErrInvalidPathHop
	}
	return append([]byte{typ}, body...), nil
}

// ToJSON reads paths until the path set end byte.
func (p *PathSet) ToJSON(parser interfaces.BinaryParser, _ ...int) (any, error) {
	paths := []any{}
	path := []any{}
	for {
		b, err := parser.ReadByte()
		if err != nil {
			return nil, err
		}
		switch b {
		case pathSetEndByte, pathSeparatorByte:
			if len(path) == 0 {
				if b == pathSetEndByte && len(paths) == 0 {
					return paths, nil
				}
				return nil, ErrEmptyPath
			}
			paths = append(paths, path)
			if b == pathSetEndByte {
				return paths, nil
			}
			path = []any{}
		default:
			hop, err := decodeHop(parser, b)
			if err != nil {
				return nil, err
			}
			path = append(path, hop)
		}
	}
}

func decodeHop(parser interfaces.BinaryParser, typ byte) (map[string]any, error) {
	if typ&^(typeAccount|typeCurrency|typeIssuer) != 0 {
		return nil, fmt.Errorf("%w: 0x%02X", ErrInvalidHopType, typ)
	}

	hop := make(map[string]any, 3)
	if typ&typeAccount != 0 {
		v, err := (&AccountID{}).ToJSON(parser)
		if err != nil {
			return nil, err
		}
		hop["account"] = v
	}
	if typ&typeCurrency != 0 {
		v, err := (&Currency{}).ToJSON(parser)
		if err != nil {
			return nil, err
		}
		hop["currency"] = v
	}
	if typ&typeIssuer != 0 {
		v, err := (&AccountID{}).ToJSON(parser)
		if err != nil {
			return nil, err
		}
		hop["issuer"] = v
	}
	return hop, nil
}
