package types

import (
	"fmt"

	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// STArray is a list of wrapped objects: each element is a single key JSON
// object whose key names an STObject field.
type STArray struct {
	serializer interfaces.BinarySerializer
	depth      int
}

// NewSTArray returns the codec of an array written into serializer.
func NewSTArray(serializer interfaces.BinarySerializer) *STArray {
	return &STArray{serializer: serializer, depth: 1}
}

func newNestedSTArray(serializer interfaces.BinarySerializer, depth int) *STArray {
	return &STArray{serializer: serializer, depth: depth}
}

// FromJSON writes header, object and 0xE1 per element, then 0xF1.
func (a *STArray) FromJSON(value any) ([]byte, error) {
	items, ok := value.([]any)
	if !ok {
		if maps, isMaps := value.([]map[string]any); isMaps {
			items = make([]any, len(maps))
			for i, m := range maps {
				items[i] = m
			}
		} else {
			return nil, fmt.Errorf("%w: STArray got %T", ErrNotAnArray, value)
		}
	}
	defs := a.serializer.Definitions()

	for i, item := range items {
		wrapper, ok := item.(map[string]any)
		if !ok || len(wrapper) != 1 {
			return nil, fmt.Errorf("%w: element %d", ErrInvalidArrayElement, i)
		}
		for name, inner := range wrapper {
			fi, err := defs.GetFieldInstanceByFieldName(name)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			if fi.Type != stObjectType {
				return nil, fmt.Errorf("%w: element %d wraps %s of type %s", ErrInvalidArrayElement, i, name, fi.Type)
			}
			b, err := newNestedSTObject(newSerializer(defs), a.depth+1).FromJSON(inner)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			if err := a.serializer.WriteFieldAndValue(*fi, b); err != nil {
				return nil, err
			}
			a.serializer.Put(serdes.ObjectEndMarker)
		}
	}
	a.serializer.Put(serdes.ArrayEndMarker)
	return a.serializer.GetSink(), nil
}

// ToJSON reads wrapped objects until the array end marker.
func (a *STArray) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	if a.depth > MaxNestingDepth {
		return nil, fmt.Errorf("%w: deeper than %d", ErrNestingTooDeep, MaxNestingDepth)
	}
	items := []any{}
	for {
		if !p.HasMore() {
			return nil, ErrMissingEndMarker
		}
		b, err := p.Peek()
		if err != nil {
			return nil, err
		}
		switch b {
		case serdes.ArrayEndMarker:
			_, err = p.ReadByte()
			return items, err
		case serdes.ObjectEndMarker:
			return nil, fmt.Errorf("%w: object end inside array", ErrUnexpectedEndMarker)
		}

		fi, err := p.ReadField()
		if err != nil {
			return nil, err
		}
		if fi.Type != stObjectType {
			return nil, fmt.Errorf("%w: %s of type %s", ErrInvalidArrayElement, fi.FieldName, fi.Type)
		}
		inner, err := newNestedSTObject(newSerializer(p.Definitions()), a.depth+1).ToJSON(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fi.FieldName, err)
		}
		items = append(items, map[string]any{fi.FieldName: inner})
	}
}
