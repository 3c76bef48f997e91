package flvparse

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Script value type markers.
const (
	markerNumber      = 0x00
	markerBoolean     = 0x01
	markerString      = 0x02
	markerObject      = 0x03
	markerMovieClip   = 0x04
	markerNull        = 0x05
	markerUndefined   = 0x06
	markerReference   = 0x07
	markerECMAArray   = 0x08
	markerStrictArray = 0x0a
	markerDate        = 0x0b
	markerLongString  = 0x0c
)

// objectEndMarker terminates the property list of an Object or ECMAArray.
var objectEndMarker = [3]byte{0x00, 0x00, 0x09}

// ScriptValue is one node of a script value tree. The concrete types are
// Number, Boolean, String, Object, MovieClip, Null, Undefined, Reference,
// ECMAArray, StrictArray, Date, and LongString.
type ScriptValue interface {
	isScriptValue()
}

type (
	Number  float64
	Boolean bool
	String  string

	// Object is an ordered property list. Order is the wire order.
	Object struct {
		Properties []ObjectProperty
	}

	MovieClip struct{}
	Null      struct{}
	Undefined struct{}

	// Reference is an index into a value table the container format
	// defines but this decoder does not resolve.
	Reference uint16

	// ECMAArray is an Object preceded by an advisory element count on
	// the wire. The count is not retained; the property list still ends
	// at the object end marker.
	ECMAArray struct {
		Properties []ObjectProperty
	}

	StrictArray []ScriptValue

	Date struct {
		DateTime            float64 // milliseconds since the Unix epoch
		LocalDateTimeOffset int16   // minutes from UTC, negative west of Greenwich
	}

	LongString string
)

func (Number) isScriptValue()      {}
func (Boolean) isScriptValue()     {}
func (String) isScriptValue()      {}
func (Object) isScriptValue()      {}
func (MovieClip) isScriptValue()   {}
func (Null) isScriptValue()        {}
func (Undefined) isScriptValue()   {}
func (Reference) isScriptValue()   {}
func (ECMAArray) isScriptValue()   {}
func (StrictArray) isScriptValue() {}
func (Date) isScriptValue()        {}
func (LongString) isScriptValue()  {}

// ObjectProperty is one name/value pair of an Object or ECMAArray.
type ObjectProperty struct {
	Name  string
	Value ScriptValue
}

// ScriptData is the payload of a script tag: a method or object name,
// typically "onMetaData", and one argument value.
type ScriptData struct {
	Name  string
	Value ScriptValue
}

func (*ScriptData) isTagData() {}

// decodeScriptData decodes a script tag payload. The name is encoded as a
// bare marker-2 string; one full marker-prefixed value follows. Bytes
// past the value are tolerated, some muxers pad script tags.
func decodeScriptData(b []byte, maxDepth int) (*ScriptData, error) {
	r := newReader(b)
	m, err := r.u8()
	if err != nil {
		return nil, err
	}
	if m != markerString {
		return nil, fmt.Errorf("%w: script tag name has marker %d", ErrUnknownScriptValueType, m)
	}
	name, err := decodeShortString(r)
	if err != nil {
		return nil, err
	}
	v, err := decodeValue(r, maxDepth)
	if err != nil {
		return nil, err
	}
	return &ScriptData{Name: name, Value: v}, nil
}

// decodeValue decodes one marker-prefixed value. depth is the remaining
// nesting budget: it decrements for the children of every Object,
// ECMAArray, and StrictArray, and hitting zero fails the decode.
func decodeValue(r *reader, depth int) (ScriptValue, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("%w: offset %d", ErrDepthExceeded, r.off)
	}
	m, err := r.u8()
	if err != nil {
		return nil, err
	}
	switch m {
	case markerNumber:
		f, err := r.f64()
		if err != nil {
			return nil, err
		}
		return Number(f), nil
	case markerBoolean:
		b, err := r.u8()
		if err != nil {
			return nil, err
		}
		return Boolean(b != 0), nil
	case markerString:
		s, err := decodeShortString(r)
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case markerObject:
		props, err := decodeProperties(r, depth-1)
		if err != nil {
			return nil, err
		}
		return Object{Properties: props}, nil
	case markerMovieClip:
		return MovieClip{}, nil
	case markerNull:
		return Null{}, nil
	case markerUndefined:
		return Undefined{}, nil
	case markerReference:
		idx, err := r.u16()
		if err != nil {
			return nil, err
		}
		return Reference(idx), nil
	case markerECMAArray:
		// Advisory count only. Real files get it wrong, so it is read
		// and discarded; the end marker decides where the list stops.
		if _, err := r.u32(); err != nil {
			return nil, err
		}
		props, err := decodeProperties(r, depth-1)
		if err != nil {
			return nil, err
		}
		return ECMAArray{Properties: props}, nil
	case markerStrictArray:
		n, err := r.u32()
		if err != nil {
			return nil, err
		}
		var arr StrictArray
		for i := uint32(0); i < n; i++ {
			v, err := decodeValue(r, depth-1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case markerDate:
		millis, err := r.f64()
		if err != nil {
			return nil, err
		}
		off, err := r.i16()
		if err != nil {
			return nil, err
		}
		return Date{DateTime: millis, LocalDateTimeOffset: off}, nil
	case markerLongString:
		n, err := r.u32()
		if err != nil {
			return nil, err
		}
		s, err := takeUTF8(r, int(n))
		if err != nil {
			return nil, err
		}
		return LongString(s), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownScriptValueType, m)
	}
}

// decodeProperties reads {name, value} pairs until the object end marker.
// The marker is consumed and excluded from the result.
func decodeProperties(r *reader, depth int) ([]ObjectProperty, error) {
	var props []ObjectProperty
	for {
		b, ok := r.peek(3)
		if !ok {
			return nil, fmt.Errorf("%w: offset %d", ErrMissingObjectEnd, r.off)
		}
		if bytes.Equal(b, objectEndMarker[:]) {
			r.skip(3)
			return props, nil
		}
		name, err := decodeShortString(r)
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(r, depth)
		if err != nil {
			return nil, err
		}
		props = append(props, ObjectProperty{Name: name, Value: v})
	}
}

// decodeShortString reads a u16-length-prefixed UTF-8 string.
func decodeShortString(r *reader) (string, error) {
	n, err := r.u16()
	if err != nil {
		return "", err
	}
	return takeUTF8(r, int(n))
}

func takeUTF8(r *reader, n int) (string, error) {
	b, err := r.take(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}
