package json

import (
	"io"
	"math"
	"strconv"
	"sync"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Appender is implemented by any value that can append its own JSON
// encoding to a byte slice. Encodings are total: every representable
// value of an implementing type produces valid JSON, so there is no
// error return.
type Appender interface {
	AppendJSON(dst []byte) []byte
}

var (
	// Buffer pool for Marshal to reduce allocations
	bufferPool = sync.Pool{
		New: func() any {
			return make([]byte, 0, 256)
		},
	}

	// Small integer lookup table for common values
	smallInts = [...]string{
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		"10", "11", "12", "13", "14", "15", "16", "17", "18", "19",
		"20", "21", "22", "23", "24", "25", "26", "27", "28", "29",
		"30", "31", "32", "33", "34", "35", "36", "37", "38", "39",
		"40", "41", "42", "43", "44", "45", "46", "47", "48", "49",
		"50", "51", "52", "53", "54", "55", "56", "57", "58", "59",
		"60", "61", "62", "63", "64", "65", "66", "67", "68", "69",
		"70", "71", "72", "73", "74", "75", "76", "77", "78", "79",
		"80", "81", "82", "83", "84", "85", "86", "87", "88", "89",
		"90", "91", "92", "93", "94", "95", "96", "97", "98", "99",
	}
)

// Marshal renders v to a fresh byte slice.
func Marshal(v Appender) []byte {
	buf := bufferPool.Get().([]byte)
	out := v.AppendJSON(buf[:0])

	result := make([]byte, len(out))
	copy(result, out)

	// Don't pool extremely large buffers
	if cap(out) < 4096 {
		bufferPool.Put(out[:0])
	}
	return result
}

// MarshalAppend appends the JSON encoding of v to dst and returns the
// extended buffer. This is a zero-allocation alternative to Marshal
// when you can reuse buffers.
func MarshalAppend(dst []byte, v Appender) []byte {
	return v.AppendJSON(dst)
}

// Encode writes the JSON encoding of v to w in a single Write call.
// Returns the number of bytes written and any writer error.
func Encode(w io.Writer, v Appender) (int, error) {
	buf := bufferPool.Get().([]byte)
	out := v.AppendJSON(buf[:0])

	n, err := w.Write(out)

	if cap(out) < 4096 {
		bufferPool.Put(out[:0])
	}
	return n, err
}

// Null encodes the JSON null literal.
func Null() Appender {
	return nullValue{}
}

// Bool encodes a JSON boolean.
func Bool(v bool) Appender {
	return boolValue(v)
}

// Int encodes any signed integer as a JSON number.
func Int[T constraints.Signed](v T) Appender {
	return intValue(v)
}

// Uint encodes any unsigned integer as a JSON number.
func Uint[T constraints.Unsigned](v T) Appender {
	return uintValue(v)
}

// Float encodes a floating-point value as a JSON number using the
// shortest decimal representation that round-trips the value.
// NaN and infinities have no JSON representation and encode as null.
func Float[T constraints.Float](v T) Appender {
	return floatValue{f: float64(v), bits: int(unsafe.Sizeof(v)) * 8}
}

// String encodes text as a JSON string. Input may be a native string
// or a raw UTF-8 byte slice; invalid UTF-8 sequences are replaced by
// U+FFFD, never split.
func String[T Text](v T) Appender {
	return stringValue(v)
}

// Optional encodes null when v is nil and the pointed-to value otherwise.
func Optional[V Appender](v *V) Appender {
	return optionalValue[V]{v}
}

// Raw passes pre-encoded JSON through unmodified. The caller is
// responsible for b being a complete, valid JSON term.
func Raw(b []byte) Appender {
	return rawValue(b)
}

type nullValue struct{}

func (nullValue) AppendJSON(dst []byte) []byte {
	return append(dst, "null"...)
}

type boolValue bool

func (v boolValue) AppendJSON(dst []byte) []byte {
	if v {
		return append(dst, "true"...)
	}
	return append(dst, "false"...)
}

type intValue int64

func (v intValue) AppendJSON(dst []byte) []byte {
	return appendInt(dst, int64(v))
}

type uintValue uint64

func (v uintValue) AppendJSON(dst []byte) []byte {
	return appendUint(dst, uint64(v))
}

type floatValue struct {
	f    float64
	bits int
}

func (v floatValue) AppendJSON(dst []byte) []byte {
	if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
		return append(dst, "null"...)
	}
	return strconv.AppendFloat(dst, v.f, 'g', -1, v.bits)
}

type stringValue string

func (v stringValue) AppendJSON(dst []byte) []byte {
	dst = append(dst, '"')
	dst = appendEscape(dst, string(v))
	return append(dst, '"')
}

type optionalValue[V Appender] struct {
	v *V
}

func (o optionalValue[V]) AppendJSON(dst []byte) []byte {
	if o.v == nil {
		return append(dst, "null"...)
	}
	return (*o.v).AppendJSON(dst)
}

type rawValue []byte

func (v rawValue) AppendJSON(dst []byte) []byte {
	return append(dst, v...)
}

// Fast integer conversion using the lookup table for small values
func appendInt(dst []byte, i int64) []byte {
	if i < 0 {
		dst = append(dst, '-')
		return appendUintDigits(dst, uint64(-i))
	}
	return appendUintDigits(dst, uint64(i))
}

func appendUint(dst []byte, u uint64) []byte {
	return appendUintDigits(dst, u)
}

func appendUintDigits(dst []byte, u uint64) []byte {
	if u < uint64(len(smallInts)) {
		return append(dst, smallInts[u]...)
	}
	return strconv.AppendUint(dst, u, 10)
}
