package json

import (
	"iter"
	"slices"
)

// Pair is one key-value entry for Rows.
type Pair[K Text, V Appender] struct {
	Key   K
	Value V
}

// P builds a Pair.
func P[K Text, V Appender](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Array folds a slice into a partial array, in slice order. The result
// equals the left-to-right Join of Element over every value. An empty
// or nil slice yields the empty partial.
func Array[V Appender](values []V) PartialArray {
	var buf []byte
	for i, v := range values {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = v.AppendJSON(buf)
	}
	return PartialArray{buf: buf, nonEmpty: len(values) > 0}
}

// Seq folds any ordered sequence into a partial array, in yield order.
func Seq[V Appender](values iter.Seq[V]) PartialArray {
	var p PartialArray
	for v := range values {
		if p.nonEmpty {
			p.buf = append(p.buf, ',')
		}
		p.buf = v.AppendJSON(p.buf)
		p.nonEmpty = true
	}
	return p
}

// Rows folds key-value pairs into a partial object, in argument order.
// Duplicate keys are emitted as given; no deduplication happens here.
func Rows[K Text, V Appender](pairs ...Pair[K, V]) PartialObject {
	var buf []byte
	for i, kv := range pairs {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendQuoted(buf, kv.Key)
		buf = append(buf, ':')
		buf = kv.Value.AppendJSON(buf)
	}
	return PartialObject{buf: buf, nonEmpty: len(pairs) > 0}
}

// Map folds a Go map into a partial object. Go maps iterate in
// randomized order, so keys are sorted to keep the encoding
// deterministic. Use Rows to control member order explicitly.
func Map[K ~string, V Appender](m map[K]V) PartialObject {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var buf []byte
	for i, k := range keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendQuoted(buf, string(k))
		buf = append(buf, ':')
		buf = m[k].AppendJSON(buf)
	}
	return PartialObject{buf: buf, nonEmpty: len(m) > 0}
}
