package json

// PartialObject holds zero or more already-joined object members, not
// yet wrapped in braces. The zero value is the empty partial and the
// identity for Join. Partials are immutable values: Join and the
// constructors always build fresh buffers, so a partial may be shared
// and combined into several larger structures concurrently.
type PartialObject struct {
	buf      []byte
	nonEmpty bool
}

// PartialArray holds zero or more already-joined array elements, not
// yet wrapped in brackets. Same value semantics as PartialObject.
type PartialArray struct {
	buf      []byte
	nonEmpty bool
}

// Row builds a one-member partial object: "key":value.
func Row[K Text, V Appender](key K, value V) PartialObject {
	buf := make([]byte, 0, len(key)+16)
	buf = appendQuoted(buf, key)
	buf = append(buf, ':')
	buf = value.AppendJSON(buf)
	return PartialObject{buf: buf, nonEmpty: true}
}

// Element builds a one-element partial array.
func Element[V Appender](value V) PartialArray {
	return PartialArray{buf: value.AppendJSON(nil), nonEmpty: true}
}

// Join combines two partial objects. Exactly one comma separates the
// two sides when both are non-empty; an empty side leaves the other
// unchanged. Join is associative: any grouping of the same operand
// sequence produces byte-identical output.
func (p PartialObject) Join(q PartialObject) PartialObject {
	return PartialObject(joinPartial(partial(p), partial(q)))
}

// Join combines two partial arrays; see PartialObject.Join.
func (p PartialArray) Join(q PartialArray) PartialArray {
	return PartialArray(joinPartial(partial(p), partial(q)))
}

// Empty reports whether no member has been joined yet.
func (p PartialObject) Empty() bool {
	return !p.nonEmpty
}

// Empty reports whether no element has been joined yet.
func (p PartialArray) Empty() bool {
	return !p.nonEmpty
}

// AppendJSON renders the completed object by wrapping the joined
// members in braces. The empty partial renders as {}.
func (p PartialObject) AppendJSON(dst []byte) []byte {
	dst = append(dst, '{')
	dst = append(dst, p.buf...)
	return append(dst, '}')
}

// AppendJSON renders the completed array by wrapping the joined
// elements in brackets. The empty partial renders as [].
func (p PartialArray) AppendJSON(dst []byte) []byte {
	dst = append(dst, '[')
	dst = append(dst, p.buf...)
	return append(dst, ']')
}

type partial struct {
	buf      []byte
	nonEmpty bool
}

func joinPartial(p, q partial) partial {
	if !p.nonEmpty {
		return q
	}
	if !q.nonEmpty {
		return p
	}
	buf := make([]byte, 0, len(p.buf)+len(q.buf)+1)
	buf = append(buf, p.buf...)
	buf = append(buf, ',')
	buf = append(buf, q.buf...)
	return partial{buf: buf, nonEmpty: true}
}
