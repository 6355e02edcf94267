package term

import "github.com/zeebo/xxh3"

// Hash returns a 64-bit content hash consistent with Equal: equal
// terms hash identically whatever their ownership strategy, and a
// split IRI hashes like its unsplit spelling. The hash is fed the
// variant tag, every leaf string, and a kind byte between literal
// fields.
func Hash[T StrData](t Term[T]) uint64 {
	h := xxh3.New()
	hashTerm(h, t)
	return h.Sum64()
}

func hashTerm[T StrData](h *xxh3.Hasher, t Term[T]) {
	writeByte(h, byte(t.kind))
	switch t.kind {
	case KindIri:
		hashIri(h, t.iri)
	case KindBNode, KindVariable:
		h.WriteString(t.text.Str())
	case KindLiteral:
		h.WriteString(t.text.Str())
		switch {
		case t.lk == nil:
			writeByte(h, 0)
		case t.lk.lang:
			writeByte(h, 1)
			h.WriteString(t.lk.tag.Str())
		default:
			writeByte(h, 2)
			hashIri(h, t.lk.dt)
		}
	}
}

// hashIri streams both halves of a split IRI; xxh3's streaming state
// makes the result identical to hashing the concatenation.
func hashIri[T StrData](h *xxh3.Hasher, i Iri[T]) {
	h.WriteString(i.ns.Str())
	h.WriteString(i.suffix.Str())
}

func writeByte(h *xxh3.Hasher, b byte) {
	var buf [1]byte
	buf[0] = b
	h.Write(buf[:])
}
