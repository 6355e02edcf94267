package term

import "strings"

// CopyWith rebuilds src under ownership strategy T by applying factory
// to every leaf string of its structure: namespace, suffix, label,
// lexical form, language tag, datatype IRI parts, variable name. The
// variant, literal kind, namespace split and absoluteness flag are
// preserved exactly, and no validation is re-run — the source is
// assumed valid, only its representation changes.
//
// This is how a zero-copy term built against a transient parser buffer
// is promoted into a durable, optionally shared, term before the
// buffer is discarded.
func CopyWith[T, U StrData](src Term[U], factory func(string) T) Term[T] {
	out := Term[T]{kind: src.kind}
	switch src.kind {
	case KindIri:
		out.iri = copyIri(src.iri, factory)
	case KindBNode, KindVariable:
		out.text = factory(src.text.Str())
	case KindLiteral:
		out.text = factory(src.text.Str())
		out.lk = copyKind(src.lk, factory)
	}
	return out
}

// Copy rehomes src into strategy T using T's own construction from a
// string slice (the Make factory).
func Copy[T StrData, PT DataPtr[T], U StrData](src Term[U]) Term[T] {
	return CopyWith(src, Make[T, PT])
}

func copyIri[T, U StrData](src Iri[U], factory func(string) T) Iri[T] {
	out := Iri[T]{split: src.split, absolute: src.absolute}
	out.ns = factory(src.ns.Str())
	if src.split {
		out.suffix = factory(src.suffix.Str())
	}
	return out
}

func copyKind[T, U StrData](src *LiteralKind[U], factory func(string) T) *LiteralKind[T] {
	if src == nil {
		return nil
	}
	if src.lang {
		return &LiteralKind[T]{lang: true, tag: factory(src.tag.Str())}
	}
	return &LiteralKind[T]{dt: copyIri(src.dt, factory)}
}

// SharedFactory is a CopyWith factory that reuses one allocation per
// distinct string it has seen, so rehoming a stream of parser-borrowed
// terms shares namespace and datatype strings instead of cloning them
// per term. It caches strings, not terms — term deduplication stays a
// store concern. Not safe for concurrent use.
type SharedFactory struct {
	cache map[string]*string
}

// NewSharedFactory returns an empty factory.
func NewSharedFactory() *SharedFactory {
	return &SharedFactory{cache: make(map[string]*string)}
}

// Make returns a Shared backed by the cached copy of s, cloning it on
// first sight. Pass it to CopyWith:
//
//	durable := term.CopyWith(borrowed, f.Make)
func (f *SharedFactory) Make(s string) Shared {
	if p, ok := f.cache[s]; ok {
		return Shared{p: p}
	}
	c := strings.Clone(s)
	f.cache[c] = &c
	return Shared{p: &c}
}

// Len reports how many distinct strings the factory holds.
func (f *SharedFactory) Len() int { return len(f.cache) }
