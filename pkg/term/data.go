package term

import (
	"strings"
	"unique"
)

// StrData is the capability every term payload must provide: viewing
// itself as a string slice. The concrete type decides how the bytes
// are owned; the term's logical value never depends on that choice.
type StrData interface {
	Str() string
}

// DataPtr constrains a pointer to a built-in ownership strategy so the
// generic constructors can build a payload from a plain string. User
// types can still implement StrData and be produced through CopyWith
// with a custom factory.
type DataPtr[T StrData] interface {
	*T
	init(s string)
}

// Make builds a payload of strategy T from s, applying the strategy's
// own copy discipline (Ref views s, Box clones it, and so on). It is
// also the default factory used by Copy.
func Make[T StrData, PT DataPtr[T]](s string) T {
	var v T
	PT(&v).init(s)
	return v
}

// Ref is a zero-copy view of an external buffer. A Go substring shares
// its parent's backing array, so a Ref built from a parser buffer
// keeps the whole buffer reachable; rehome the term (Copy) before the
// buffer is meant to be released.
type Ref string

// Str returns the viewed string.
func (r Ref) Str() string { return string(r) }

func (r *Ref) init(s string) { *r = Ref(s) }

// Box owns a detached copy of its bytes, independent of whatever
// buffer the source string was sliced from.
type Box string

// Str returns the owned string.
func (b Box) Str() string { return string(b) }

func (b *Box) init(s string) { *b = Box(strings.Clone(s)) }

// Shared holds its bytes behind a pointer, so copying a Shared term
// copies one word per field instead of the payload. The garbage
// collector plays the role of a reference count, and since terms are
// immutable a Shared term can be read from any number of goroutines.
type Shared struct {
	p *string
}

// Str returns the shared string, or "" for the zero value.
func (s Shared) Str() string {
	if s.p == nil {
		return ""
	}
	return *s.p
}

func (s *Shared) init(str string) {
	c := strings.Clone(str)
	s.p = &c
}

// Atom stores its bytes through the runtime's canonicalization map
// (package unique): equal strings collapse to a single allocation
// process-wide. It is the strategy for terms retained for the life of
// the process, such as vocabulary constants held by long-lived stores.
type Atom struct {
	h unique.Handle[string]
}

// Str returns the canonicalized string, or "" for the zero value.
func (a Atom) Str() string {
	if a.h == (unique.Handle[string]{}) {
		return ""
	}
	return a.h.Value()
}

func (a *Atom) init(s string) { a.h = unique.Make(s) }
