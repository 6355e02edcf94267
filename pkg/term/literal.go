package term

import (
	"errors"

	"golang.org/x/text/language"
)

// LiteralKind discriminates a language-tagged literal from a datatyped
// one. A plain literal carries no kind at all: Term stores a nil
// *LiteralKind for it rather than a third arm.
type LiteralKind[T StrData] struct {
	lang bool
	tag  T      // language tag, when lang
	dt   Iri[T] // datatype IRI, when !lang
}

// IsLang reports whether the kind is a language tag.
func (k *LiteralKind[T]) IsLang() bool { return k != nil && k.lang }

// Tag returns the language tag, or "" for a datatyped kind.
func (k *LiteralKind[T]) Tag() string {
	if k == nil || !k.lang {
		return ""
	}
	return k.tag.Str()
}

// Datatype returns the datatype IRI and whether the kind is datatyped.
func (k *LiteralKind[T]) Datatype() (Iri[T], bool) {
	if k == nil || k.lang {
		return Iri[T]{}, false
	}
	return k.dt, true
}

func langKind[T StrData](tag T) *LiteralKind[T] {
	return &LiteralKind[T]{lang: true, tag: tag}
}

func dtKind[T StrData](dt Iri[T]) *LiteralKind[T] {
	return &LiteralKind[T]{dt: dt}
}

func literalKindEq[T, U StrData](a *LiteralKind[T], b *LiteralKind[U]) bool {
	switch {
	case a == nil || b == nil:
		return a == nil && b == nil
	case a.lang != b.lang:
		return false
	case a.lang:
		return a.tag.Str() == b.tag.Str()
	default:
		return iriEq(a.dt, b.dt)
	}
}

// IsValidLangTag reports whether tag is a well-formed BCP 47 language
// tag. Well-formed tags with subtags unknown to the registry are
// accepted: the data model requires well-formedness, not registry
// membership.
func IsValidLangTag(tag string) bool {
	if tag == "" {
		return false
	}
	_, err := language.Parse(tag)
	if err == nil {
		return true
	}
	var verr language.ValueError
	return errors.As(err, &verr)
}
