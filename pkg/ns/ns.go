// Package ns provides namespace helpers: a validated IRI prefix from
// which many IRI terms are minted by suffix concatenation. The
// vocabulary packages under pkg/vocab are the ready-made tables built
// on the same idea.
package ns

import (
	"fmt"

	"github.com/aleksaelezovic/rdfterm/pkg/term"
)

// Namespace wraps an IRI prefix validated once at construction, so
// Get only has to validate each concatenation.
type Namespace[T term.StrData] struct {
	prefix T
}

// New validates iri as an IRI reference and wraps it.
func New[T term.StrData, PT term.DataPtr[T]](iri string) (Namespace[T], error) {
	if !term.IsValidIRIRef(iri) {
		return Namespace[T]{}, fmt.Errorf("%w: %q", term.ErrInvalidPrefix, iri)
	}
	return Namespace[T]{prefix: term.Make[T, PT](iri)}, nil
}

// NewUnchecked wraps iri without validation. The caller must guarantee
// it is a valid IRI reference; see the trusted-constructor contract in
// package term.
func NewUnchecked[T term.StrData, PT term.DataPtr[T]](iri string) Namespace[T] {
	return Namespace[T]{prefix: term.Make[T, PT](iri)}
}

// Get appends suffix to the namespace and returns the IRI term in
// split form. Only the concatenation is validated — the stored prefix
// was validated by New. The returned term's namespace part is a view
// (Ref) of this namespace's storage, not a copy; rehome it with
// term.Copy before retaining it past the namespace's lifetime.
func (n Namespace[T]) Get(suffix string) (term.Term[term.Ref], error) {
	return term.NewIri2[term.Ref](n.prefix.Str(), suffix)
}

// String returns the prefix IRI.
func (n Namespace[T]) String() string { return n.prefix.Str() }

// Map rebuilds the namespace under another ownership strategy by
// applying factory to the prefix. No validation is re-run.
func Map[U, T term.StrData](n Namespace[T], factory func(string) U) Namespace[U] {
	return Namespace[U]{prefix: factory(n.prefix.Str())}
}
