package term

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Term.
type Kind uint8

const (
	// KindIri is an IRI node.
	KindIri Kind = iota + 1
	// KindBNode is a blank node.
	KindBNode
	// KindLiteral is a literal.
	KindLiteral
	// KindVariable is a query variable.
	KindVariable
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindIri:
		return "IRI"
	case KindBNode:
		return "BNode"
	case KindLiteral:
		return "Literal"
	case KindVariable:
		return "Variable"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Term is the atomic value of the graph data model: an IRI, a blank
// node, a literal, or a query variable. The type parameter selects the
// ownership strategy of the internal strings (see package doc); the
// logical value, equality and hash never depend on it. The zero Term
// is invalid and only appears alongside a non-nil error.
type Term[T StrData] struct {
	kind Kind
	iri  Iri[T]          // kind == KindIri
	text T               // bnode label, literal lexical form, variable name
	lk   *LiteralKind[T] // literal kind; nil for a plain literal
}

// variableNameRegexp is the N3/SPARQL variable-name grammar. Leading
// digits are allowed.
var variableNameRegexp = regexp.MustCompile(
	`^[A-Za-z0-9_\x{C0}-\x{D6}\x{D8}-\x{F6}\x{F8}-\x{2FF}\x{370}-\x{37D}` +
		`\x{37F}-\x{1FFF}\x{200C}-\x{200D}\x{2070}-\x{218F}\x{2C00}-\x{2FEF}` +
		`\x{3001}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFFD}\x{10000}-\x{EFFFF}]` +
		`[A-Za-z0-9_\x{C0}-\x{D6}\x{D8}-\x{F6}\x{F8}-\x{2FF}\x{370}-\x{37D}` +
		`\x{37F}-\x{1FFF}\x{200C}-\x{200D}\x{2070}-\x{218F}\x{2C00}-\x{2FEF}` +
		`\x{3001}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFFD}\x{10000}-\x{EFFFF}` +
		`\x{B7}\x{300}-\x{36F}\x{203F}-\x{2040}]*$`)

// NewIri builds an IRI term, validating iri as an IRI reference.
func NewIri[T StrData, PT DataPtr[T]](iri string) (Term[T], error) {
	i, err := makeIri[T, PT](iri)
	if err != nil {
		return Term[T]{}, err
	}
	return Term[T]{kind: KindIri, iri: i}, nil
}

// NewIri2 builds an IRI term from a namespace and a suffix, validating
// their concatenation. The term keeps the split representation, so no
// concatenated copy is retained.
func NewIri2[T StrData, PT DataPtr[T]](ns, suffix string) (Term[T], error) {
	i, err := makeIri2[T, PT](ns, suffix)
	if err != nil {
		return Term[T]{}, err
	}
	return Term[T]{kind: KindIri, iri: i}, nil
}

// NewBNode builds a blank node term. The label is opaque: it only has
// to be unique within its parsing or graph scope, so no grammar is
// enforced and the returned error is reserved for future constraints.
func NewBNode[T StrData, PT DataPtr[T]](id string) (Term[T], error) {
	return Term[T]{kind: KindBNode, text: Make[T, PT](id)}, nil
}

// NewLiteral builds a plain literal. There is nothing to validate.
func NewLiteral[T StrData, PT DataPtr[T]](txt string) Term[T] {
	return Term[T]{kind: KindLiteral, text: Make[T, PT](txt)}
}

// NewLiteralLang builds a language-tagged literal, validating lang as
// a well-formed BCP 47 tag.
func NewLiteralLang[T StrData, PT DataPtr[T]](txt, lang string) (Term[T], error) {
	if !IsValidLangTag(lang) {
		return Term[T]{}, fmt.Errorf("%w: %q", ErrInvalidLanguageTag, lang)
	}
	return Term[T]{kind: KindLiteral, text: Make[T, PT](txt), lk: langKind(Make[T, PT](lang))}, nil
}

// NewLiteralDT builds a datatyped literal. dt must be an IRI term;
// any other variant is rejected with ErrInvalidDatatype.
func NewLiteralDT[T StrData, PT DataPtr[T]](txt string, dt Term[T]) (Term[T], error) {
	if dt.kind != KindIri {
		return Term[T]{}, fmt.Errorf("%w: %s", ErrInvalidDatatype, dt)
	}
	return Term[T]{kind: KindLiteral, text: Make[T, PT](txt), lk: dtKind(dt.iri)}, nil
}

// NewVariable builds a variable term, validating name against the
// variable-name grammar.
func NewVariable[T StrData, PT DataPtr[T]](name string) (Term[T], error) {
	if !variableNameRegexp.MatchString(name) {
		return Term[T]{}, fmt.Errorf("%w: %q", ErrInvalidVariableName, name)
	}
	return Term[T]{kind: KindVariable, text: Make[T, PT](name)}, nil
}

// TrustedIri builds an IRI term without validation. The caller must
// guarantee iri is a valid IRI reference; see the package doc for the
// trusted-constructor contract.
func TrustedIri[T StrData, PT DataPtr[T]](iri string, abs Hint) Term[T] {
	return Term[T]{kind: KindIri, iri: makeTrustedIri[T, PT](iri, abs)}
}

// TrustedIri2 builds a split IRI term without validation. The caller
// must guarantee ns+suffix is a valid IRI reference.
func TrustedIri2[T StrData, PT DataPtr[T]](ns, suffix string, abs Hint) Term[T] {
	return Term[T]{kind: KindIri, iri: makeTrustedIri2[T, PT](ns, suffix, abs)}
}

// TrustedBNode builds a blank node term without the error return of
// NewBNode.
func TrustedBNode[T StrData, PT DataPtr[T]](id string) Term[T] {
	return Term[T]{kind: KindBNode, text: Make[T, PT](id)}
}

// TrustedLiteralLang builds a language-tagged literal without checking
// the tag. The caller must guarantee lang is a well-formed BCP 47 tag.
func TrustedLiteralLang[T StrData, PT DataPtr[T]](txt, lang string) Term[T] {
	return Term[T]{kind: KindLiteral, text: Make[T, PT](txt), lk: langKind(Make[T, PT](lang))}
}

// TrustedLiteralDT builds a datatyped literal. It panics if dt is not
// an IRI term: that is a contract violation by the caller, not an
// input error, so it stays fatal.
func TrustedLiteralDT[T StrData, PT DataPtr[T]](txt string, dt Term[T]) Term[T] {
	if dt.kind != KindIri {
		panic(fmt.Sprintf("term: TrustedLiteralDT expects an IRI datatype, got %s", dt.kind))
	}
	return Term[T]{kind: KindLiteral, text: Make[T, PT](txt), lk: dtKind(dt.iri)}
}

// Kind returns the variant of the term.
func (t Term[T]) Kind() Kind { return t.kind }

// Value reconstructs the full lexical content of the term: the IRI
// (concatenating a split), the blank node label, the literal's lexical
// form, or the variable name.
func (t Term[T]) Value() string {
	if t.kind == KindIri {
		return t.iri.Value()
	}
	return t.text.Str()
}

// Iri returns the IRI payload of an IRI term.
func (t Term[T]) Iri() (Iri[T], bool) {
	if t.kind != KindIri {
		return Iri[T]{}, false
	}
	return t.iri, true
}

// BNodeID returns the label of a blank node term.
func (t Term[T]) BNodeID() (string, bool) {
	if t.kind != KindBNode {
		return "", false
	}
	return t.text.Str(), true
}

// Lexical returns the lexical form of a literal term.
func (t Term[T]) Lexical() (string, bool) {
	if t.kind != KindLiteral {
		return "", false
	}
	return t.text.Str(), true
}

// LanguageTag returns the language tag of a language-tagged literal.
func (t Term[T]) LanguageTag() (string, bool) {
	if t.kind != KindLiteral || !t.lk.IsLang() {
		return "", false
	}
	return t.lk.Tag(), true
}

// Datatype returns the datatype IRI of a datatyped literal. Plain and
// language-tagged literals report false.
func (t Term[T]) Datatype() (Iri[T], bool) {
	if t.kind != KindLiteral {
		return Iri[T]{}, false
	}
	return t.lk.Datatype()
}

// VarName returns the name of a variable term.
func (t Term[T]) VarName() (string, bool) {
	if t.kind != KindVariable {
		return "", false
	}
	return t.text.Str(), true
}

// String renders the term in an N-Triples-like form, for display and
// diagnostics.
func (t Term[T]) String() string {
	switch t.kind {
	case KindIri:
		return "<" + t.iri.Value() + ">"
	case KindBNode:
		return "_:" + t.text.Str()
	case KindLiteral:
		var b strings.Builder
		b.WriteString(strconv.Quote(t.text.Str()))
		switch {
		case t.lk.IsLang():
			b.WriteByte('@')
			b.WriteString(t.lk.Tag())
		case t.lk != nil:
			dt, _ := t.lk.Datatype()
			b.WriteString("^^<")
			b.WriteString(dt.Value())
			b.WriteByte('>')
		}
		return b.String()
	case KindVariable:
		return "?" + t.text.Str()
	default:
		return ""
	}
}

// Equal reports whether two terms, possibly under different ownership
// strategies, are the same variant with the same reconstructed
// content. A split IRI equals its unsplit spelling; the backing
// strategy is never part of identity.
func Equal[T, U StrData](a Term[T], b Term[U]) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindIri:
		return iriEq(a.iri, b.iri)
	case KindBNode, KindVariable:
		return a.text.Str() == b.text.Str()
	case KindLiteral:
		return a.text.Str() == b.text.Str() && literalKindEq(a.lk, b.lk)
	default:
		return false
	}
}

// Equal is the same-strategy convenience form of the package-level
// Equal.
func (t Term[T]) Equal(o Term[T]) bool { return Equal(t, o) }
