package term

import (
	"errors"
	"strings"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindIri, "IRI"},
		{KindBNode, "BNode"},
		{KindLiteral, "Literal"},
		{KindVariable, "Variable"},
		{Kind(42), "Kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestNewBNode(t *testing.T) {
	tm, err := NewBNode[Ref]("b1")
	if err != nil {
		t.Fatal(err)
	}
	if tm.Kind() != KindBNode {
		t.Errorf("Kind() = %v, want KindBNode", tm.Kind())
	}
	if id, ok := tm.BNodeID(); !ok || id != "b1" {
		t.Errorf("BNodeID() = %q, %v", id, ok)
	}
	if tm.String() != "_:b1" {
		t.Errorf("String() = %q, want _:b1", tm.String())
	}
}

func TestNewLiteral_Plain(t *testing.T) {
	tm := NewLiteral[Box]("hello")
	if lex, ok := tm.Lexical(); !ok || lex != "hello" {
		t.Errorf("Lexical() = %q, %v", lex, ok)
	}
	if _, ok := tm.LanguageTag(); ok {
		t.Error("plain literal should have no language tag")
	}
	if _, ok := tm.Datatype(); ok {
		t.Error("plain literal should have no datatype")
	}
	if tm.String() != `"hello"` {
		t.Errorf("String() = %q", tm.String())
	}
}

func TestNewLiteralLang(t *testing.T) {
	tm, err := NewLiteralLang[Box]("hello", "en-US")
	if err != nil {
		t.Fatal(err)
	}
	if tag, ok := tm.LanguageTag(); !ok || tag != "en-US" {
		t.Errorf("LanguageTag() = %q, %v", tag, ok)
	}
	if tm.String() != `"hello"@en-US` {
		t.Errorf("String() = %q", tm.String())
	}
}

func TestNewLiteralLang_Invalid(t *testing.T) {
	for _, tag := range []string{"not a tag!!", "", "-en", "en-"} {
		_, err := NewLiteralLang[Ref]("x", tag)
		if !errors.Is(err, ErrInvalidLanguageTag) {
			t.Errorf("tag %q: expected ErrInvalidLanguageTag, got %v", tag, err)
		}
	}
}

func TestNewLiteralDT(t *testing.T) {
	dt, err := NewIri[Box]("http://www.w3.org/2001/XMLSchema#integer")
	if err != nil {
		t.Fatal(err)
	}
	tm, err := NewLiteralDT[Box]("42", dt)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := tm.Datatype()
	if !ok || got.Value() != "http://www.w3.org/2001/XMLSchema#integer" {
		t.Errorf("Datatype() = %q, %v", got.Value(), ok)
	}
	want := `"42"^^<http://www.w3.org/2001/XMLSchema#integer>`
	if tm.String() != want {
		t.Errorf("String() = %q, want %q", tm.String(), want)
	}
}

func TestNewLiteralDT_NonIri(t *testing.T) {
	bnode, err := NewBNode[Ref]("b1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewLiteralDT[Ref]("x", bnode); !errors.Is(err, ErrInvalidDatatype) {
		t.Errorf("expected ErrInvalidDatatype, got %v", err)
	}

	lit := NewLiteral[Ref]("y")
	if _, err := NewLiteralDT[Ref]("x", lit); !errors.Is(err, ErrInvalidDatatype) {
		t.Errorf("expected ErrInvalidDatatype, got %v", err)
	}
}

func TestNewVariable(t *testing.T) {
	valid := []string{"x", "abc", "1abc", "_x", "variable", "café"}
	for _, name := range valid {
		tm, err := NewVariable[Ref](name)
		if err != nil {
			t.Errorf("NewVariable(%q): %v", name, err)
			continue
		}
		if got, ok := tm.VarName(); !ok || got != name {
			t.Errorf("VarName() = %q, %v", got, ok)
		}
		if tm.String() != "?"+name {
			t.Errorf("String() = %q", tm.String())
		}
	}

	invalid := []string{"", "a b", "x!", "-x", "a.b"}
	for _, name := range invalid {
		if _, err := NewVariable[Ref](name); !errors.Is(err, ErrInvalidVariableName) {
			t.Errorf("name %q: expected ErrInvalidVariableName, got %v", name, err)
		}
	}
}

func TestTrustedConstructors_MatchValidated(t *testing.T) {
	const iri = "http://example.org/x"
	checked, err := NewIri[Ref](iri)
	if err != nil {
		t.Fatal(err)
	}
	trusted := TrustedIri[Ref](iri, HintAbsolute)
	if !checked.Equal(trusted) || Hash(checked) != Hash(trusted) {
		t.Error("trusted and validated IRI terms should be indistinguishable")
	}

	lang, err := NewLiteralLang[Ref]("hi", "en")
	if err != nil {
		t.Fatal(err)
	}
	if !lang.Equal(TrustedLiteralLang[Ref]("hi", "en")) {
		t.Error("trusted and validated lang literals should be indistinguishable")
	}
}

func TestTrustedLiteralDT_PanicsOnNonIri(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-IRI datatype")
		}
	}()
	bnode := TrustedBNode[Ref]("b1")
	TrustedLiteralDT[Ref]("x", bnode)
}

func TestEqual_VariantDiscrimination(t *testing.T) {
	// Same underlying string content, different variants.
	const s = "http://example.org/x"
	iri, err := NewIri[Ref](s)
	if err != nil {
		t.Fatal(err)
	}
	lit := NewLiteral[Ref](s)
	bnode, _ := NewBNode[Ref](s)
	vr, err := NewVariable[Ref]("x")
	if err != nil {
		t.Fatal(err)
	}
	lit2 := NewLiteral[Ref]("x")

	if Equal(iri, lit) {
		t.Error("IRI should not equal literal with same content")
	}
	if Equal(iri, bnode) {
		t.Error("IRI should not equal bnode with same content")
	}
	if Equal(vr, lit2) {
		t.Error("variable should not equal literal with same content")
	}
}

func TestEqual_Literals(t *testing.T) {
	en1, _ := NewLiteralLang[Box]("hello", "en")
	en2, _ := NewLiteralLang[Box]("hello", "en")
	fr, _ := NewLiteralLang[Box]("hello", "fr")
	plain := NewLiteral[Box]("hello")

	if !en1.Equal(en2) {
		t.Error("identical language-tagged literals should be equal")
	}
	if en1.Equal(fr) {
		t.Error("literals with different tags should not be equal")
	}
	if en1.Equal(plain) {
		t.Error("language-tagged literal should not equal plain literal")
	}

	xsdInt, _ := NewIri[Box]("http://www.w3.org/2001/XMLSchema#integer")
	xsdStr, _ := NewIri[Box]("http://www.w3.org/2001/XMLSchema#string")
	a, _ := NewLiteralDT[Box]("42", xsdInt)
	b, _ := NewLiteralDT[Box]("42", xsdInt)
	c, _ := NewLiteralDT[Box]("42", xsdStr)

	if !a.Equal(b) {
		t.Error("identical datatyped literals should be equal")
	}
	if a.Equal(c) {
		t.Error("literals with different datatypes should not be equal")
	}
	if a.Equal(plain) {
		t.Error("datatyped literal should not equal plain literal")
	}
}

func TestEqual_CrossStrategy(t *testing.T) {
	const iri = "http://example.org/resource"
	ref, err := NewIri[Ref](iri)
	if err != nil {
		t.Fatal(err)
	}
	box, err := NewIri[Box](iri)
	if err != nil {
		t.Fatal(err)
	}
	shared, err := NewIri[Shared](iri)
	if err != nil {
		t.Fatal(err)
	}
	atom, err := NewIri[Atom](iri)
	if err != nil {
		t.Fatal(err)
	}

	if !Equal(ref, box) || !Equal(box, shared) || !Equal(shared, atom) || !Equal(atom, ref) {
		t.Error("equality must not depend on the ownership strategy")
	}

	// Split on one side, unsplit on the other, different strategies.
	split, err := NewIri2[Shared]("http://example.org/", "resource")
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(split, ref) {
		t.Error("split Shared IRI should equal unsplit Ref IRI")
	}
}

func TestEqual_CrossStrategyLiterals(t *testing.T) {
	dtRef, _ := NewIri[Ref]("http://www.w3.org/2001/XMLSchema#integer")
	dtAtom, _ := NewIri2[Atom]("http://www.w3.org/2001/XMLSchema#", "integer")
	a, _ := NewLiteralDT[Ref]("42", dtRef)
	b, _ := NewLiteralDT[Atom]("42", dtAtom)
	if !Equal(a, b) {
		t.Error("datatyped literals should be equal across strategies and splits")
	}
}

func TestTerm_Value(t *testing.T) {
	xsdInt, _ := NewIri[Ref]("http://www.w3.org/2001/XMLSchema#integer")
	lit, _ := NewLiteralDT[Ref]("42", xsdInt)
	vr, _ := NewVariable[Ref]("v")
	bn, _ := NewBNode[Ref]("b0")
	split, _ := NewIri2[Ref]("http://example.org/", "x")

	tests := []struct {
		tm   Term[Ref]
		want string
	}{
		{xsdInt, "http://www.w3.org/2001/XMLSchema#integer"},
		{split, "http://example.org/x"},
		{lit, "42"},
		{vr, "v"},
		{bn, "b0"},
	}
	for _, tt := range tests {
		if got := tt.tm.Value(); got != tt.want {
			t.Errorf("Value() = %q, want %q", got, tt.want)
		}
	}
}

func TestTerm_StringEscapesLiteral(t *testing.T) {
	lit := NewLiteral[Ref]("line1\n\"quoted\"")
	if !strings.Contains(lit.String(), `\n`) {
		t.Errorf("String() should escape control characters, got %s", lit.String())
	}
}
