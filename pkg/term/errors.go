package term

import "errors"

// Validation sentinels returned (wrapped) by the validated
// constructors. The wrapping error always carries the offending
// string, so a parser can turn the failure into a positioned
// diagnostic. Match with errors.Is.
var (
	// ErrInvalidIRI indicates a string that is not a valid IRI reference.
	ErrInvalidIRI = errors.New("term: invalid IRI reference")
	// ErrInvalidDatatype indicates a datatype argument that is not an IRI term.
	ErrInvalidDatatype = errors.New("term: datatype is not an IRI term")
	// ErrInvalidLanguageTag indicates an ill-formed BCP 47 language tag.
	ErrInvalidLanguageTag = errors.New("term: invalid language tag")
	// ErrInvalidVariableName indicates a name outside the variable-name grammar.
	ErrInvalidVariableName = errors.New("term: invalid variable name")
	// ErrInvalidPrefix indicates an invalid namespace prefix. It is
	// surfaced by the ns package, not by the term constructors.
	ErrInvalidPrefix = errors.New("term: invalid namespace prefix")
)
