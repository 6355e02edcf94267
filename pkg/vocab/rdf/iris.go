// Package rdf provides ready-made IRI terms for the standard rdf:
// namespace. All terms are built trusted; iris_test.go re-validates
// every entry once, so nothing is checked at init.
package rdf

import "github.com/aleksaelezovic/rdfterm/pkg/term"

// Prefix is the namespace IRI shared by every term in this package.
const Prefix = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

var all []term.Term[term.Ref]

func mk(suffix string) term.Term[term.Ref] {
	t := term.TrustedIri2[term.Ref](Prefix, suffix, term.HintAbsolute)
	all = append(all, t)
	return t
}

// Classes.
var (
	Alt          = mk("Alt")
	Bag          = mk("Bag")
	List         = mk("List")
	PlainLiteral = mk("PlainLiteral")
	Property     = mk("Property")
	Seq          = mk("Seq")
	Statement    = mk("Statement")
)

// Datatypes.
var (
	HTML       = mk("HTML")
	JSON       = mk("JSON")
	LangString = mk("langString")
	XMLLiteral = mk("XMLLiteral")
)

// Properties.
var (
	Direction = mk("direction")
	First     = mk("first")
	Language  = mk("language")
	Object    = mk("object")
	Predicate = mk("predicate")
	Rest      = mk("rest")
	Subject   = mk("subject")
	Type      = mk("type")
	Value     = mk("value")
)

// Individuals.
var Nil = mk("nil")

// Core syntax terms.
var (
	RDF             = mk("RDF")
	ID              = mk("ID")
	Description     = mk("Description")
	About           = mk("about")
	ParseType       = mk("parseType")
	Resource        = mk("resource")
	Li              = mk("li")
	NodeID          = mk("nodeID")
	Datatype        = mk("datatype")
	BagID           = mk("bagID")
	AboutEach       = mk("aboutEach")
	AboutEachPrefix = mk("aboutEachPrefix")
)
