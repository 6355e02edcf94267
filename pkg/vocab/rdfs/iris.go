// Package rdfs provides ready-made IRI terms for the standard rdfs:
// namespace. All terms are built trusted; iris_test.go re-validates
// every entry once.
package rdfs

import "github.com/aleksaelezovic/rdfterm/pkg/term"

// Prefix is the namespace IRI shared by every term in this package.
const Prefix = "http://www.w3.org/2000/01/rdf-schema#"

var all []term.Term[term.Ref]

func mk(suffix string) term.Term[term.Ref] {
	t := term.TrustedIri2[term.Ref](Prefix, suffix, term.HintAbsolute)
	all = append(all, t)
	return t
}

// Types.
var (
	Class                       = mk("Class")
	Container                   = mk("Container")
	ContainerMembershipProperty = mk("ContainerMembershipProperty")
	Datatype                    = mk("Datatype")
	Literal                     = mk("Literal")
	Resource                    = mk("Resource")
)

// Semantic properties.
var (
	Domain        = mk("domain")
	Range         = mk("range")
	SubClassOf    = mk("subClassOf")
	SubPropertyOf = mk("subPropertyOf")
)

// Documentation properties.
var (
	Comment     = mk("comment")
	IsDefinedBy = mk("isDefinedBy")
	Label       = mk("label")
	Member      = mk("member")
	SeeAlso     = mk("seeAlso")
)
