// Package owl provides ready-made IRI terms for the owl: namespace.
// All terms are built trusted; iris_test.go re-validates every entry
// once.
package owl

import "github.com/aleksaelezovic/rdfterm/pkg/term"

// Prefix is the namespace IRI shared by every term in this package.
const Prefix = "http://www.w3.org/2002/07/owl#"

var all []term.Term[term.Ref]

func mk(suffix string) term.Term[term.Ref] {
	t := term.TrustedIri2[term.Ref](Prefix, suffix, term.HintAbsolute)
	all = append(all, t)
	return t
}

var (
	Nothing = mk("Nothing")
	Thing   = mk("Thing")
)

// Classes.
var (
	AllDifferent              = mk("AllDifferent")
	AllDisjointClasses        = mk("AllDisjointClasses")
	AnnotationProperty        = mk("AnnotationProperty")
	Class                     = mk("Class")
	DatatypeProperty          = mk("DatatypeProperty")
	FunctionalProperty        = mk("FunctionalProperty")
	InverseFunctionalProperty = mk("InverseFunctionalProperty")
	IrreflexiveProperty       = mk("IrreflexiveProperty")
	ObjectProperty            = mk("ObjectProperty")
	SymmetricProperty         = mk("SymmetricProperty")
	TransitiveProperty        = mk("TransitiveProperty")
)

// Properties.
var (
	AllValuesFrom           = mk("allValuesFrom")
	AssertionProperty       = mk("assertionProperty")
	ComplementOf            = mk("complementOf")
	DifferentFrom           = mk("differentFrom")
	DisjointWith            = mk("disjointWith")
	DistinctMembers         = mk("distinctMembers")
	EquivalentClass         = mk("equivalentClass")
	EquivalentProperty      = mk("equivalentProperty")
	IntersectionOf          = mk("intersectionOf")
	InverseOf               = mk("inverseOf")
	MaxCardinality          = mk("maxCardinality")
	MaxQualifiedCardinality = mk("maxQualifiedCardinality")
	Members                 = mk("members")
	OnClass                 = mk("onClass")
	OneOf                   = mk("oneOf")
	OnProperty              = mk("onProperty")
	PropertyChainAxiom      = mk("propertyChainAxiom")
	PropertyDisjointWith    = mk("propertyDisjointWith")
	SameAs                  = mk("sameAs")
	SomeValuesFrom          = mk("someValuesFrom")
	SourceIndividual        = mk("sourceIndividual")
	TargetIndividual        = mk("targetIndividual")
	TargetValue             = mk("targetValue")
	UnionOf                 = mk("unionOf")
)
