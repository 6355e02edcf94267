// Package xml provides ready-made IRI terms for the xml: namespace.
// All terms are built trusted; iris_test.go re-validates every entry
// once.
package xml

import "github.com/aleksaelezovic/rdfterm/pkg/term"

// Prefix is the namespace IRI shared by every term in this package.
const Prefix = "http://www.w3.org/XML/1998/namespace#"

var all []term.Term[term.Ref]

func mk(suffix string) term.Term[term.Ref] {
	t := term.TrustedIri2[term.Ref](Prefix, suffix, term.HintAbsolute)
	all = append(all, t)
	return t
}

var (
	Lang  = mk("lang")
	Space = mk("space")
	Base  = mk("base")
	ID    = mk("id")

	// Jon Bosak.
	Father = mk("Father")
)
