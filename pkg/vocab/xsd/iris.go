// Package xsd provides ready-made IRI terms for the XML Schema
// datatype namespace. All terms are built trusted; iris_test.go
// re-validates every entry once.
package xsd

import "github.com/aleksaelezovic/rdfterm/pkg/term"

// Prefix is the namespace IRI shared by every term in this package.
const Prefix = "http://www.w3.org/2001/XMLSchema#"

var all []term.Term[term.Ref]

func mk(suffix string) term.Term[term.Ref] {
	t := term.TrustedIri2[term.Ref](Prefix, suffix, term.HintAbsolute)
	all = append(all, t)
	return t
}

var (
	AnyType       = mk("anyType")
	AnySimpleType = mk("anySimpleType")

	Duration   = mk("duration")
	DateTime   = mk("dateTime")
	Time       = mk("time")
	Date       = mk("date")
	GYearMonth = mk("gYearMonth")
	GYear      = mk("gYear")
	GMonthDay  = mk("gMonthDay")
	GDay       = mk("gDay")
	GMonth     = mk("gMonth")

	Boolean      = mk("boolean")
	Base64Binary = mk("base64Binary")
	HexBinary    = mk("hexBinary")
	Float        = mk("float")
	Double       = mk("double")
	AnyURI       = mk("anyURI")
	QName        = mk("QName")
	NOTATION     = mk("NOTATION")

	String           = mk("string")
	NormalizedString = mk("normalizedString")
	Token            = mk("token")
	Language         = mk("language")
	Name             = mk("Name")
	NCName           = mk("NCName")
	ID               = mk("ID")
	IDREF            = mk("IDREF")
	IDREFS           = mk("IDREFS")
	ENTITY           = mk("ENTITY")
	ENTITIES         = mk("ENTITIES")
	NMTOKEN          = mk("NMTOKEN")
	NMTOKENS         = mk("NMTOKENS")

	Decimal            = mk("decimal")
	Integer            = mk("integer")
	NonPositiveInteger = mk("nonPositiveInteger")
	NegativeInteger    = mk("negativeInteger")
	Long               = mk("long")
	Int                = mk("int")
	Short              = mk("short")
	Byte               = mk("byte")
	NonNegativeInteger = mk("nonNegativeInteger")
	UnsignedLong       = mk("unsignedLong")
	UnsignedInt        = mk("unsignedInt")
	UnsignedShort      = mk("unsignedShort")
	UnsignedByte       = mk("unsignedByte")
	PositiveInteger    = mk("positiveInteger")
)
