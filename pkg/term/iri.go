package term

import (
	"fmt"
	"net/url"
	"regexp"
)

// RFC 3987 grammar, assembled from named ABNF fragments (sections 2.2
// of RFC 3987 and appendix A of RFC 3986). Validation is a whole-string
// match against one of the two anchored expressions below.
const (
	ucschar = `\x{A0}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFEF}` +
		`\x{10000}-\x{1FFFD}\x{20000}-\x{2FFFD}\x{30000}-\x{3FFFD}` +
		`\x{40000}-\x{4FFFD}\x{50000}-\x{5FFFD}\x{60000}-\x{6FFFD}` +
		`\x{70000}-\x{7FFFD}\x{80000}-\x{8FFFD}\x{90000}-\x{9FFFD}` +
		`\x{A0000}-\x{AFFFD}\x{B0000}-\x{BFFFD}\x{C0000}-\x{CFFFD}` +
		`\x{D0000}-\x{DFFFD}\x{E1000}-\x{EFFFD}`

	iprivate = `\x{E000}-\x{F8FF}\x{F0000}-\x{FFFFD}\x{100000}-\x{10FFFD}`

	iunreserved = `A-Za-z0-9\-._~` + ucschar
	subDelims   = `!$&'()*+,;=`
	pctEncoded  = `%[0-9A-Fa-f]{2}`

	ipchar = `(?:[` + iunreserved + subDelims + `:@]|` + pctEncoded + `)`

	schemePat = `[A-Za-z][A-Za-z0-9+.\-]*`

	iuserinfo = `(?:[` + iunreserved + subDelims + `:]|` + pctEncoded + `)*`
	iregName  = `(?:[` + iunreserved + subDelims + `]|` + pctEncoded + `)*`

	decOctet    = `(?:25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])`
	ipv4address = decOctet + `(?:\.` + decOctet + `){3}`
	h16         = `[0-9A-Fa-f]{1,4}`
	ls32        = `(?:` + h16 + `:` + h16 + `|` + ipv4address + `)`
	ipv6address = `(?:` +
		`(?:` + h16 + `:){6}` + ls32 +
		`|::(?:` + h16 + `:){5}` + ls32 +
		`|(?:` + h16 + `)?::(?:` + h16 + `:){4}` + ls32 +
		`|(?:(?:` + h16 + `:)?` + h16 + `)?::(?:` + h16 + `:){3}` + ls32 +
		`|(?:(?:` + h16 + `:){0,2}` + h16 + `)?::(?:` + h16 + `:){2}` + ls32 +
		`|(?:(?:` + h16 + `:){0,3}` + h16 + `)?::` + h16 + `:` + ls32 +
		`|(?:(?:` + h16 + `:){0,4}` + h16 + `)?::` + ls32 +
		`|(?:(?:` + h16 + `:){0,5}` + h16 + `)?::` + h16 +
		`|(?:(?:` + h16 + `:){0,6}` + h16 + `)?::` +
		`)`
	ipvfuture = `v[0-9A-Fa-f]+\.[A-Za-z0-9\-._~` + subDelims + `:]+`
	ipLiteral = `\[(?:` + ipv6address + `|` + ipvfuture + `)\]`

	ihost      = `(?:` + ipLiteral + `|` + ipv4address + `|` + iregName + `)`
	iauthority = `(?:` + iuserinfo + `@)?` + ihost + `(?::[0-9]*)?`

	isegment     = ipchar + `*`
	isegmentNz   = ipchar + `+`
	isegmentNzNc = `(?:[` + iunreserved + subDelims + `@]|` + pctEncoded + `)+`

	ipathAbempty  = `(?:/` + isegment + `)*`
	ipathAbsolute = `/(?:` + isegmentNz + ipathAbempty + `)?`
	ipathRootless = isegmentNz + ipathAbempty
	ipathNoscheme = isegmentNzNc + ipathAbempty

	iquery    = `(?:[` + iunreserved + subDelims + `:@/?` + iprivate + `]|` + pctEncoded + `)*`
	ifragment = `(?:[` + iunreserved + subDelims + `:@/?]|` + pctEncoded + `)*`

	iriTail = `(?:\?` + iquery + `)?(?:#` + ifragment + `)?$`
)

var (
	absoluteIRIRegexp = regexp.MustCompile(`^` + schemePat + `:` +
		`(?://` + iauthority + ipathAbempty +
		`|` + ipathAbsolute +
		`|` + ipathRootless +
		`|)` + iriTail)

	relativeRefRegexp = regexp.MustCompile(`^` +
		`(?://` + iauthority + ipathAbempty +
		`|` + ipathAbsolute +
		`|` + ipathNoscheme +
		`|)` + iriTail)
)

// IsValidIRIRef reports whether s is a syntactically valid IRI
// reference (absolute or relative).
func IsValidIRIRef(s string) bool {
	return absoluteIRIRegexp.MatchString(s) || relativeRefRegexp.MatchString(s)
}

// IsAbsoluteIRI reports whether s is a syntactically valid absolute IRI.
func IsAbsoluteIRI(s string) bool {
	return absoluteIRIRegexp.MatchString(s)
}

// ResolveIRIRef resolves a (possibly relative) IRI reference against an
// absolute base, per RFC 3986 section 5.
func ResolveIRIRef(base, ref string) (string, error) {
	if !IsAbsoluteIRI(base) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIRI, base)
	}
	if !IsValidIRIRef(ref) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIRI, ref)
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidIRI, base)
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidIRI, ref)
	}
	return b.ResolveReference(r).String(), nil
}

// Hint tells a trusted IRI constructor whether the IRI is known to be
// absolute, sparing even the scheme scan.
type Hint int8

const (
	// HintUnknown makes the constructor run a scheme scan.
	HintUnknown Hint = iota
	// HintAbsolute asserts the IRI has a scheme.
	HintAbsolute
	// HintRelative asserts the IRI has no scheme.
	HintRelative
)

// Iri is the payload of an IRI term. It stores either a whole IRI or a
// namespace+suffix split whose concatenation is the IRI. The split is
// a construction-time memory optimization — many IRIs in a graph share
// a namespace — and is never observable through Value, equality or
// hashing. Absoluteness is computed once at construction.
type Iri[T StrData] struct {
	ns       T
	suffix   T
	split    bool
	absolute bool
}

func makeIri[T StrData, PT DataPtr[T]](iri string) (Iri[T], error) {
	abs := absoluteIRIRegexp.MatchString(iri)
	if !abs && !relativeRefRegexp.MatchString(iri) {
		return Iri[T]{}, fmt.Errorf("%w: %q", ErrInvalidIRI, iri)
	}
	return Iri[T]{ns: Make[T, PT](iri), absolute: abs}, nil
}

func makeIri2[T StrData, PT DataPtr[T]](ns, suffix string) (Iri[T], error) {
	// The invariant is on the concatenation, so that is what gets
	// validated; the term still stores the two parts separately.
	full := ns + suffix
	abs := absoluteIRIRegexp.MatchString(full)
	if !abs && !relativeRefRegexp.MatchString(full) {
		return Iri[T]{}, fmt.Errorf("%w: %q", ErrInvalidIRI, full)
	}
	return Iri[T]{ns: Make[T, PT](ns), suffix: Make[T, PT](suffix), split: true, absolute: abs}, nil
}

func makeTrustedIri[T StrData, PT DataPtr[T]](iri string, abs Hint) Iri[T] {
	return Iri[T]{ns: Make[T, PT](iri), absolute: resolveHint(abs, iri, "")}
}

func makeTrustedIri2[T StrData, PT DataPtr[T]](ns, suffix string, abs Hint) Iri[T] {
	return Iri[T]{
		ns:       Make[T, PT](ns),
		suffix:   Make[T, PT](suffix),
		split:    true,
		absolute: resolveHint(abs, ns, suffix),
	}
}

func resolveHint(abs Hint, ns, suffix string) bool {
	switch abs {
	case HintAbsolute:
		return true
	case HintRelative:
		return false
	default:
		return pairAbsolute(ns, suffix)
	}
}

// Value returns the full IRI, concatenating the split parts if needed.
func (i Iri[T]) Value() string {
	if i.split {
		return i.ns.Str() + i.suffix.Str()
	}
	return i.ns.Str()
}

// Absolute reports whether the IRI is absolute.
func (i Iri[T]) Absolute() bool { return i.absolute }

// Split returns the namespace and suffix parts. For an unsplit IRI the
// namespace is the whole IRI and ok is false.
func (i Iri[T]) Split() (ns, suffix string, ok bool) {
	return i.ns.Str(), i.suffix.Str(), i.split
}

func iriEq[T, U StrData](a Iri[T], b Iri[U]) bool {
	return concatEq(a.ns.Str(), a.suffix.Str(), b.ns.Str(), b.suffix.Str())
}

// concatEq reports whether a1+a2 == b1+b2 without building either
// concatenation.
func concatEq(a1, a2, b1, b2 string) bool {
	if len(a1)+len(a2) != len(b1)+len(b2) {
		return false
	}
	if len(a1) == len(b1) {
		return a1 == b1 && a2 == b2
	}
	if len(a1) > len(b1) {
		a1, a2, b1, b2 = b1, b2, a1, a2
	}
	// a1 is the shorter head: b1 covers a1 plus a middle chunk of a2.
	if a1 != b1[:len(a1)] {
		return false
	}
	mid := b1[len(a1):]
	if mid != a2[:len(mid)] {
		return false
	}
	return a2[len(mid):] == b2
}

// pairAbsolute reports whether the concatenation ns+suffix starts with
// a scheme followed by ':'. It inspects only the scheme position and
// assumes the concatenation is already a valid IRI reference.
func pairAbsolute(ns, suffix string) bool {
	i := 0
	for _, s := range [2]string{ns, suffix} {
		for j := 0; j < len(s); j++ {
			c := s[j]
			switch {
			case c == ':':
				return i > 0
			case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
			case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
			default:
				return false
			}
			i++
		}
	}
	return false
}
