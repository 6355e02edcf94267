// Package term implements the atomic value type of an RDF-like graph
// data model: IRIs, blank nodes, literals and query variables.
//
// A Term is generic over the ownership strategy of its internal
// strings. The strategy decides how the bytes are held — it never
// affects the term's logical value, its equality, or its hash:
//
//   - Ref: a zero-copy view of an external buffer. Built straight from
//     parser input slices; pins the whole backing buffer.
//   - Box: a uniquely owned detached copy.
//   - Shared: the payload behind a *string, so copying a term copies
//     one word per field instead of the bytes.
//   - Atom: the payload behind the runtime's canonicalization map
//     (package unique); the strategy for terms retained for the life
//     of the process, such as vocabulary constants.
//
// Terms are immutable once constructed. Shared and Atom terms may be
// read concurrently from any number of goroutines; Ref terms must not
// outlive the buffer they were sliced from. Copy and CopyWith rebuild
// a term under a different strategy without re-validating it.
//
// # Validated and trusted construction
//
// The New* constructors check their input (IRI reference syntax,
// BCP 47 language tags, variable-name grammar, datatype variant) and
// return an error wrapping one of the ErrInvalid* sentinels on
// violation. They are the only safe entry points for untrusted input.
//
// The Trusted* constructors skip every check. They exist for callers
// that already hold proof of validity — re-materializing a term that
// came out of a validated constructor, or spelling out well-known
// vocabulary constants. Passing invalid data to a Trusted* constructor
// does not corrupt memory, but the resulting term will compare, hash
// and render incorrectly. That is a logic error on the caller's side,
// not a reported fault.
package term
