package rfc9110

// §  14.2.  Range
// §
// §     The "Range" header field on a GET request modifies the method
// §     semantics to request transfer of only one or more subranges of the
// §     selected representation data, rather than the entire selected
// §     representation.
// §
// §       Range = ranges-specifier
// §
// §     A server that supports range requests MAY ignore or reject a Range
// §     header field that contains an invalid ranges-specifier (Section
// §     14.1.1), a ranges-specifier with more than two overlapping ranges, or
// §     a set of many small ranges that are not listed in ascending order,
// §     since these are indications of either a broken client or a deliberate
// §     denial-of-service attack (Section 17.15).
// §
// §     A server that supports range requests MAY ignore a Range header
// §     field when the selected representation has no content (i.e., the
// §     current length is zero).

// OutcomeKind classifies what a set of range specs means for a concrete
// representation.
type OutcomeKind int

const (
	// NoRange means no ranges were requested (or they do not apply);
	// the full representation is served with a 200.
	NoRange OutcomeKind = iota
	// Satisfiable means at least one requested range can be served
	// with a 206.
	Satisfiable
	// Unsatisfiable means every requested range is out of bounds;
	// the response is a 416.
	Unsatisfiable
)

// Outcome is the resolver's verdict, the single handoff artifact consumed
// by Compose. Ranges is populated only for Satisfiable.
type Outcome struct {
	Kind   OutcomeKind
	Ranges []ResolvedRange
}

// Resolve maps range specs onto a representation of the given length.
// Individually unsatisfiable specs are dropped so that the satisfiable
// subset can still be served; only when every spec is unsatisfiable (or the
// representation is empty) is the whole set Unsatisfiable. An empty spec
// set resolves to NoRange.
//
// Satisfiable ranges are kept in requested order. Overlapping ranges are
// neither merged nor deduplicated, preserving the client's intent.
func Resolve(specs []ByteRangeSpec, length int64) Outcome {
	if len(specs) == 0 {
		return Outcome{Kind: NoRange}
	}
	ranges := make([]ResolvedRange, 0, len(specs))
	for _, spec := range specs {
		if r, ok := spec.resolve(length); ok {
			ranges = append(ranges, r)
		}
	}
	if len(ranges) == 0 {
		return Outcome{Kind: Unsatisfiable}
	}
	return Outcome{Kind: Satisfiable, Ranges: ranges}
}
