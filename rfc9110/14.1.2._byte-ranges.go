package rfc9110

// §  14.1.2.  Byte Ranges
// §
// §     The "bytes" range unit is used to express subranges of a
// §     representation data's octet sequence.  Each byte range is expressed
// §     as an integer range at some offset, relative to either the beginning
// §     (int-range) or end (suffix-range) of the representation data.  Byte
// §     ranges do not use the other-range specifier.
// §
// §     The first-pos value in a bytes int-range gives the offset of the
// §     first byte in a range.  The last-pos value gives the offset of the
// §     last byte in the range; that is, the byte positions specified are
// §     inclusive.  Byte offsets start at zero.
// §
// §     If the representation data is shorter than the specified suffix-
// §     length, the entire representation is used.

// ResolvedRange is a concrete inclusive byte interval within a
// representation, derived from a ByteRangeSpec and the representation's
// length. Invariant: 0 <= Start <= End < length.
type ResolvedRange struct {
	Start, End int64
}

// Length returns the number of bytes the interval covers.
func (r ResolvedRange) Length() int64 {
	return r.End - r.Start + 1
}

// §     A client can limit the number of bytes requested without knowing the
// §     size of the selected representation.  If the last-pos value is
// §     absent, or if the value is greater than or equal to the current
// §     length of the representation data, the byte range is interpreted as
// §     the remainder of the representation (i.e., the server replaces the
// §     value of last-pos with a value that is one less than the current
// §     length of the selected representation).
//
// §     A valid bytes range-spec is satisfiable if it is either:
// §
// §     *  an int-range with a first-pos that is less than the current
// §        length of the selected representation or
// §
// §     *  a suffix-range with a non-zero suffix-length.
// §
// §     Otherwise, the range-spec is unsatisfiable.
func (s ByteRangeSpec) resolve(length int64) (ResolvedRange, bool) {
	if length <= 0 {
		return ResolvedRange{}, false
	}
	if s.Start < 0 {
		// suffix-range
		if s.End == 0 {
			return ResolvedRange{}, false
		}
		start := length - s.End
		if start < 0 {
			start = 0
		}
		return ResolvedRange{Start: start, End: length - 1}, true
	}
	if s.Start >= length {
		return ResolvedRange{}, false
	}
	end := s.End
	if end < 0 || end >= length {
		end = length - 1
	}
	return ResolvedRange{Start: s.Start, End: end}, true
}
