package rfc9110

import (
	"fmt"
	"net/textproto"
	"strconv"
	"strings"
)

// §  14.1.1.  Range Specifiers
// §
// §     Ranges are expressed in terms of a range unit paired with a set of
// §     range specs.  The range unit name determines what kinds of range-spec
// §     are applicable to its own specifiers.  Hence, the following gram-
// §     mar is generic: each range unit is expected to specify requirements
// §     on its allowed range-spec.
// §
// §       ranges-specifier = range-unit "=" range-set
// §       range-set        = 1#range-spec
// §       range-spec       = int-range
// §                        / suffix-range
// §                        / other-range
// §
// §     An int-range is a range expressed as two non-negative integers or as
// §     one non-negative integer through to the end of the representation
// §     data.  The range unit specifies what the integers mean (e.g., they
// §     might indicate byte offsets, inclusive boundaries of a media time
// §     range in seconds, etc.).
// §
// §       int-range     = first-pos "-" [ last-pos ]
// §       first-pos     = 1*DIGIT
// §       last-pos      = 1*DIGIT
// §
// §     An int-range is invalid if the last-pos value is present and less
// §     than the first-pos.
// §
// §     A suffix-range is a range expressed as a suffix of the representation
// §     data with the provided length being the number of units at the end.
// §
// §       suffix-range  = "-" suffix-length
// §       suffix-length = 1*DIGIT

// ByteRangeSpec is one parsed range-spec for the bytes range unit.
// It represents the three syntactic forms:
//
//	first-last  Start >= 0, End >= 0
//	first-      Start >= 0, End == -1 (to the end of the representation)
//	-suffix     Start == -1, End holds the suffix-length
//
// Specs are immutable once parsed; resolving them against a representation
// length is a separate step (Resolve).
type ByteRangeSpec struct {
	Start int64
	End   int64
}

const bytesUnit = "bytes"

// ParseRange parses a Range header value into its range specs. It fails
// with an error wrapping ErrMalformedRange on any range unit other than
// bytes, on invalid spec syntax, and on an empty range set. Whitespace
// around the "=" and around commas is tolerated.
//
// No limit is placed on the number of specs; bounding multipart response
// size is a resolver-level concern.
func ParseRange(header string) ([]ByteRangeSpec, error) {
	unit, set, found := strings.Cut(header, "=")
	if !found {
		return nil, fmt.Errorf("%w: missing range unit", ErrMalformedRange)
	}
	if !strings.EqualFold(strings.TrimSpace(unit), bytesUnit) {
		return nil, fmt.Errorf("%w: unsupported range unit %q", ErrMalformedRange, unit)
	}

	var specs []ByteRangeSpec
	for _, item := range strings.Split(set, ",") {
		item = textproto.TrimString(item)
		if item == "" {
			// empty list elements are tolerated per the #rule
			continue
		}
		spec, err := parseRangeSpec(item)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: empty range set", ErrMalformedRange)
	}
	return specs, nil
}

func parseRangeSpec(item string) (ByteRangeSpec, error) {
	first, last, found := strings.Cut(item, "-")
	if !found {
		return ByteRangeSpec{}, fmt.Errorf("%w: invalid range spec %q", ErrMalformedRange, item)
	}
	first = textproto.TrimString(first)
	last = textproto.TrimString(last)

	if first == "" {
		suffix, err := parsePos(last)
		if err != nil {
			return ByteRangeSpec{}, fmt.Errorf("%w: invalid suffix-length in %q", ErrMalformedRange, item)
		}
		return ByteRangeSpec{Start: -1, End: suffix}, nil
	}

	start, err := parsePos(first)
	if err != nil {
		return ByteRangeSpec{}, fmt.Errorf("%w: invalid first-pos in %q", ErrMalformedRange, item)
	}
	if last == "" {
		return ByteRangeSpec{Start: start, End: -1}, nil
	}
	end, err := parsePos(last)
	if err != nil {
		return ByteRangeSpec{}, fmt.Errorf("%w: invalid last-pos in %q", ErrMalformedRange, item)
	}
	if end < start {
		return ByteRangeSpec{}, fmt.Errorf("%w: last-pos precedes first-pos in %q", ErrMalformedRange, item)
	}
	return ByteRangeSpec{Start: start, End: end}, nil
}

// parsePos parses a 1*DIGIT position value.
func parsePos(s string) (int64, error) {
	if s == "" || strings.HasPrefix(s, "+") {
		return 0, strconv.ErrSyntax
	}
	pos, err := strconv.ParseInt(s, 10, 64)
	if err != nil || pos < 0 {
		return 0, strconv.ErrSyntax
	}
	return pos, nil
}
