// Package rfc9110 implements the range request semantics of RFC 9110
// (HTTP Semantics), i.e. the Range and If-Range header fields and the
// composition of 206 (Partial Content) and 416 (Range Not Satisfiable)
// responses.
//
// The package is purely functional: it turns header values and resource
// metadata into a response Plan, and performs no I/O of its own. Reading
// the actual bytes named by the plan is the caller's job.
package rfc9110

import (
	"errors"
	"net/http"
	"time"
)

// ErrMalformedRange indicates a syntactically invalid Range header value.
// Per Section 14.2, a server MAY ignore the Range header field, so callers
// should treat this error as "no ranges requested" rather than as an HTTP
// error.
var ErrMalformedRange = errors.New("malformed range header")

// Resource holds the metadata of the selected representation that range
// evaluation needs. It is supplied by the caller per request and only read,
// never mutated or cached.
type Resource struct {
	// Length is the complete length of the representation in bytes.
	Length int64
	// ETag is the current entity tag, if any.
	ETag string
	// LastModified is the last modification time, if known.
	LastModified time.Time
}

// Segment is one element of a response body: either literal bytes (part
// headers and boundary delimiters of a multipart/byteranges body) or an
// inclusive [Start, End] slice of the resource to be streamed by the caller.
type Segment struct {
	Literal    []byte
	Start, End int64
}

// IsLiteral reports whether the segment carries literal bytes instead of
// a resource slice.
func (s Segment) IsLiteral() bool {
	return s.Literal != nil
}

// Plan is the computed response: status code, headers, and the body
// segments to emit in order.
type Plan struct {
	StatusCode int
	Header     http.Header
	Segments   []Segment
}

// PlanRequest evaluates a request's Range and If-Range header values
// against the given resource and returns the response plan. Either header
// may be empty to signal absence.
//
// A malformed Range header must not break normal serving, so it is treated
// as if no Range header was sent at all.
func PlanRequest(rangeHeader, ifRangeHeader string, resource Resource, contentType string) Plan {
	var specs []ByteRangeSpec
	if rangeHeader != "" && RangeApplies(ifRangeHeader, resource) {
		if parsed, err := ParseRange(rangeHeader); err == nil {
			specs = parsed
		}
	}
	return Compose(Resolve(specs, resource.Length), resource, contentType)
}
