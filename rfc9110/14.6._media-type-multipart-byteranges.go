package rfc9110

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// §  14.6.  Media Type multipart/byteranges
// §
// §     When a 206 (Partial Content) response message includes the content of
// §     multiple ranges, they are transmitted as body parts in a multipart
// §     message body ([RFC2046], Section 5.1) with the media type of
// §     "multipart/byteranges".
// §
// §     The multipart/byteranges media type includes one or more body parts,
// §     each with its own Content-Type and Content-Range fields.  The
// §     required boundary parameter specifies the boundary string used to
// §     separate each body part.
// §
// §     Implementation Notes:
// §
// §     1.  Additional CRLFs might precede the first boundary string in the
// §         body.
// §
// §     2.  Although [RFC2046] permits the boundary string to be quoted, some
// §         existing implementations handle a quoted boundary string badly.
// §
// §     3.  A number of clients and servers were coded to an early draft of
// §         the byteranges specification that used a media type of multipart/
// §         x-byteranges, which is almost (but not quite) compatible with this
// §         type.
const multipartByteranges = "multipart/byteranges"

// newBoundary returns a fresh boundary token. The token only needs to be
// unlikely to collide with content bytes, not unpredictable in any
// security sense.
func newBoundary() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// composeMultipart builds the 206 plan for two or more ranges. The body
// alternates literal part headers with resource slices and closes with the
// final boundary delimiter. No top-level Content-Length is set: the total
// depends on every part header, and the caller's transport can either
// buffer and measure or stream chunked.
func composeMultipart(ranges []ResolvedRange, resource Resource, contentType string) Plan {
	boundary := newBoundary()
	header := make(http.Header)
	header.Set("Accept-Ranges", acceptRanges)
	header.Set("Content-Type", multipartByteranges+"; boundary="+boundary)

	segments := make([]Segment, 0, 2*len(ranges)+1)
	for i, r := range ranges {
		segments = append(segments,
			Segment{Literal: partHeader(boundary, contentType, r, resource.Length, i == 0)},
			Segment{Start: r.Start, End: r.End},
		)
	}
	segments = append(segments, Segment{Literal: []byte("\r\n--" + boundary + "--\r\n")})

	return Plan{
		StatusCode: http.StatusPartialContent,
		Header:     header,
		Segments:   segments,
	}
}

func partHeader(boundary, contentType string, r ResolvedRange, completeLength int64, first bool) []byte {
	var b strings.Builder
	if !first {
		b.WriteString("\r\n")
	}
	fmt.Fprintf(&b, "--%s\r\n", boundary)
	fmt.Fprintf(&b, "Content-Type: %s\r\n", contentType)
	fmt.Fprintf(&b, "Content-Range: %s\r\n", r.ContentRange(completeLength))
	b.WriteString("\r\n")
	return []byte(b.String())
}
