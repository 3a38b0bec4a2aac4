package rfc9110

import "net/http"

// §  15.5.17.  416 Range Not Satisfiable
// §
// §     The 416 (Range Not Satisfiable) status code indicates that the set
// §     of ranges in the request's Range header field (Section 14.2) has
// §     been rejected either because none of the requested ranges are
// §     satisfiable or because the client has requested an excessive number
// §     of small or overlapping ranges.
// §
// §     A server that generates a 416 response to a byte-range request
// §     SHOULD generate a Content-Range header field specifying the current
// §     length of the selected representation, e.g.,
// §
// §       HTTP/1.1 416 Range Not Satisfiable
// §       Date: Fri, 20 Jan 2012 15:41:54 GMT
// §       Content-Range: bytes */47022
func composeUnsatisfiable(resource Resource) Plan {
	header := make(http.Header)
	header.Set("Content-Range", unsatisfiedRange(resource.Length))
	return Plan{
		StatusCode: http.StatusRequestedRangeNotSatisfiable,
		Header:     header,
	}
}
