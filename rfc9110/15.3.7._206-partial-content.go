package rfc9110

import (
	"net/http"
	"strconv"
)

// §  15.3.7.  206 Partial Content
// §
// §     The 206 (Partial Content) status code indicates that the server is
// §     successfully fulfilling a range request for the target resource by
// §     transferring one or more parts of the selected representation.
// §
// §     A server that supports range requests (Section 14) will usually
// §     attempt to satisfy all of the requested ranges, since sending less
// §     data will likely result in another client request for the
// §     remainder.  However, a server might want to send only a subset of
// §     the data requested for reasons of its own.

// Compose turns a resolver Outcome into the final response plan: a 200
// full-body response, a single-range or multipart 206, or a 416. Every
// plan except the 416 advertises Accept-Ranges.
func Compose(outcome Outcome, resource Resource, contentType string) Plan {
	switch outcome.Kind {
	case Satisfiable:
		if len(outcome.Ranges) == 1 {
			return composeSingleRange(outcome.Ranges[0], resource, contentType)
		}
		return composeMultipart(outcome.Ranges, resource, contentType)
	case Unsatisfiable:
		return composeUnsatisfiable(resource)
	default:
		return composeFull(resource, contentType)
	}
}

func composeFull(resource Resource, contentType string) Plan {
	header := make(http.Header)
	header.Set("Accept-Ranges", acceptRanges)
	header.Set("Content-Type", contentType)
	header.Set("Content-Length", strconv.FormatInt(resource.Length, 10))
	plan := Plan{StatusCode: http.StatusOK, Header: header}
	if resource.Length > 0 {
		plan.Segments = []Segment{{Start: 0, End: resource.Length - 1}}
	}
	return plan
}

// §     If a single part is being transferred, the server generating the 206
// §     response MUST generate a Content-Range header field, describing what
// §     range of the selected representation is enclosed, and a content
// §     consisting of the range.
func composeSingleRange(r ResolvedRange, resource Resource, contentType string) Plan {
	header := make(http.Header)
	header.Set("Accept-Ranges", acceptRanges)
	header.Set("Content-Type", contentType)
	header.Set("Content-Range", r.ContentRange(resource.Length))
	header.Set("Content-Length", strconv.FormatInt(r.Length(), 10))
	return Plan{
		StatusCode: http.StatusPartialContent,
		Header:     header,
		Segments:   []Segment{{Start: r.Start, End: r.End}},
	}
}

// §     If multiple parts are being transferred, the server generating the
// §     206 response MUST generate "multipart/byteranges" content, as defined
// §     in Section 14.6, and a Content-Type header field containing the
// §     multipart/byteranges media type and its required boundary parameter.
// §     To avoid confusion with single-part responses, a server MUST NOT
// §     generate a Content-Range header field in the HTTP header section of a
// §     multiple part response (this field will be sent in each part
// §     instead).
