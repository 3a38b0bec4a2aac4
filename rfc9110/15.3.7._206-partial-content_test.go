package rfc9110

import (
	"net/http"
	"strings"
	"testing"
)

var composeResource = Resource{Length: 10}

func TestComposeFull(t *testing.T) {
	plan := Compose(Outcome{Kind: NoRange}, composeResource, "text/plain")
	if plan.StatusCode != http.StatusOK {
		t.Fatalf("Status is %d", plan.StatusCode)
	}
	if cl := plan.Header.Get("Content-Length"); cl != "10" {
		t.Fatalf("Content-Length is %s", cl)
	}
	if ar := plan.Header.Get("Accept-Ranges"); ar != "bytes" {
		t.Fatalf("Accept-Ranges is %s", ar)
	}
	if len(plan.Segments) != 1 || plan.Segments[0].Start != 0 || plan.Segments[0].End != 9 {
		t.Fatalf("Segments are %+v", plan.Segments)
	}
}

func TestComposeFullEmptyRepresentation(t *testing.T) {
	plan := Compose(Outcome{Kind: NoRange}, Resource{Length: 0}, "text/plain")
	if plan.StatusCode != http.StatusOK || len(plan.Segments) != 0 {
		t.Fatalf("Plan is %+v", plan)
	}
	if cl := plan.Header.Get("Content-Length"); cl != "0" {
		t.Fatalf("Content-Length is %s", cl)
	}
}

func TestComposeSingleRange(t *testing.T) {
	outcome := Outcome{Kind: Satisfiable, Ranges: []ResolvedRange{{Start: 2, End: 5}}}
	plan := Compose(outcome, composeResource, "text/plain")
	if plan.StatusCode != http.StatusPartialContent {
		t.Fatalf("Status is %d", plan.StatusCode)
	}
	if cr := plan.Header.Get("Content-Range"); cr != "bytes 2-5/10" {
		t.Fatalf("Content-Range is %s", cr)
	}
	if cl := plan.Header.Get("Content-Length"); cl != "4" {
		t.Fatalf("Content-Length is %s", cl)
	}
	if len(plan.Segments) != 1 || plan.Segments[0].IsLiteral() {
		t.Fatalf("Segments are %+v", plan.Segments)
	}
}

func TestComposeSingleRangeLengthRoundTrip(t *testing.T) {
	outcome := Outcome{Kind: Satisfiable, Ranges: []ResolvedRange{{Start: 0, End: 9}}}
	plan := Compose(outcome, composeResource, "text/plain")
	r := outcome.Ranges[0]
	if cl := plan.Header.Get("Content-Length"); cl != "10" || r.Length() != 10 {
		t.Fatalf("Content-Length is %s, range length %d", cl, r.Length())
	}
}

func TestComposeUnsatisfiable(t *testing.T) {
	plan := Compose(Outcome{Kind: Unsatisfiable}, composeResource, "text/plain")
	if plan.StatusCode != http.StatusRequestedRangeNotSatisfiable {
		t.Fatalf("Status is %d", plan.StatusCode)
	}
	if cr := plan.Header.Get("Content-Range"); cr != "bytes */10" {
		t.Fatalf("Content-Range is %s", cr)
	}
	if ar := plan.Header.Get("Accept-Ranges"); ar != "" {
		t.Fatalf("Accept-Ranges is %s", ar)
	}
	if len(plan.Segments) != 0 {
		t.Fatalf("Segments are %+v", plan.Segments)
	}
}

func TestComposeMultipart(t *testing.T) {
	outcome := Outcome{Kind: Satisfiable, Ranges: []ResolvedRange{{Start: 0, End: 0}, {Start: 5, End: 9}}}
	plan := Compose(outcome, composeResource, "text/plain")
	if plan.StatusCode != http.StatusPartialContent {
		t.Fatalf("Status is %d", plan.StatusCode)
	}
	ct := plan.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "multipart/byteranges; boundary=") {
		t.Fatalf("Content-Type is %s", ct)
	}
	if cr := plan.Header.Get("Content-Range"); cr != "" {
		t.Fatalf("Content-Range is %s on multipart response", cr)
	}
	if cl := plan.Header.Get("Content-Length"); cl != "" {
		t.Fatalf("Content-Length is %s on multipart response", cl)
	}
	// part header, slice, part header, slice, closing delimiter
	if len(plan.Segments) != 5 {
		t.Fatalf("Segments are %+v", plan.Segments)
	}
	if plan.Segments[1].Start != 0 || plan.Segments[3].Start != 5 {
		t.Fatalf("Slices out of order: %+v", plan.Segments)
	}
	boundary := strings.TrimPrefix(ct, "multipart/byteranges; boundary=")
	first := string(plan.Segments[0].Literal)
	if !strings.HasPrefix(first, "--"+boundary+"\r\n") {
		t.Fatalf("First part header is %q", first)
	}
	if !strings.Contains(first, "Content-Range: bytes 0-0/10\r\n") {
		t.Fatalf("First part header is %q", first)
	}
	closing := string(plan.Segments[4].Literal)
	if closing != "\r\n--"+boundary+"--\r\n" {
		t.Fatalf("Closing delimiter is %q", closing)
	}
}

func TestComposeMultipartFreshBoundary(t *testing.T) {
	outcome := Outcome{Kind: Satisfiable, Ranges: []ResolvedRange{{Start: 0, End: 0}, {Start: 5, End: 9}}}
	first := Compose(outcome, composeResource, "text/plain").Header.Get("Content-Type")
	second := Compose(outcome, composeResource, "text/plain").Header.Get("Content-Type")
	if first == second {
		t.Fatalf("Boundary reused: %s", first)
	}
}
