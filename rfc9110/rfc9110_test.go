package rfc9110

import (
	"net/http"
	"testing"
	"time"
)

var planResource = Resource{
	Length:       10,
	ETag:         "abc123",
	LastModified: time.Date(2022, time.August, 18, 2, 1, 18, 0, time.UTC),
}

func TestPlanRequestNoRangeHeader(t *testing.T) {
	plan := PlanRequest("", "", planResource, "text/plain")
	if plan.StatusCode != http.StatusOK {
		t.Fatalf("Status is %d", plan.StatusCode)
	}
}

func TestPlanRequestOpenEndedRange(t *testing.T) {
	plan := PlanRequest("bytes=0-", "", planResource, "text/plain")
	if plan.StatusCode != http.StatusPartialContent {
		t.Fatalf("Status is %d", plan.StatusCode)
	}
	if cr := plan.Header.Get("Content-Range"); cr != "bytes 0-9/10" {
		t.Fatalf("Content-Range is %s", cr)
	}
}

func TestPlanRequestUnsatisfiableRange(t *testing.T) {
	plan := PlanRequest("bytes=20-30", "", planResource, "text/plain")
	if plan.StatusCode != http.StatusRequestedRangeNotSatisfiable {
		t.Fatalf("Status is %d", plan.StatusCode)
	}
	if cr := plan.Header.Get("Content-Range"); cr != "bytes */10" {
		t.Fatalf("Content-Range is %s", cr)
	}
}

func TestPlanRequestMultipleRangesInOrder(t *testing.T) {
	plan := PlanRequest("bytes=0-0,5-9", "", planResource, "text/plain")
	if plan.StatusCode != http.StatusPartialContent {
		t.Fatalf("Status is %d", plan.StatusCode)
	}
	var slices []Segment
	for _, seg := range plan.Segments {
		if !seg.IsLiteral() {
			slices = append(slices, seg)
		}
	}
	if len(slices) != 2 || slices[0].Start != 0 || slices[1].Start != 5 {
		t.Fatalf("Slices are %+v", slices)
	}
}

func TestPlanRequestStaleIfRange(t *testing.T) {
	plan := PlanRequest("bytes=0-0", "old456", planResource, "text/plain")
	if plan.StatusCode != http.StatusOK {
		t.Fatalf("Status is %d", plan.StatusCode)
	}
}

func TestPlanRequestMalformedRangeIgnored(t *testing.T) {
	plan := PlanRequest("items=0-10", "", planResource, "text/plain")
	if plan.StatusCode != http.StatusOK {
		t.Fatalf("Status is %d", plan.StatusCode)
	}
	if cl := plan.Header.Get("Content-Length"); cl != "10" {
		t.Fatalf("Content-Length is %s", cl)
	}
}

func TestPlanRequestSuffixClamp(t *testing.T) {
	plan := PlanRequest("bytes=-100", "", planResource, "text/plain")
	if cr := plan.Header.Get("Content-Range"); cr != "bytes 0-9/10" {
		t.Fatalf("Content-Range is %s", cr)
	}
}
