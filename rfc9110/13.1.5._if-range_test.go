package rfc9110

import (
	"testing"
	"time"
)

var ifRangeResource = Resource{
	Length:       1234,
	ETag:         "abc123",
	LastModified: time.Date(2022, time.August, 18, 2, 1, 18, 0, time.UTC),
}

func TestRangeAppliesWithoutIfRange(t *testing.T) {
	if !RangeApplies("", ifRangeResource) {
		t.Fatal("Ranges do not apply")
	}
}

func TestRangeAppliesMatchingEtag(t *testing.T) {
	if !RangeApplies("abc123", ifRangeResource) {
		t.Fatal("Ranges do not apply")
	}
}

func TestRangeAppliesStaleEtag(t *testing.T) {
	if RangeApplies("old456", ifRangeResource) {
		t.Fatal("Ranges apply")
	}
}

func TestRangeAppliesWeakEtag(t *testing.T) {
	res := ifRangeResource
	res.ETag = `W/"abc123"`
	if RangeApplies(`W/"abc123"`, res) {
		t.Fatal("Ranges apply for weak etag")
	}
}

func TestRangeAppliesNoResourceEtag(t *testing.T) {
	res := ifRangeResource
	res.ETag = ""
	if RangeApplies("abc123", res) {
		t.Fatal("Ranges apply")
	}
}

func TestRangeAppliesDateEqual(t *testing.T) {
	if !RangeApplies("Thu, 18 Aug 2022 02:01:18 GMT", ifRangeResource) {
		t.Fatal("Ranges do not apply")
	}
}

func TestRangeAppliesDateAfterModification(t *testing.T) {
	if !RangeApplies("Thu, 18 Aug 2022 03:00:00 GMT", ifRangeResource) {
		t.Fatal("Ranges do not apply")
	}
}

func TestRangeAppliesResourceModifiedSinceDate(t *testing.T) {
	if RangeApplies("Thu, 18 Aug 2022 01:00:00 GMT", ifRangeResource) {
		t.Fatal("Ranges apply")
	}
}

func TestRangeAppliesDateWithoutLastModified(t *testing.T) {
	res := ifRangeResource
	res.LastModified = time.Time{}
	if RangeApplies("Thu, 18 Aug 2022 02:01:18 GMT", res) {
		t.Fatal("Ranges apply")
	}
}

func TestStrongCompare(t *testing.T) {
	if !strongCompare(`"a"`, `"a"`) {
		t.Fatal("Equal strong tags do not match")
	}
	if strongCompare(`W/"a"`, `"a"`) || strongCompare(`"a"`, `W/"a"`) {
		t.Fatal("Weak tag matches")
	}
	if strongCompare("", "") {
		t.Fatal("Empty tags match")
	}
}
