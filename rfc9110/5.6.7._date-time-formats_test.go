package rfc9110

import "testing"

func TestHttpDateIMF(t *testing.T) {
	date, err := httpDate("Sun, 06 Nov 1994 08:49:37 GMT")
	if err != nil {
		t.Fatalf("Error parsing date %+v", err)
	}
	if date.Year() != 1994 {
		t.Fatalf("Date is %v", date)
	}
}

func TestHttpDateRFC850(t *testing.T) {
	_, err := httpDate("Thursday, 18-Aug-50 02:01:18 GMT")
	if err != nil {
		t.Fatalf("Error parsing date %+v", err)
	}
}

func TestHttpDateTZCase(t *testing.T) {
	_, err := httpDate("Thu, 18 Aug 2050 02:01:18 gMT")
	if err != nil {
		t.Fatalf("Error parsing date %+v", err)
	}
}

func TestHttpDateRejectsEtag(t *testing.T) {
	if _, err := httpDate(`"abc123"`); err == nil {
		t.Fatal("Etag parsed as date")
	}
}
