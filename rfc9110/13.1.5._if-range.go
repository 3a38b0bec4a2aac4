package rfc9110

// §  13.1.5.  If-Range
// §
// §     The "If-Range" header field allows a client to "short-circuit" the
// §     second request of a range request when the validator given in the
// §     field value does not match.  Informally, its meaning is: when the
// §     representation is unchanged, send me the part(s) that I am
// §     requesting in Range; otherwise, send me the entire representation.
// §
// §       If-Range = entity-tag / HTTP-date
// §
// §     A valid entity-tag can be distinguished from a valid HTTP-date by
// §     examining the first three characters for a DQUOTE.
// §
// §     A server that receives an If-Range header field on a Range request
// §     MUST evaluate the condition as per these rules prior to performing
// §     the method.

// RangeApplies evaluates an If-Range header value against the resource's
// current validators and reports whether range semantics apply. An empty
// header value means no If-Range was sent, which always applies.
//
// This never fails: a value that is neither a parseable HTTP-date nor a
// matching entity tag simply means the full representation is served, which
// is always a safe answer.
func RangeApplies(ifRange string, resource Resource) bool {
	if ifRange == "" {
		return true
	}

	// §     To evaluate a received If-Range header field containing an
	// §     HTTP-date:
	// §
	// §     1.  If the HTTP-date validator provided is not a strong validator
	// §         in the sense defined by Section 8.8.2.2, the condition is
	// §         false.
	// §
	// §     2.  If the HTTP-date validator provided exactly matches the
	// §         Last-Modified field value for the selected representation,
	// §         the condition is true.
	// §
	// §     3.  Otherwise, the condition is false.
	if date, err := httpDate(ifRange); err == nil {
		if resource.LastModified.IsZero() {
			return false
		}
		return !resource.LastModified.After(date)
	}

	// §     To evaluate a received If-Range header field containing an
	// §     entity-tag:
	// §
	// §     1.  If the entity-tag validator provided exactly matches the ETag
	// §         field value for the selected representation using the strong
	// §         comparison function (Section 8.8.3.2), the condition is true.
	// §
	// §     2.  Otherwise, the condition is false.
	return strongCompare(ifRange, resource.ETag)
}
