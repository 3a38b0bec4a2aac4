package rfc9110

// §  14.3.  Accept-Ranges
// §
// §     The "Accept-Ranges" field in a response indicates whether an upstream
// §     server supports range requests for the target resource.
// §
// §       Accept-Ranges     = acceptable-ranges
// §       acceptable-ranges = 1#range-unit
// §
// §     For example, a server that supports byte-range requests (Section
// §     14.1.2) can send
// §
// §       Accept-Ranges: bytes
// §
// §     to indicate that it supports byte range requests for that target
// §     resource, thereby encouraging its use by the client for future
// §     partial requests on the same request path.
const acceptRanges = bytesUnit
