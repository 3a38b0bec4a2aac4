package rfc9110

import "fmt"

// §  14.4.  Content-Range
// §
// §     The "Content-Range" header field is sent in a single part of a
// §     multipart 206 (Partial Content) response to indicate the partial
// §     range of the selected representation enclosed as the message
// §     content, sent in each part of a multipart response to indicate the
// §     range enclosed within each body part (Section 14.6), and sent in 416
// §     (Range Not Satisfiable) responses to provide information about the
// §     selected representation.
// §
// §       Content-Range       = range-unit SP
// §                             ( range-resp / unsatisfied-range )
// §
// §       range-resp          = incl-range "/" ( complete-length / "*" )
// §       incl-range          = first-pos "-" last-pos
// §       unsatisfied-range   = "*/" complete-length
// §
// §       complete-length     = 1*DIGIT
// §
// §     A Content-Range field value is invalid if it contains a range-resp
// §     that has a last-pos value less than its first-pos value.

// ContentRange formats a range-resp Content-Range value for this interval
// within a representation of the given complete length.
func (r ResolvedRange) ContentRange(completeLength int64) string {
	return fmt.Sprintf("%s %d-%d/%d", bytesUnit, r.Start, r.End, completeLength)
}

// unsatisfiedRange formats the Content-Range value sent on a 416 response.
func unsatisfiedRange(completeLength int64) string {
	return fmt.Sprintf("%s */%d", bytesUnit, completeLength)
}
