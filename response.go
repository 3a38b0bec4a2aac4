package alwaysserve

import (
	"io"
	"net/http"
	"strings"

	"github.com/always-serve/always-serve/rfc9110"
)

const chunkSize = 64 * 1024

// writePlan streams the plan's body segments to the client in order.
// Literal segments are written verbatim; slice segments are read from the
// blob in chunkSize chunks. It returns the number of bytes written, also
// when aborting on a write error (e.g. a closed client connection).
func writePlan(w io.Writer, plan rfc9110.Plan, src io.ReaderAt) (int64, error) {
	var written int64
	buf := make([]byte, chunkSize)
	for _, segment := range plan.Segments {
		if segment.IsLiteral() {
			n, err := w.Write(segment.Literal)
			written += int64(n)
			if err != nil {
				return written, err
			}
			continue
		}
		section := io.NewSectionReader(src, segment.Start, segment.End-segment.Start+1)
		n, err := io.CopyBuffer(w, section, buf)
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func getRequestSourceIp(r *http.Request) string {
	// RemoteAddr is in the format:
	// 1.2.3.4:10000 for ipv4
	// [1:2:3]:10000 for ipv6
	ipAndPort := r.RemoteAddr
	portSepIdx := strings.LastIndex(ipAndPort, ":")
	// if not found, return
	if portSepIdx < 0 {
		return ipAndPort
	}
	ip := ipAndPort[:portSepIdx]
	return ip
}
