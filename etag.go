package alwaysserve

import (
	"crypto/md5"
	"fmt"
	"mime"
	"net/url"
	"path"
	"time"
)

// etagFor derives the entity tag from the blob's modification time and
// size. The tag therefore changes whenever the content observably changes,
// which is what If-Range validation needs. It is not a content hash.
func etagFor(modTime time.Time, size int64) string {
	base := fmt.Sprintf("%d-%d", modTime.Unix(), size)
	return fmt.Sprintf("%x", md5.Sum([]byte(base)))
}

// contentTypeFor guesses the media type from the path extension.
func contentTypeFor(p string) string {
	if contentType := mime.TypeByExtension(path.Ext(p)); contentType != "" {
		return contentType
	}
	return "text/plain"
}

// contentDisposition formats a Content-Disposition value for the given
// filename, falling back to the RFC 8187 filename* form when the name
// needs escaping.
func contentDisposition(dispositionType, filename string) string {
	escaped := url.PathEscape(filename)
	if escaped != filename {
		return fmt.Sprintf("%s; filename*=utf-8''%s", dispositionType, escaped)
	}
	return fmt.Sprintf("%s; filename=%q", dispositionType, filename)
}
