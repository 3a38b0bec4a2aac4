// Package alwaysserve is an HTTP file server that always serves byte
// ranges correctly. It evaluates Range and If-Range per RFC 9110 and
// streams full, single-range or multipart/byteranges responses from any
// blob store.
package alwaysserve

import (
	"errors"
	"net/http"
	"path"

	"github.com/always-serve/always-serve/rfc9110"
	"github.com/always-serve/always-serve/store"

	"github.com/rs/zerolog"
)

type Config struct {
	// Store resolves request paths to blobs.
	Store store.Provider
	// Logger to use. A console logger is used if nil.
	Logger *zerolog.Logger
	// Disposition sets the Content-Disposition type ("attachment" or
	// "inline") to send with each blob. Leave empty to omit the header.
	Disposition string
}

type AlwaysServe struct {
	store       store.Provider
	log         zerolog.Logger
	disposition string
}

// CreateServer initializes the always-serve instance.
func CreateServer(config Config) *AlwaysServe {
	// use console logger if not specified in config
	var logger zerolog.Logger
	if config.Logger == nil {
		logger = zerolog.New(zerolog.NewConsoleWriter())
	} else {
		logger = *config.Logger
	}

	return &AlwaysServe{
		store:       config.Store,
		log:         logger,
		disposition: config.Disposition,
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *AlwaysServe) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	blob, err := s.store.Open(r.URL.Path)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		s.log.Error().Err(err).Str("path", r.URL.Path).Msg("Could not open blob")
		http.Error(w, "Could not open file", http.StatusInternalServerError)
		return
	}
	defer blob.Close()

	resource := rfc9110.Resource{
		Length:       blob.Size(),
		ETag:         etagFor(blob.ModTime(), blob.Size()),
		LastModified: blob.ModTime(),
	}
	plan := rfc9110.PlanRequest(
		r.Header.Get("Range"),
		r.Header.Get("If-Range"),
		resource,
		contentTypeFor(r.URL.Path),
	)

	header := w.Header()
	for name, values := range plan.Header {
		for _, value := range values {
			header.Add(name, value)
		}
	}
	if plan.StatusCode != http.StatusRequestedRangeNotSatisfiable {
		header.Set("Last-Modified", resource.LastModified.UTC().Format(http.TimeFormat))
		header.Set("Etag", resource.ETag)
		if s.disposition != "" {
			header.Set("Content-Disposition", contentDisposition(s.disposition, path.Base(r.URL.Path)))
		}
	}
	w.WriteHeader(plan.StatusCode)

	var written int64
	if r.Method != http.MethodHead {
		written, err = writePlan(w, plan, blob)
		if err != nil {
			// most likely the client went away mid-stream
			s.log.Error().Err(err).Msg("Could not write response body to client")
		}
	}
	s.logRequest(r, plan.StatusCode, written)
}

func (s *AlwaysServe) logRequest(r *http.Request, status int, written int64) {
	s.log.Debug().
		Str("method", r.Method).
		Str("url", r.URL.String()).
		Str("sourceIp", getRequestSourceIp(r)).
		Int("status", status).
		Int64("bytes", written).
		Msg("Sending response to client")
}
