// Package store resolves request paths to readable blobs.
package store

import (
	"errors"
	"io"
	"time"
)

// ErrNotFound is returned by Open when no blob exists under a path.
var ErrNotFound = errors.New("blob not found")

// Provider is an interface for a blob source. It maps request paths to
// blobs that can be read at arbitrary offsets, which is what range serving
// needs.
//
// Implementations must be thread-safe!
type Provider interface {
	// Open returns the blob stored under the given path.
	// It returns an error wrapping ErrNotFound if there is none.
	// The caller must close the returned blob.
	Open(path string) (Blob, error)
	// Put stores the given bytes under the given path,
	// replacing any previous blob.
	Put(path string, modTime time.Time, data []byte) error
	// Has checks if the specified path exists in the store.
	Has(path string) bool
	// Purge removes the blob stored under the given path.
	// It is a utility method that is not used by the file server.
	Purge(path string)
}

// Blob is an open blob. ReadAt must support concurrent use so that a
// single blob can back parallel range reads.
type Blob interface {
	io.ReaderAt
	io.Closer
	// Size returns the blob length in bytes.
	Size() int64
	// ModTime returns the last modification time of the blob.
	ModTime() time.Time
}
