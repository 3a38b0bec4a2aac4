package store

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"
)

// FS serves blobs from a directory on the local filesystem.
type FS struct {
	root string
}

func NewFS(root string) FS {
	return FS{root: root}
}

// filename maps a request path onto the root directory. The path is
// cleaned rooted at "/" first so that ".." segments cannot escape.
func (f FS) filename(p string) string {
	return filepath.Join(f.root, filepath.FromSlash(path.Clean("/"+p)))
}

func (f FS) Open(p string) (Blob, error) {
	file, err := os.Open(f.filename(p))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if !info.Mode().IsRegular() {
		file.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	return fileBlob{File: file, info: info}, nil
}

func (f FS) Put(p string, modTime time.Time, data []byte) error {
	filename := f.filename(p)
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return err
	}
	return os.Chtimes(filename, modTime, modTime)
}

func (f FS) Has(p string) bool {
	info, err := os.Stat(f.filename(p))
	return err == nil && info.Mode().IsRegular()
}

func (f FS) Purge(p string) {
	os.Remove(f.filename(p))
}

type fileBlob struct {
	*os.File
	info os.FileInfo
}

func (b fileBlob) Size() int64 {
	return b.info.Size()
}

func (b fileBlob) ModTime() time.Time {
	return b.info.ModTime()
}
