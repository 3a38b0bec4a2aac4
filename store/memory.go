package store

import (
	"bytes"
	"fmt"
	"sync"
	"time"
)

type memEntry struct {
	modTime time.Time
	bytes   []byte
}

// Mem is an in-memory blob store, mainly useful for testing.
type Mem struct {
	mutex *sync.RWMutex
	db    map[string]memEntry
}

func NewMem() Mem {
	return Mem{
		mutex: &sync.RWMutex{},
		db:    make(map[string]memEntry),
	}
}

func (m Mem) Open(path string) (Blob, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	entry, ok := m.db[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return memBlob{
		Reader:  bytes.NewReader(entry.bytes),
		modTime: entry.modTime,
	}, nil
}

func (m Mem) Put(path string, modTime time.Time, data []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.db[path] = memEntry{modTime, data}
	return nil
}

func (m Mem) Has(path string) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	_, ok := m.db[path]
	return ok
}

func (m Mem) Purge(path string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.db, path)
}

type memBlob struct {
	*bytes.Reader
	modTime time.Time
}

func (b memBlob) Size() int64 {
	return b.Reader.Size()
}

func (b memBlob) ModTime() time.Time {
	return b.modTime
}

func (b memBlob) Close() error {
	return nil
}
