package store

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/glebarez/go-sqlite"
)

// SQLite stores blobs in a sqlite database, so that a whole site can be
// served out of a single file.
type SQLite struct {
	db         *sql.DB
	writeMutex *sync.Mutex
}

// NewSQLite creates a new blob store with the given filename as the db.
// If the file name is empty, a new in-memory db is opened.
func NewSQLite(filename string) SQLite {
	if filename == "" {
		filename = "file::memory:?cache=shared"
	}
	db, err := sql.Open("sqlite", filename)
	if err != nil {
		panic(err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS blobs (
		path TEXT PRIMARY KEY,
		mod_time INTEGER,
		bytes BLOB
	)`)
	if err != nil {
		panic(err)
	}
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		panic(err)
	}
	return SQLite{
		db:         db,
		writeMutex: &sync.Mutex{},
	}
}

func (s SQLite) Open(path string) (Blob, error) {
	var modTime int64
	var data []byte
	err := s.db.QueryRow("SELECT mod_time, bytes FROM blobs WHERE path = ?", path).Scan(&modTime, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	return memBlob{
		Reader:  bytes.NewReader(data),
		modTime: time.Unix(modTime, 0),
	}, nil
}

func (s SQLite) Put(path string, modTime time.Time, data []byte) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	_, err := s.db.Exec("INSERT OR REPLACE INTO blobs (path, mod_time, bytes) VALUES (?, ?, ?)",
		path, modTime.Unix(), data)
	return err
}

func (s SQLite) Has(path string) bool {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM blobs WHERE path = ?", path).Scan(&one)
	return err == nil
}

func (s SQLite) Purge(path string) {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	_, err := s.db.Exec("DELETE FROM blobs WHERE path = ?", path)
	if err != nil {
		panic(err)
	}
}
