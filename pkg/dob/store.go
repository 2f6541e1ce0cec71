package dob

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	log "github.com/agetick/agetick/pkg/logger"
)

// DefaultFileName is the 8.3-friendly name of the persisted record.
const DefaultFileName = "lastdob.txt"

// DefaultPath resolves the default record location under the XDG data
// directory, falling back to the current directory if XDG resolution fails.
func DefaultPath() string {
	path, err := xdg.DataFile(filepath.Join("agetick", DefaultFileName))
	if err != nil {
		log.Debug("falling back to working directory for data file", "error", err)
		return DefaultFileName
	}
	return path
}

// Store loads and saves the single persisted birth record.
type Store struct {
	path string
}

// NewStore creates a store for the given file path. An empty path uses
// DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// Path returns the file path backing the store.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored record, or ok=false if the file is missing or its
// content cannot be parsed. A corrupt file is treated the same as a missing
// one; it only serves as a default for the prompt.
func (s *Store) Load() (Record, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Debug("could not read birth record", "path", s.path, "error", err)
		}
		return Record{}, false
	}

	r, err := Parse(string(data))
	if err != nil {
		log.Debug("ignoring corrupt birth record", "path", s.path, "error", err)
		return Record{}, false
	}
	return r, true
}

// Save writes the record in the canonical format, creating parent directories
// as needed. Failures are logged and returned but are not fatal to the caller.
func (s *Store) Save(r Record) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Warn("could not create data directory", "path", dir, "error", err)
			return err
		}
	}
	if err := os.WriteFile(s.path, []byte(r.String()), 0o644); err != nil {
		log.Warn("could not save birth record", "path", s.path, "error", err)
		return err
	}
	return nil
}
