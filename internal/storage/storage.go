package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mazim-lab/conference-tracker/internal/conference"
)

// Store persists conference records as a single JSON file.
type Store struct {
	path string
}

// New creates a store backed by the given file path. A leading ~/ is expanded
// to the user's home directory.
func New(path string) (*Store, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}
	return &Store{path: path}, nil
}

// Path returns the resolved store file path.
func (s *Store) Path() string {
	return s.path
}

// Init creates an empty store file unless one already exists. An existing
// store, whatever its contents, is left untouched.
func (s *Store) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking store: %w", err)
	}
	return s.Save([]*conference.Record{})
}

// Load reads the full store. A missing, unreadable, or corrupt file is an
// error, reported before the caller mutates anything; Init exists for first
// runs. Records written before the confidence tag existed get one inferred
// from their start date.
func (s *Store) Load() ([]*conference.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("store %s does not exist (use --init to create it)", s.path)
		}
		return nil, fmt.Errorf("reading store: %w", err)
	}

	var records []*conference.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing store %s: %w", s.path, err)
	}

	for _, r := range records {
		if r.DateConfidence == "" && r.StartDate != "" {
			r.DateConfidence = conference.InferConfidence(r.StartDate)
		}
	}
	return records, nil
}

// Save writes the full store atomically: contents go to a temporary file in
// the same directory, which is then renamed over the previous one. The prior
// file stays intact until the new one is complete.
func (s *Store) Save(records []*conference.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp store: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp store: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting store permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing store: %w", err)
	}
	return nil
}
