// Package jsonfile stores the contact list as a single JSON document.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"addressbook/internal/core"
	"addressbook/internal/storage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type document struct {
	Contacts []storage.Record `json:"contacts"`
}

// Store reads and writes one JSON file. Writes go through a temp file and a
// rename so a crash never leaves a half-written document behind.
type Store struct {
	path string
	mu   sync.Mutex
}

var _ storage.ContactStore = (*Store)(nil)

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load returns no contacts when the file does not exist yet.
func (s *Store) Load(_ context.Context) ([]core.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	out := make([]core.Contact, 0, len(doc.Contacts))
	for _, rec := range doc.Contacts {
		c, err := rec.Contact()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", s.path, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *Store) Save(_ context.Context, contacts []core.Contact) error {
	doc := document{Contacts: make([]storage.Record, 0, len(contacts))}
	for _, c := range contacts {
		doc.Contacts = append(doc.Contacts, storage.RecordFromContact(c))
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode contacts: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := writeFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
