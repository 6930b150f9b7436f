package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"addressbook/internal/storage/jsonfile"
	"addressbook/internal/testutil"
)

func TestLoadMissingFile(t *testing.T) {
	s := jsonfile.New(filepath.Join(t.TempDir(), "absent.json"))
	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no contacts, got %d", len(got))
	}
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "data", "addressbook.json")
	s := jsonfile.New(path)

	want := testutil.TypicalContacts()
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !strings.Contains(string(b), `"monthsPaid": [`) || !strings.Contains(string(b), `"2024-01"`) {
		t.Fatalf("unexpected document:\n%s", b)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp files to be cleaned up, found %d entries", len(entries))
	}

	got, err := jsonfile.New(path).Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d contacts, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("contact %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLoadRejectsMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"contacts": [{"id": "x"}]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := jsonfile.New(path).Load(context.Background()); err == nil {
		t.Fatal("expected error for invalid contact")
	}

	if err := os.WriteFile(path, []byte(`{not json`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := jsonfile.New(path).Load(context.Background()); err == nil {
		t.Fatal("expected error for malformed json")
	}
}
