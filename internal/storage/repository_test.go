package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"addressbook/internal/core"
	"addressbook/internal/storage"
	"addressbook/internal/testutil"
)

func newRepo(t *testing.T) *storage.SQLiteRepository {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "nested", "addressbook.db"))
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty store, got %d contacts", len(got))
	}

	want := testutil.TypicalContacts()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = repo.Load(ctx)
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

func TestSQLiteRepositorySaveReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	contacts := testutil.TypicalContacts()
	if err := repo.Save(ctx, contacts); err != nil {
		t.Fatalf("save: %v", err)
	}

	alice := contacts[0].WithMonthsPaid(contacts[0].MonthsPaid.Union(core.NewMonthSet("2024-02")))
	next := []core.Contact{contacts[2], alice}
	if err := repo.Save(ctx, next); err != nil {
		t.Fatalf("save again: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Carl Kurz" || !got[1].Equal(alice) {
		t.Fatalf("unexpected snapshot: %v", got)
	}

	n, err := repo.CountPaid(ctx, "[2024-02]")
	if err != nil {
		t.Fatalf("count paid: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 contact paid for 2024-02, got %d", n)
	}
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.db")
	v1, err := storage.RunMigrations(path)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	v2, err := storage.RunMigrations(path)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if v1 != 1 || v2 != 1 {
		t.Fatalf("expected schema version 1, got %d and %d", v1, v2)
	}
}

func TestRecordRejectsCorruptData(t *testing.T) {
	rec := storage.RecordFromContact(testutil.TypicalContacts()[0])
	rec.MonthsPaid = append(rec.MonthsPaid, "2024-13")
	if _, err := rec.Contact(); err == nil {
		t.Fatal("expected invalid month to be rejected")
	}

	rec = storage.RecordFromContact(testutil.TypicalContacts()[0])
	rec.ID = "not-a-uuid"
	if _, err := rec.Contact(); err == nil {
		t.Fatal("expected invalid id to be rejected")
	}
}
