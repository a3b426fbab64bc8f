package store

import (
	"context"
	"path/filepath"
	"testing"
)

// TestSQLiteGetAbsent verifies a never-written key reads back as absent, not
// as an error.
func TestSQLiteGetAbsent(t *testing.T) {
	s := openTest(t)

	_, ok, err := s.Get(context.Background(), KeyPlan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("absent key reported present")
	}
}

// TestSQLiteSetGet verifies a write reads back verbatim.
func TestSQLiteSetGet(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	if err := s.Set(ctx, KeyUserID, "device-123"); err != nil {
		t.Fatal(err)
	}
	got, ok, err := s.Get(ctx, KeyUserID)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != "device-123" {
		t.Errorf("Get = %q, %v; want device-123, true", got, ok)
	}
}

// TestSQLiteOverwrite verifies Set replaces an existing value.
func TestSQLiteOverwrite(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	if err := s.Set(ctx, KeyPlan, "v1"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, KeyPlan, "v2"); err != nil {
		t.Fatal(err)
	}
	got, _, err := s.Get(ctx, KeyPlan)
	if err != nil {
		t.Fatal(err)
	}
	if got != "v2" {
		t.Errorf("Get = %q, want v2", got)
	}
}

// TestSQLitePersistsAcrossOpens verifies values survive a close/reopen
// cycle, i.e. the file actually holds the data.
func TestSQLitePersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := OpenSQLite(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, KeyPlan, `{"Monday":{}}`); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := OpenSQLite(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	got, ok, err := s2.Get(ctx, KeyPlan)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != `{"Monday":{}}` {
		t.Errorf("Get after reopen = %q, %v", got, ok)
	}
}

// TestSQLiteCreatesStateDir verifies a nested, nonexistent state directory
// is created on open.
func TestSQLiteCreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "state")
	s, err := OpenSQLite(dir)
	if err != nil {
		t.Fatalf("OpenSQLite(%s): %v", dir, err)
	}
	s.Close()
}

func openTest(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
