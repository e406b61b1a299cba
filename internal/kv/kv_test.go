package kv

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit_CreatesDatabaseAndDirs(t *testing.T) {
	tmpDir := t.TempDir()
	baseDir := filepath.Join(tmpDir, "jobtrack")

	store, err := Init(baseDir)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(baseDir, "jobtrack.db")); err != nil {
		t.Errorf("database file should exist: %v", err)
	}
	if _, err := os.Stat(filepath.Join(baseDir, "exports")); err != nil {
		t.Errorf("exports directory should exist: %v", err)
	}
}

func TestSQLiteStore_GetAbsent(t *testing.T) {
	store := newTestStore(t)

	value, ok, err := store.Get("missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("ok = true for absent namespace, want false")
	}
	if value != "" {
		t.Errorf("value = %q, want empty", value)
	}
}

func TestSQLiteStore_SetGet(t *testing.T) {
	store := newTestStore(t)

	if err := store.Set("ns", `{"hello":"world"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := store.Get("ns")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("ok = false after Set, want true")
	}
	if value != `{"hello":"world"}` {
		t.Errorf("value = %q, want %q", value, `{"hello":"world"}`)
	}
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	store := newTestStore(t)

	if err := store.Set("ns", "one"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set("ns", "two"); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	value, _, err := store.Get("ns")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "two" {
		t.Errorf("value = %q, want %q", value, "two")
	}
}

func TestSQLiteStore_Remove(t *testing.T) {
	store := newTestStore(t)

	if err := store.Set("ns", "value"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Remove("ns"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	_, ok, err := store.Get("ns")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("ok = true after Remove, want false")
	}
}

func TestSQLiteStore_RemoveAbsentIsNoOp(t *testing.T) {
	store := newTestStore(t)

	if err := store.Remove("never-set"); err != nil {
		t.Errorf("Remove of absent namespace should succeed: %v", err)
	}
}

func TestSQLiteStore_NamespacesAreIndependent(t *testing.T) {
	store := newTestStore(t)

	if err := store.Set("a", "alpha"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set("b", "beta"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Remove("a"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	value, ok, err := store.Get("b")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || value != "beta" {
		t.Errorf("Get(b) = (%q, %v), want (beta, true)", value, ok)
	}
}

func TestInit_ReopenKeepsData(t *testing.T) {
	baseDir := t.TempDir()

	store, err := Init(baseDir)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Set("ns", "persisted"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	store.Close()

	reopened, err := Init(baseDir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get("ns")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || value != "persisted" {
		t.Errorf("Get after reopen = (%q, %v), want (persisted, true)", value, ok)
	}
}

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
