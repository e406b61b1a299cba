package kv

import "testing"

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()

	_, ok, err := store.Get("ns")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("ok = true before Set, want false")
	}

	if err := store.Set("ns", "value"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := store.Get("ns")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || value != "value" {
		t.Errorf("Get = (%q, %v), want (value, true)", value, ok)
	}

	if err := store.Remove("ns"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	_, ok, _ = store.Get("ns")
	if ok {
		t.Error("ok = true after Remove, want false")
	}
}
