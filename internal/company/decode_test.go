package company

import (
	"encoding/json"
	"testing"
)

func TestDecode_FillsMissingChildSequences(t *testing.T) {
	// Record shape from before notes/documents/todos existed.
	raw := json.RawMessage(`{
		"id": "01ABC",
		"name": "旧レコード株式会社",
		"industry": "メーカー",
		"priority": "A",
		"interviewDate": "",
		"memo": "",
		"status": "書類選考",
		"createdAt": "2026-01-15T09:00:00+09:00"
	}`)

	c, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if c.Notes == nil {
		t.Error("Notes should be filled with an empty slice")
	}
	if c.Documents == nil {
		t.Error("Documents should be filled with an empty slice")
	}
	if c.Todos == nil {
		t.Error("Todos should be filled with an empty slice")
	}
	if c.Name != "旧レコード株式会社" {
		t.Errorf("Name = %q, want %q", c.Name, "旧レコード株式会社")
	}
}

func TestDecode_PreservesExistingChildren(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "01ABC",
		"name": "会社",
		"notes": [{"id": "n1", "title": "面接メモ", "content": "良い雰囲気", "createdAt": "2026-02-01T10:00:00+09:00"}],
		"documents": [],
		"todos": [{"id": "t1", "text": "お礼メール", "completed": true}]
	}`)

	c, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(c.Notes) != 1 || c.Notes[0].Title != "面接メモ" {
		t.Errorf("Notes = %+v, want one note titled 面接メモ", c.Notes)
	}
	if len(c.Todos) != 1 || !c.Todos[0].Completed {
		t.Errorf("Todos = %+v, want one completed todo", c.Todos)
	}
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode(json.RawMessage(`{"id": 42}`))
	if err == nil {
		t.Error("Decode should fail on structurally invalid record")
	}
}

func TestDecodeAll_PreservesOrder(t *testing.T) {
	data := []byte(`[
		{"id": "01A", "name": "first"},
		{"id": "01B", "name": "second"},
		{"id": "01C", "name": "third"}
	]`)

	companies, err := DecodeAll(data)
	if err != nil {
		t.Fatalf("DecodeAll failed: %v", err)
	}

	if len(companies) != 3 {
		t.Fatalf("len = %d, want 3", len(companies))
	}
	for i, want := range []string{"first", "second", "third"} {
		if companies[i].Name != want {
			t.Errorf("companies[%d].Name = %q, want %q", i, companies[i].Name, want)
		}
	}
}

func TestDecodeAll_NotAnArray(t *testing.T) {
	_, err := DecodeAll([]byte(`{"id": "01A"}`))
	if err == nil {
		t.Error("DecodeAll should fail on non-array input")
	}
}
