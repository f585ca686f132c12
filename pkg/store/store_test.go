package store

import (
	"os"
	"path/filepath"
	"testing"
)

type record struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	in := []record{{ID: "a", Value: 1}, {ID: "b", Value: 2}}
	if err := st.SaveCollection("things", in); err != nil {
		t.Fatalf("SaveCollection: %v", err)
	}
	if !st.Exists("things") {
		t.Error("Exists = false after save")
	}

	var out []record
	if err := st.LoadCollection("things", &out); err != nil {
		t.Fatalf("LoadCollection: %v", err)
	}
	if len(out) != 2 || out[0].ID != "a" || out[1].Value != 2 {
		t.Errorf("loaded %+v, want %+v", out, in)
	}
}

func TestFileStoreMissingLoadsEmpty(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	var out []record
	if err := st.LoadCollection("never_written", &out); err != nil {
		t.Fatalf("LoadCollection: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("loaded %+v, want empty", out)
	}
	if st.Exists("never_written") {
		t.Error("Exists = true for missing collection")
	}
}

func TestFileStoreCorruptLoadsEmpty(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	var out []record
	if err := st.LoadCollection("broken", &out); err != nil {
		t.Fatalf("LoadCollection should recover, got %v", err)
	}
	if len(out) != 0 {
		t.Errorf("loaded %+v, want empty", out)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := st.SaveCollection("things", []record{{ID: "a"}}); err != nil {
		t.Fatalf("SaveCollection: %v", err)
	}
	if err := st.SaveCollection("things", []record{{ID: "b"}, {ID: "c"}}); err != nil {
		t.Fatalf("SaveCollection: %v", err)
	}

	var out []record
	if err := st.LoadCollection("things", &out); err != nil {
		t.Fatalf("LoadCollection: %v", err)
	}
	if len(out) != 2 || out[0].ID != "b" {
		t.Errorf("loaded %+v, want full overwrite", out)
	}
}

func TestFileStoreSaveDocument(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	doc := record{ID: "session", Value: 42}
	if err := st.SaveDocument("session_x", doc); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(st.Dir(), "session_x.json"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(data) == 0 {
		t.Error("document file is empty")
	}
}

func TestMemStore(t *testing.T) {
	st := NewMemStore()

	var out []record
	if err := st.LoadCollection("missing", &out); err != nil {
		t.Fatalf("LoadCollection: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("loaded %+v, want empty", out)
	}

	if err := st.SaveCollection("things", []record{{ID: "a"}}); err != nil {
		t.Fatalf("SaveCollection: %v", err)
	}
	if err := st.LoadCollection("things", &out); err != nil {
		t.Fatalf("LoadCollection: %v", err)
	}
	if len(out) != 1 || out[0].ID != "a" {
		t.Errorf("loaded %+v, want [{a 0}]", out)
	}
}
