package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestReadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	if store.Read() != nil {
		t.Error("a missing file reads as no session")
	}
}

func TestReadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"accountId": "abc`), 0600); err != nil {
		t.Fatal(err)
	}
	if NewStore(path).Read() != nil {
		t.Error("a corrupt file reads as no session")
	}
}

func TestWriteRead(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "session.json"))

	record := &Record{AccountID: "abcd1234", DisplayName: "Steve", UpdatedAt: time.Now()}
	if err := store.Write(record); err != nil {
		t.Fatal(err)
	}

	got := store.Read()
	if got == nil || got.AccountID != "abcd1234" || got.DisplayName != "Steve" {
		t.Errorf("got %+v back", got)
	}

	// no temp files may stay behind
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.Contains(e.Name(), "session.json.") {
			t.Errorf("leftover temp file: %s", e.Name())
		}
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Delete(); err != nil {
		t.Errorf("deleting nothing is fine: %s", err)
	}

	if err := store.Write(&Record{AccountID: "a", DisplayName: "b"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(); err != nil {
		t.Errorf("second delete should be fine: %s", err)
	}
	if store.Read() != nil {
		t.Error("record still readable after delete")
	}
}

func TestRecordValid(t *testing.T) {
	if !(&Record{AccountID: "a", DisplayName: "b"}).Valid() {
		t.Error("complete record should be valid")
	}
	if (&Record{AccountID: "a"}).Valid() {
		t.Error("record without a name is not valid")
	}
	if (&Record{DisplayName: "b"}).Valid() {
		t.Error("record without an id is not valid")
	}
}
