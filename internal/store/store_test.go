package store

import (
	"errors"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(NewMemFS(), "/notes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestSaveLoad(t *testing.T) {
	s := newTestStore(t)
	id := s.NewID()
	data := []byte{'h', 0, 'i', 3}

	if err := s.Save(id, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := s.Load(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("expected %v, got %v", data, got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	id := s.NewID()

	if err := s.Save(id, []byte{'a', 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Save(id, []byte{'b', 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := s.Load(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string([]byte{'b', 0}) {
		t.Errorf("expected overwritten content, got %v", got)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	fsys := NewMemFS()
	s, err := New(fsys, "/notes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := s.NewID()
	if err := s.Save(id, []byte{'x', 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fsys.Exists("/notes/" + id + Extension + ".tmp") {
		t.Error("expected temp file to be renamed away")
	}
}

func TestLoadMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Load(s.NewID())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestInvalidID(t *testing.T) {
	s := newTestStore(t)
	for _, id := range []string{"", "not-a-uuid", "../../etc/passwd"} {
		if _, err := s.Load(id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("Load(%q): expected ErrInvalidID, got %v", id, err)
		}
		if err := s.Save(id, nil); !errors.Is(err, ErrInvalidID) {
			t.Errorf("Save(%q): expected ErrInvalidID, got %v", id, err)
		}
		if err := s.Delete(id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("Delete(%q): expected ErrInvalidID, got %v", id, err)
		}
		if s.Exists(id) {
			t.Errorf("Exists(%q): expected false", id)
		}
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	id := s.NewID()
	if err := s.Save(id, []byte{'x', 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Delete(id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Exists(id) {
		t.Error("expected note gone after delete")
	}
	if err := s.Delete(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	fsys := NewMemFS()
	s, err := New(fsys, "/notes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := map[string]bool{}
	for i := 0; i < 3; i++ {
		id := s.NewID()
		ids[id] = true
		if err := s.Save(id, []byte{'x', 0}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// Non-note files and foreign names are ignored.
	if err := fsys.WriteFile("/notes/readme.txt", []byte("hi"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := fsys.WriteFile("/notes/junk.note", []byte("hi"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notes, err := s.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(notes))
	}
	for _, n := range notes {
		if !ids[n.ID] {
			t.Errorf("unexpected note id %q", n.ID)
		}
		if n.Size != 2 {
			t.Errorf("expected size 2, got %d", n.Size)
		}
	}
}

func TestListEmpty(t *testing.T) {
	s := newTestStore(t)
	notes, err := s.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("expected no notes, got %d", len(notes))
	}
}

func TestOSFSRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := New(NewOSFS(), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id := s.NewID()
	if err := s.Save(id, []byte{'h', 2, 'i', 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := s.Load(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string([]byte{'h', 2, 'i', 0}) {
		t.Errorf("unexpected content %v", got)
	}

	notes, err := s.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != id {
		t.Errorf("expected single note %s, got %+v", id, notes)
	}

	if err := s.Delete(id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
