package boltoffset

import (
	"path/filepath"
	"testing"
)

func TestStore_SaveAndLoadRoundTrips(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "offsets.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	got, err := s.LoadOffset(123)
	if err != nil || got != 0 {
		t.Fatalf("LoadOffset on unseen bot = (%d, %v), want (0, nil)", got, err)
	}

	if err := s.SaveOffset(123, 456); err != nil {
		t.Fatalf("SaveOffset: %v", err)
	}
	got, err = s.LoadOffset(123)
	if err != nil || got != 456 {
		t.Fatalf("LoadOffset after save = (%d, %v), want (456, nil)", got, err)
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "offsets.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s1.SaveOffset(9, 42); err != nil {
		t.Fatalf("SaveOffset: %v", err)
	}
	if err := s1.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen Open: %v", err)
	}
	defer s2.Close()
	got, err := s2.LoadOffset(9)
	if err != nil || got != 42 {
		t.Fatalf("LoadOffset after reopen = (%d, %v), want (42, nil)", got, err)
	}
}
