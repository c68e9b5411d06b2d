package state

import (
	"path/filepath"
	"testing"
)

// setupManager opens a manager on a throwaway database file.
func setupManager(t *testing.T) *Manager {
	t.Helper()

	m, err := openPath(filepath.Join(t.TempDir(), "ambience.db"))
	if err != nil {
		t.Fatalf("failed to open state db: %v", err)
	}
	t.Cleanup(func() { m.Close() })

	return m
}

func TestGetLastSession_Empty(t *testing.T) {
	m := setupManager(t)

	path, err := m.GetLastSession()
	if err != nil {
		t.Fatalf("GetLastSession failed: %v", err)
	}
	if path != "" {
		t.Errorf("expected empty path on fresh db, got %q", path)
	}
}

func TestSaveAndGetLastSession(t *testing.T) {
	m := setupManager(t)

	if err := m.SaveLastSession("/home/me/sessions/forest.json"); err != nil {
		t.Fatalf("SaveLastSession failed: %v", err)
	}

	path, err := m.GetLastSession()
	if err != nil {
		t.Fatalf("GetLastSession failed: %v", err)
	}
	if path != "/home/me/sessions/forest.json" {
		t.Errorf("path = %q, want %q", path, "/home/me/sessions/forest.json")
	}

	// Saving again overwrites
	if err := m.SaveLastSession("/tmp/other.json"); err != nil {
		t.Fatalf("SaveLastSession failed: %v", err)
	}
	path, err = m.GetLastSession()
	if err != nil {
		t.Fatalf("GetLastSession failed: %v", err)
	}
	if path != "/tmp/other.json" {
		t.Errorf("path = %q, want %q", path, "/tmp/other.json")
	}
}

func TestGetMasterVolume_Empty(t *testing.T) {
	m := setupManager(t)

	vol, err := m.GetMasterVolume()
	if err != nil {
		t.Fatalf("GetMasterVolume failed: %v", err)
	}
	if vol != nil {
		t.Errorf("expected nil volume on fresh db, got %d", *vol)
	}
}

func TestSaveAndGetMasterVolume(t *testing.T) {
	m := setupManager(t)

	if err := m.SaveMasterVolume(65); err != nil {
		t.Fatalf("SaveMasterVolume failed: %v", err)
	}

	vol, err := m.GetMasterVolume()
	if err != nil {
		t.Fatalf("GetMasterVolume failed: %v", err)
	}
	if vol == nil || *vol != 65 {
		t.Errorf("volume = %v, want 65", vol)
	}
}

func TestSaveSnapshot(t *testing.T) {
	m := setupManager(t)

	vol := uint(55)
	if err := m.SaveSnapshot("/tmp/evening.json", &vol); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	path, err := m.GetLastSession()
	if err != nil {
		t.Fatalf("GetLastSession failed: %v", err)
	}
	if path != "/tmp/evening.json" {
		t.Errorf("path = %q, want %q", path, "/tmp/evening.json")
	}
	got, err := m.GetMasterVolume()
	if err != nil {
		t.Fatalf("GetMasterVolume failed: %v", err)
	}
	if got == nil || *got != 55 {
		t.Errorf("volume = %v, want 55", got)
	}
}

func TestSaveSnapshot_NilVolumeKeepsExisting(t *testing.T) {
	m := setupManager(t)

	if err := m.SaveMasterVolume(30); err != nil {
		t.Fatalf("SaveMasterVolume failed: %v", err)
	}
	if err := m.SaveSnapshot("/tmp/evening.json", nil); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	vol, err := m.GetMasterVolume()
	if err != nil {
		t.Fatalf("GetMasterVolume failed: %v", err)
	}
	if vol == nil || *vol != 30 {
		t.Errorf("volume = %v, want 30 (untouched)", vol)
	}
}

func TestVolumeAndSessionShareRow(t *testing.T) {
	m := setupManager(t)

	if err := m.SaveLastSession("/tmp/a.json"); err != nil {
		t.Fatalf("SaveLastSession failed: %v", err)
	}
	if err := m.SaveMasterVolume(40); err != nil {
		t.Fatalf("SaveMasterVolume failed: %v", err)
	}

	path, err := m.GetLastSession()
	if err != nil {
		t.Fatalf("GetLastSession failed: %v", err)
	}
	if path != "/tmp/a.json" {
		t.Errorf("saving the volume clobbered the session path: %q", path)
	}
	vol, err := m.GetMasterVolume()
	if err != nil {
		t.Fatalf("GetMasterVolume failed: %v", err)
	}
	if vol == nil || *vol != 40 {
		t.Errorf("volume = %v, want 40", vol)
	}
}
