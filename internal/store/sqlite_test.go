package store

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpen(t *testing.T) {
	db := openTestDB(t)

	var tableName string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='activations'").Scan(&tableName)
	if err != nil {
		t.Errorf("Activations table was not created: %v", err)
	}
}

func TestOpenInvalidPath(t *testing.T) {
	_, err := Open("/invalid/path/that/cannot/be/created/test.db")
	if err == nil {
		t.Error("Expected error when opening invalid path, got nil")
	}
}

func TestRecordActivation(t *testing.T) {
	db := openTestDB(t)

	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	id, err := db.RecordActivation(ActivationRecord{
		Timestamp: ts,
		Path:      "Deploy application / Debug",
		Kind:      "button",
		Label:     "Debug",
		Parameter: "debug",
		Layout:    "/tmp/layout.yaml",
	})
	if err != nil {
		t.Fatalf("RecordActivation() error = %v", err)
	}

	records, err := db.GetRecentActivations(1)
	if err != nil {
		t.Fatalf("GetRecentActivations() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatal("Saved record not found")
	}
	saved := records[0]
	if saved.ID != id {
		t.Errorf("ID = %d, want %d", saved.ID, id)
	}
	if saved.Path != "Deploy application / Debug" {
		t.Errorf("Path = %q, want %q", saved.Path, "Deploy application / Debug")
	}
	if saved.Parameter != "debug" || saved.Kind != "button" || saved.Label != "Debug" {
		t.Errorf("record = %+v, want Debug button with parameter debug", saved)
	}
	if !saved.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", saved.Timestamp, ts)
	}
}

func TestRecordActivationDefaultsTimestamp(t *testing.T) {
	db := openTestDB(t)

	before := time.Now().Add(-time.Second)
	if _, err := db.RecordActivation(ActivationRecord{Path: "x", Kind: "button", Label: "x"}); err != nil {
		t.Fatalf("RecordActivation() error = %v", err)
	}
	records, err := db.GetRecentActivations(1)
	if err != nil || len(records) != 1 {
		t.Fatalf("GetRecentActivations() = %v, %v", records, err)
	}
	if records[0].Timestamp.Before(before) {
		t.Errorf("Timestamp = %v, want a current time", records[0].Timestamp)
	}
}

func TestGetRecentActivations(t *testing.T) {
	db := openTestDB(t)

	base := time.Now()
	for i := 0; i < 5; i++ {
		_, err := db.RecordActivation(ActivationRecord{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Path:      "p",
			Kind:      "button",
			Label:     string(rune('a' + i)),
		})
		if err != nil {
			t.Fatalf("RecordActivation() error = %v", err)
		}
	}

	records, err := db.GetRecentActivations(3)
	if err != nil {
		t.Fatalf("GetRecentActivations() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	for i, want := range []string{"e", "d", "c"} {
		if records[i].Label != want {
			t.Errorf("records[%d].Label = %q, want %q", i, records[i].Label, want)
		}
	}
}

func TestGetRecentActivationsEmpty(t *testing.T) {
	db := openTestDB(t)

	records, err := db.GetRecentActivations(10)
	if err != nil {
		t.Fatalf("GetRecentActivations() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
}

func TestCountByPath(t *testing.T) {
	db := openTestDB(t)

	for _, p := range []string{"a", "b", "a", "c", "a", "b"} {
		if _, err := db.RecordActivation(ActivationRecord{Path: p, Kind: "button", Label: p}); err != nil {
			t.Fatalf("RecordActivation() error = %v", err)
		}
	}

	counts, err := db.CountByPath(2)
	if err != nil {
		t.Fatalf("CountByPath() error = %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("len(counts) = %d, want 2", len(counts))
	}
	if counts[0].Path != "a" || counts[0].Count != 3 {
		t.Errorf("counts[0] = %+v, want a x3", counts[0])
	}
	if counts[1].Path != "b" || counts[1].Count != 2 {
		t.Errorf("counts[1] = %+v, want b x2", counts[1])
	}
}

func TestDeleteBefore(t *testing.T) {
	db := openTestDB(t)

	now := time.Now()
	old := now.Add(-48 * time.Hour)
	for _, ts := range []time.Time{old, old, now} {
		if _, err := db.RecordActivation(ActivationRecord{Timestamp: ts, Path: "p", Kind: "text", Label: "p"}); err != nil {
			t.Fatalf("RecordActivation() error = %v", err)
		}
	}

	n, err := db.DeleteBefore(now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("DeleteBefore() error = %v", err)
	}
	if n != 2 {
		t.Errorf("DeleteBefore() = %d, want 2", n)
	}

	records, _ := db.GetRecentActivations(10)
	if len(records) != 1 {
		t.Errorf("remaining records = %d, want 1", len(records))
	}
}
