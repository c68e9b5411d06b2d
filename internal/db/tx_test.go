package db

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE sounds (id INTEGER PRIMARY KEY, name TEXT, volume INTEGER)`)
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}

	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM sounds`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestWithTx_Success(t *testing.T) {
	db := setupTestDB(t)

	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO sounds (name, volume) VALUES (?, ?)`, "rain", 80); err != nil {
			return err
		}
		_, err := tx.Exec(`INSERT INTO sounds (name, volume) VALUES (?, ?)`, "wind", 60)
		return err
	})

	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}
	if count := countRows(t, db); count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db := setupTestDB(t)

	testErr := errors.New("test error")

	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO sounds (name, volume) VALUES (?, ?)`, "rain", 80); err != nil {
			return err
		}
		return testErr // trigger rollback
	})

	if !errors.Is(err, testErr) {
		t.Fatalf("WithTx should return the error: got %v, want %v", err, testErr)
	}
	// The insert before the error must not survive
	if count := countRows(t, db); count != 0 {
		t.Errorf("count = %d, want 0 (rolled back)", count)
	}
}

func TestNullInt64ToPtr(t *testing.T) {
	if got := NullInt64ToPtr(sql.NullInt64{}); got != nil {
		t.Errorf("invalid NullInt64 should map to nil, got %v", *got)
	}
	got := NullInt64ToPtr(sql.NullInt64{Int64: 42, Valid: true})
	if got == nil || *got != 42 {
		t.Errorf("valid NullInt64 = %v, want 42", got)
	}
}

func TestNullStringValue(t *testing.T) {
	if got := NullStringValue(sql.NullString{}); got != "" {
		t.Errorf("invalid NullString should map to empty, got %q", got)
	}
	if got := NullStringValue(sql.NullString{String: "forest.json", Valid: true}); got != "forest.json" {
		t.Errorf("valid NullString = %q, want %q", got, "forest.json")
	}
}
