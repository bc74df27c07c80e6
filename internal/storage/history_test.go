package storage

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSearchHistory(t *testing.T) {
	db := openTestDB(t)

	for _, q := range []string{"safety", "invoice 2024", "tender"} {
		if err := db.AddSearch(q, 5); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := db.RecentSearches(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Query == "" || e.ID == "" {
			t.Errorf("Incomplete entry: %+v", e)
		}
		if e.TotalMatches != 5 {
			t.Errorf("Expected total 5, got %d", e.TotalMatches)
		}
	}
}

func TestUploadLog(t *testing.T) {
	db := openTestDB(t)

	if err := db.LogUpload("/tmp/report.pdf", "Q3 Report", true, ""); err != nil {
		t.Fatal(err)
	}
	if err := db.LogUpload("/tmp/broken.docx", "", false, "Unsupported file type"); err != nil {
		t.Fatal(err)
	}

	entries, err := db.RecentUploads(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	var okCount int
	for _, e := range entries {
		if e.Succeeded {
			okCount++
			if e.Title != "Q3 Report" {
				t.Errorf("Expected title on success, got %q", e.Title)
			}
		} else if e.Error == "" {
			t.Error("Expected error message on failure")
		}
	}
	if okCount != 1 {
		t.Errorf("Expected exactly one success, got %d", okCount)
	}

	if err := db.ClearHistory(); err != nil {
		t.Fatal(err)
	}
	entries, err = db.RecentUploads(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty log after clear, got %d", len(entries))
	}
}
