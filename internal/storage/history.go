package storage

import (
	"time"

	"github.com/google/uuid"
)

// SearchEntry is one submitted search.
type SearchEntry struct {
	ID           string
	Query        string
	TotalMatches int
	CreatedAt    time.Time
}

// UploadEntry is one attempted upload.
type UploadEntry struct {
	ID        string
	Path      string
	Title     string
	Succeeded bool
	Error     string
	CreatedAt time.Time
}

// AddSearch records a submitted search query. Only explicit submissions
// are recorded, never search-as-you-type intermediate states.
func (db *DB) AddSearch(query string, totalMatches int) error {
	_, err := db.Exec(`
		INSERT INTO search_history (id, query, total_matches, created_at)
		VALUES (?, ?, ?, ?)
	`, uuid.New().String(), query, totalMatches, time.Now().Unix())
	return err
}

// RecentSearches returns the newest entries, most recent first.
func (db *DB) RecentSearches(limit int) ([]SearchEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT id, query, total_matches, created_at
		FROM search_history ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []SearchEntry
	for rows.Next() {
		var e SearchEntry
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.Query, &e.TotalMatches, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt = time.Unix(createdAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LogUpload records an upload attempt and its outcome.
func (db *DB) LogUpload(path, title string, succeeded bool, errMsg string) error {
	ok := 0
	if succeeded {
		ok = 1
	}
	_, err := db.Exec(`
		INSERT INTO upload_log (id, path, title, succeeded, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), path, title, ok, errMsg, time.Now().Unix())
	return err
}

// RecentUploads returns the newest upload attempts, most recent first.
func (db *DB) RecentUploads(limit int) ([]UploadEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT id, path, title, succeeded, error, created_at
		FROM upload_log ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []UploadEntry
	for rows.Next() {
		var e UploadEntry
		var ok int
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.Path, &e.Title, &ok, &e.Error, &createdAt); err != nil {
			return nil, err
		}
		e.Succeeded = ok == 1
		e.CreatedAt = time.Unix(createdAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearHistory removes all recorded searches and uploads.
func (db *DB) ClearHistory() error {
	if _, err := db.Exec(`DELETE FROM search_history`); err != nil {
		return err
	}
	_, err := db.Exec(`DELETE FROM upload_log`)
	return err
}
