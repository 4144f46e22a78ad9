package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

const bookmarksTableSQL = `
CREATE TABLE IF NOT EXISTS bookmarks (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	parent_id  INTEGER,
	title      TEXT NOT NULL DEFAULT '',
	url        TEXT,
	position   INTEGER NOT NULL DEFAULT 0,
	date_added INTEGER NOT NULL DEFAULT 0
)`

// OpenTestDB opens a SQLite database at path with the bookmarks table in
// place. A single connection keeps ":memory:" databases coherent.
func OpenTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(bookmarksTableSQL); err != nil {
		db.Close()
		t.Fatalf("Failed to create bookmarks table: %v", err)
	}
	return db
}

// InsertBookmark inserts a raw row. parentID and url may be nil.
func InsertBookmark(t *testing.T, db *sql.DB, id int, parentID any, title string, url any, position int) {
	t.Helper()
	insertSQL := "INSERT INTO bookmarks (id, parent_id, title, url, position, date_added) VALUES (?, ?, ?, ?, ?, ?)"
	if _, err := db.Exec(insertSQL, id, parentID, title, url, position, 1700000000000); err != nil {
		t.Fatalf("Failed to insert bookmark %d: %v", id, err)
	}
}
