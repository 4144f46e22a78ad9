package internal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const bookmarksSchema = `
CREATE TABLE IF NOT EXISTS bookmarks (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	parent_id  INTEGER REFERENCES bookmarks(id),
	title      TEXT NOT NULL DEFAULT '',
	url        TEXT,
	position   INTEGER NOT NULL DEFAULT 0,
	date_added INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS bookmarks_parent ON bookmarks(parent_id, position);
CREATE INDEX IF NOT EXISTS bookmarks_url ON bookmarks(url);`

// sqliteRootID is the untitled root; its children are the permanent folders
const sqliteRootID = 0

var permanentFolders = []string{"Bookmarks bar", "Other bookmarks", "Mobile bookmarks"}

// OpenDatabase opens (creating if needed) a SQLite bookmark database
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := EnsureSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema creates the bookmarks table and seeds the root folders
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(bookmarksSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM bookmarks").Scan(&count); err != nil {
		return fmt.Errorf("failed to count bookmarks: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UnixMilli()
	if _, err := tx.Exec("INSERT INTO bookmarks (id, parent_id, title, date_added) VALUES (?, NULL, '', ?)", sqliteRootID, now); err != nil {
		return fmt.Errorf("failed to seed root: %w", err)
	}
	for i, title := range permanentFolders {
		if _, err := tx.Exec(
			"INSERT INTO bookmarks (id, parent_id, title, position, date_added) VALUES (?, ?, ?, ?, ?)",
			i+1, sqliteRootID, title, i, now,
		); err != nil {
			return fmt.Errorf("failed to seed %s: %w", title, err)
		}
	}
	return tx.Commit()
}

const nodeColumns = "id, parent_id, title, url, position, date_added"

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNode(row rowScanner) (*Node, error) {
	var (
		id        int64
		parentID  sql.NullInt64
		title     string
		url       sql.NullString
		position  int
		dateAdded int64
	)
	if err := row.Scan(&id, &parentID, &title, &url, &position, &dateAdded); err != nil {
		return nil, err
	}

	n := &Node{
		ID:    fmt.Sprintf("%d", id),
		Title: title,
		URL:   url.String,
		Index: position,
	}
	if parentID.Valid {
		n.ParentID = fmt.Sprintf("%d", parentID.Int64)
	}
	if dateAdded > 0 {
		n.DateAdded = time.UnixMilli(dateAdded).UTC()
	}
	return n, nil
}

// QueryNodes runs a SELECT over the bookmarks table
func QueryNodes(ctx context.Context, db *sql.DB, where string, args ...any) ([]*Node, error) {
	query := "SELECT " + nodeColumns + " FROM bookmarks"
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY parent_id, position, id"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var nodes []*Node
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		nodes = append(nodes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return nodes, nil
}
