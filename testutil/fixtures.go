package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ChromeBookmarksJSON is a minimal Chrome profile "Bookmarks" file:
//
//	1 Bookmarks bar
//	    4 Go @lang @dev           https://go.dev
//	    5 Reading
//	        6 Rust book @lang     https://doc.rust-lang.org/book
//	2 Other bookmarks
//	    7 News @daily             https://news.ycombinator.com
//	3 Mobile bookmarks
const ChromeBookmarksJSON = `{
   "checksum": "0123456789abcdef0123456789abcdef",
   "roots": {
      "bookmark_bar": {
         "children": [ {
            "date_added": "13345678901234567",
            "date_last_used": "0",
            "guid": "0b5e2f1a-1111-4c4c-9a9a-000000000004",
            "id": "4",
            "meta_info": { "power_bookmark_meta": "" },
            "name": "Go @lang @dev",
            "type": "url",
            "url": "https://go.dev"
         }, {
            "children": [ {
               "date_added": "13345678901234567",
               "guid": "0b5e2f1a-1111-4c4c-9a9a-000000000006",
               "id": "6",
               "name": "Rust book @lang",
               "type": "url",
               "url": "https://doc.rust-lang.org/book"
            } ],
            "date_added": "13345678901234567",
            "date_modified": "13345678901234567",
            "guid": "0b5e2f1a-1111-4c4c-9a9a-000000000005",
            "id": "5",
            "name": "Reading",
            "type": "folder"
         } ],
         "date_added": "13345678901234567",
         "date_modified": "13345678901234567",
         "guid": "0bc5d13f-2cba-5d74-951f-3f233fe6c908",
         "id": "1",
         "name": "Bookmarks bar",
         "type": "folder"
      },
      "other": {
         "children": [ {
            "date_added": "13345678901234567",
            "guid": "0b5e2f1a-1111-4c4c-9a9a-000000000007",
            "id": "7",
            "name": "News @daily",
            "type": "url",
            "url": "https://news.ycombinator.com"
         } ],
         "date_added": "13345678901234567",
         "date_modified": "0",
         "guid": "82b081ec-3dd3-529c-8475-ab6c344590dd",
         "id": "2",
         "name": "Other bookmarks",
         "type": "folder"
      },
      "synced": {
         "children": [  ],
         "date_added": "13345678901234567",
         "date_modified": "0",
         "guid": "4cf2e351-0e85-532b-bb37-df045d8f8d0f",
         "id": "3",
         "name": "Mobile bookmarks",
         "type": "folder"
      }
   },
   "version": 1
}
`

// CreateChromeFixture writes a Chrome "Bookmarks" file into dir and returns its path
func CreateChromeFixture(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "Default", "Bookmarks")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create profile directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(ChromeBookmarksJSON), 0600); err != nil {
		t.Fatalf("Failed to write Bookmarks fixture: %v", err)
	}
	return path
}

// CreateSQLiteFixture creates a bookmark database with the same tree as
// ChromeBookmarksJSON
func CreateSQLiteFixture(t *testing.T, dbPath string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	db := OpenTestDB(t, dbPath)
	defer func() { _ = db.Close() }()

	rows := []struct {
		id       int
		parentID any
		title    string
		url      any
		position int
	}{
		{0, nil, "", nil, 0},
		{1, 0, "Bookmarks bar", nil, 0},
		{2, 0, "Other bookmarks", nil, 1},
		{3, 0, "Mobile bookmarks", nil, 2},
		{4, 1, "Go @lang @dev", "https://go.dev", 0},
		{5, 1, "Reading", nil, 1},
		{6, 5, "Rust book @lang", "https://doc.rust-lang.org/book", 0},
		{7, 2, "News @daily", "https://news.ycombinator.com", 0},
	}
	for _, r := range rows {
		InsertBookmark(t, db, r.id, r.parentID, r.title, r.url, r.position)
	}
}

// CreateEnvFixture writes a .env file with the given KEY=VALUE pairs and
// returns its path
func CreateEnvFixture(t *testing.T, dir string, vars map[string]string) string {
	t.Helper()
	var b strings.Builder
	for k, v := range vars {
		b.WriteString(k + "=" + v + "\n")
	}
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		t.Fatalf("Failed to write .env fixture: %v", err)
	}
	return path
}
