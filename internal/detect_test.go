package internal

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/iksnae/bookmark-tag/testutil"
)

func TestDetectStoragePaths(t *testing.T) {
	paths, err := DetectStoragePaths()
	if err != nil {
		t.Fatalf("DetectStoragePaths() error = %v", err)
	}

	if paths.BasePath == "" {
		t.Error("BasePath should not be empty")
	}
	if paths.Profile != DefaultProfile {
		t.Errorf("Profile = %q, want %q", paths.Profile, DefaultProfile)
	}

	home, _ := os.UserHomeDir()
	expectedBase := ""
	switch runtime.GOOS {
	case "darwin":
		expectedBase = filepath.Join(home, "Library/Application Support/Google/Chrome")
	case "linux":
		expectedBase = filepath.Join(home, ".config/google-chrome")
	}
	if expectedBase != "" && paths.BasePath != expectedBase {
		t.Errorf("BasePath = %v, want %v", paths.BasePath, expectedBase)
	}
}

func TestStoragePaths_Derived(t *testing.T) {
	paths := StoragePaths{BasePath: "/chrome", Profile: "Profile 1", DataDir: "/data"}

	if got, want := paths.BookmarksPath(), filepath.Join("/chrome", "Profile 1", "Bookmarks"); got != want {
		t.Errorf("BookmarksPath() = %v, want %v", got, want)
	}
	if got, want := paths.CacheDir(), filepath.Join("/data", "cache"); got != want {
		t.Errorf("CacheDir() = %v, want %v", got, want)
	}
	if got, want := paths.SQLitePath(), filepath.Join("/data", "bookmarks.db"); got != want {
		t.Errorf("SQLitePath() = %v, want %v", got, want)
	}
	if paths.BookmarksExist() {
		t.Error("BookmarksExist() = true for a missing file")
	}
}

func TestStoragePaths_BookmarksExist(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	testutil.CreateChromeFixture(t, dir)

	paths := StoragePaths{BasePath: dir, Profile: DefaultProfile}
	if !paths.BookmarksExist() {
		t.Error("BookmarksExist() = false for fixture profile")
	}
}

func TestStoragePaths_StorePath(t *testing.T) {
	paths := StoragePaths{BasePath: "/chrome", Profile: DefaultProfile, DataDir: "/data"}
	home, _ := os.UserHomeDir()

	tests := []struct {
		name       string
		backend    string
		configured string
		want       string
		wantErr    bool
	}{
		{"chrome default", BackendChrome, "", paths.BookmarksPath(), false},
		{"empty backend is chrome", "", "", paths.BookmarksPath(), false},
		{"sqlite default", BackendSQLite, "", paths.SQLitePath(), false},
		{"configured wins", BackendSQLite, "/tmp/b.db", "/tmp/b.db", false},
		{"configured with tilde", BackendChrome, "~/Bookmarks", filepath.Join(home, "Bookmarks"), false},
		{"unknown backend", "firefox", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := paths.StorePath(tt.backend, tt.configured)
			if (err != nil) != tt.wantErr {
				t.Fatalf("StorePath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("StorePath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBackupStore(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	path := testutil.CreateChromeFixture(t, dir)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	backup, err := BackupStore(path, now)
	if err != nil {
		t.Fatalf("BackupStore() error = %v", err)
	}
	if !strings.HasSuffix(backup, ".20240102T030405Z.bak") {
		t.Errorf("backup path = %s", backup)
	}
	if string(testutil.ReadFile(t, backup)) != testutil.ChromeBookmarksJSON {
		t.Error("backup content differs from source")
	}

	if _, err := BackupStore(filepath.Join(dir, "missing"), now); err == nil {
		t.Error("BackupStore() of a missing file should fail")
	}
}
