package internal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	homedir "github.com/mitchellh/go-homedir"
)

// Store backends
const (
	BackendChrome = "chrome"
	BackendSQLite = "sqlite"
)

// DefaultProfile is the Chrome profile directory used when none is configured
const DefaultProfile = "Default"

// StoragePaths holds the detected paths for the browser profile and for
// bookmark-tag's own state
type StoragePaths struct {
	BasePath string // Chrome user data directory
	Profile  string // profile directory name under BasePath
	DataDir  string // ~/.bookmark-tag
}

// DetectStoragePaths detects the Chrome user data directory based on the
// operating system
func DetectStoragePaths() (StoragePaths, error) {
	home, err := homedir.Dir()
	if err != nil {
		return StoragePaths{}, fmt.Errorf("failed to get home directory: %w", err)
	}

	var basePath string
	switch runtime.GOOS {
	case "darwin":
		basePath = filepath.Join(home, "Library/Application Support/Google/Chrome")
	case "linux":
		basePath = filepath.Join(home, ".config/google-chrome")
	case "windows":
		local := os.Getenv("LOCALAPPDATA")
		if local == "" {
			local = filepath.Join(home, "AppData", "Local")
		}
		basePath = filepath.Join(local, "Google", "Chrome", "User Data")
	default:
		return StoragePaths{}, fmt.Errorf("unsupported OS: %s (only macOS, Linux and Windows are supported)", runtime.GOOS)
	}

	return StoragePaths{
		BasePath: basePath,
		Profile:  DefaultProfile,
		DataDir:  filepath.Join(home, ".bookmark-tag"),
	}, nil
}

// BookmarksPath returns the path to the profile's Bookmarks file
func (sp StoragePaths) BookmarksPath() string {
	return filepath.Join(sp.BasePath, sp.Profile, "Bookmarks")
}

// BookmarksExist checks if the profile's Bookmarks file exists
func (sp StoragePaths) BookmarksExist() bool {
	_, err := os.Stat(sp.BookmarksPath())
	return err == nil
}

// CacheDir returns the directory holding the tag index
func (sp StoragePaths) CacheDir() string {
	return filepath.Join(sp.DataDir, "cache")
}

// SQLitePath returns the default SQLite bookmark database
func (sp StoragePaths) SQLitePath() string {
	return filepath.Join(sp.DataDir, "bookmarks.db")
}

// StorePath picks the store file for backend, preferring configured
func (sp StoragePaths) StorePath(backend, configured string) (string, error) {
	if configured != "" {
		return ExpandPath(configured)
	}
	switch backend {
	case BackendChrome, "":
		return sp.BookmarksPath(), nil
	case BackendSQLite:
		return sp.SQLitePath(), nil
	default:
		return "", fmt.Errorf("unknown backend %q (want %s or %s)", backend, BackendChrome, BackendSQLite)
	}
}

// ExpandPath expands a leading "~" to the user's home directory
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return expanded, nil
}

// BackupStore copies the store file next to itself with a timestamp suffix
// and returns the copy's path
func BackupStore(path string, now time.Time) (string, error) {
	backup := fmt.Sprintf("%s.%s.bak", path, now.UTC().Format("20060102T150405Z"))
	if err := copyFile(path, backup); err != nil {
		return "", &StorageError{Path: path, Op: "backup", Err: err}
	}
	LogInfo("Backed up %s to %s", path, backup)
	return backup, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
