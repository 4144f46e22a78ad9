package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
)

// ProfileInfo describes one Chrome profile directory
type ProfileInfo struct {
	Dir           string // directory name under the user data dir, e.g. "Profile 1"
	Name          string // display name from Preferences, if readable
	BookmarksPath string
}

// DetectProfiles lists the profiles under basePath that have a Bookmarks
// file, sorted by directory name
func DetectProfiles(basePath string) ([]ProfileInfo, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []ProfileInfo{}, nil
		}
		return nil, &StorageError{Path: basePath, Op: "readdir", Err: err}
	}

	profiles := []ProfileInfo{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := entry.Name()
		bookmarks := filepath.Join(basePath, dir, "Bookmarks")
		if _, err := os.Stat(bookmarks); err != nil {
			continue
		}

		info := ProfileInfo{Dir: dir, Name: dir, BookmarksPath: bookmarks}
		if name := profileName(filepath.Join(basePath, dir, "Preferences")); name != "" {
			info.Name = name
		}
		profiles = append(profiles, info)
	}

	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Dir < profiles[j].Dir })
	return profiles, nil
}

// profileName reads profile.name from a Preferences file
func profileName(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var prefs struct {
		Profile struct {
			Name string `json:"name"`
		} `json:"profile"`
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		LogDebug("Ignoring unreadable preferences %s: %v", path, err)
		return ""
	}
	return prefs.Profile.Name
}
