package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const tagIndexVersion = "1.0"

// CacheManager keeps the tag index next to other per-user state
type CacheManager struct {
	cacheDir string
}

// CacheMetadata records which store an index was built from
type CacheMetadata struct {
	StorePath    string    `json:"store_path" yaml:"store_path"`
	StoreModTime time.Time `json:"store_mod_time" yaml:"store_mod_time"`
	CacheVersion string    `json:"cache_version" yaml:"cache_version"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" yaml:"updated_at"`
}

// TagIndex is the cached tag census of a bookmark store
type TagIndex struct {
	Tags      []TagCount    `yaml:"tags"`
	Bookmarks int           `yaml:"bookmarks"`
	Metadata  CacheMetadata `yaml:"metadata"`
}

// NewCacheManager creates a new cache manager
func NewCacheManager(cacheDir string) *CacheManager {
	return &CacheManager{
		cacheDir: cacheDir,
	}
}

// EnsureCacheDir ensures the cache directory exists
func (cm *CacheManager) EnsureCacheDir() error {
	return os.MkdirAll(cm.cacheDir, 0755)
}

// GetCacheDir returns the cache directory path
func (cm *CacheManager) GetCacheDir() string {
	return cm.cacheDir
}

// GetIndexPath returns the path to the tag index YAML file
func (cm *CacheManager) GetIndexPath() string {
	return filepath.Join(cm.cacheDir, "tags.yaml")
}

// IsCacheValid reports whether the index was built from storePath as it is now
func (cm *CacheManager) IsCacheValid(storePath string) (bool, error) {
	if _, err := os.Stat(cm.GetIndexPath()); os.IsNotExist(err) {
		return false, nil
	}

	index, err := cm.LoadIndex()
	if err != nil {
		return false, nil
	}

	if index.Metadata.StorePath != storePath || index.Metadata.CacheVersion != tagIndexVersion {
		return false, nil
	}

	info, err := os.Stat(storePath)
	if err != nil {
		return false, nil
	}

	return index.Metadata.StoreModTime.Equal(info.ModTime()), nil
}

// LoadIndex loads the tag index
func (cm *CacheManager) LoadIndex() (*TagIndex, error) {
	data, err := os.ReadFile(cm.GetIndexPath())
	if err != nil {
		return nil, err
	}

	var index TagIndex
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, &ParseError{Source: "tag index", Key: cm.GetIndexPath(), Err: err}
	}

	return &index, nil
}

// SaveIndex saves the tag index
func (cm *CacheManager) SaveIndex(index *TagIndex) error {
	if err := cm.EnsureCacheDir(); err != nil {
		return err
	}

	data, err := yaml.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}

	return os.WriteFile(cm.GetIndexPath(), data, 0644)
}

// BuildIndex counts the tags of leaves and saves the result against
// storePath's current modification time
func (cm *CacheManager) BuildIndex(leaves []*Node, storePath string) (*TagIndex, error) {
	info, err := os.Stat(storePath)
	if err != nil {
		return nil, &StorageError{Path: storePath, Op: "stat", Err: err}
	}

	titles := make([]string, 0, len(leaves))
	for _, n := range leaves {
		titles = append(titles, n.Title)
	}

	now := time.Now()
	index := &TagIndex{
		Tags:      CountTags(titles),
		Bookmarks: len(leaves),
		Metadata: CacheMetadata{
			StorePath:    storePath,
			StoreModTime: info.ModTime(),
			CacheVersion: tagIndexVersion,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	if existing, err := cm.LoadIndex(); err == nil && existing.Metadata.StorePath == storePath {
		index.Metadata.CreatedAt = existing.Metadata.CreatedAt
	}

	if err := cm.SaveIndex(index); err != nil {
		return nil, err
	}
	LogDebug("Saved tag index for %s (%d tags)", storePath, len(index.Tags))
	return index, nil
}

// TagIndexFor returns the cached index when it is still valid and otherwise
// rebuilds it from load
func (cm *CacheManager) TagIndexFor(storePath string, load func() []*Node) (*TagIndex, error) {
	if valid, _ := cm.IsCacheValid(storePath); valid {
		if index, err := cm.LoadIndex(); err == nil {
			LogDebug("Using cached tag index %s", cm.GetIndexPath())
			return index, nil
		}
	}
	return cm.BuildIndex(load(), storePath)
}

// ClearCache removes the tag index
func (cm *CacheManager) ClearCache() error {
	if err := os.Remove(cm.GetIndexPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
