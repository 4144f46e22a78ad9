package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/iksnae/bookmark-tag/internal"
	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// appConfig is the merged view of flags, environment, .env and config file
type appConfig struct {
	Store          string
	Backend        string
	ChromeDir      string
	Profile        string
	CacheDir       string
	Backup         bool
	BlockPatterns  []string
	BlockRulesFile string
	ConsumerKey    string
	AccessToken    string
	Port           string
}

// loadConfig reads .bookmark-tag.yaml and BOOKMARK_TAG_* variables. Flags
// win over the environment, which wins over the file.
func loadConfig() (*appConfig, error) {
	v := viper.New()

	paths, err := internal.DetectStoragePaths()
	if err != nil {
		internal.LogWarn("Could not detect browser paths: %v", err)
	}
	v.SetDefault("backend", internal.BackendChrome)
	v.SetDefault("port", "8080")
	v.SetDefault("env_file", ".env")
	v.SetDefault("profile", internal.DefaultProfile)
	if paths.BasePath != "" {
		v.SetDefault("chrome_dir", paths.BasePath)
	}
	if paths.DataDir != "" {
		v.SetDefault("cache_dir", paths.CacheDir())
	}

	v.SetConfigName(".bookmark-tag") // .yaml is implicit
	v.SetConfigType("yaml")
	v.SetEnvPrefix("BOOKMARK_TAG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		path, err := internal.ExpandPath(cfgFile)
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("./")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		internal.LogDebug("Using config file %s", v.ConfigFileUsed())
	}

	if err := v.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("backend", rootCmd.PersistentFlags().Lookup("backend")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile")); err != nil {
		return nil, err
	}

	loadDotEnv(v.GetString("env_file"))

	c := &appConfig{
		Backend:        v.GetString("backend"),
		Backup:         v.GetBool("backup"),
		BlockPatterns:  v.GetStringSlice("block.patterns"),
		BlockRulesFile: v.GetString("block.rules_file"),
		ConsumerKey:    firstNonEmpty(v.GetString("pocket.consumer_key"), os.Getenv("POCKET_CONSUMER_KEY")),
		AccessToken:    firstNonEmpty(v.GetString("pocket.access_token"), os.Getenv("POCKET_ACCESS_TOKEN")),
		Port:           v.GetString("port"),
		Profile:        v.GetString("profile"),
	}

	if c.ChromeDir, err = internal.ExpandPath(v.GetString("chrome_dir")); err != nil {
		return nil, err
	}
	paths.BasePath = c.ChromeDir
	if c.Profile != "" {
		paths.Profile = c.Profile
	}

	c.Store, err = paths.StorePath(c.Backend, v.GetString("store"))
	if err != nil {
		return nil, err
	}
	if c.CacheDir, err = internal.ExpandPath(v.GetString("cache_dir")); err != nil {
		return nil, err
	}
	if c.BlockRulesFile != "" {
		if c.BlockRulesFile, err = internal.ExpandPath(c.BlockRulesFile); err != nil {
			return nil, err
		}
	}

	internal.LogDebug("Store: %s (%s)", c.Store, c.Backend)
	return c, nil
}

// loadDotEnv loads KEY=VALUE pairs without overriding the environment
func loadDotEnv(path string) {
	if path == "" {
		return
	}
	expanded, err := internal.ExpandPath(path)
	if err != nil {
		return
	}
	if err := godotenv.Load(expanded); err != nil && !os.IsNotExist(err) {
		internal.LogWarn("Failed to load %s: %v", expanded, err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// openedStore is a BookmarkStore together with where it lives
type openedStore struct {
	internal.BookmarkStore
	Path  string
	close func() error
}

// Close releases the store
func (s *openedStore) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// openStore opens the configured store
func openStore(c *appConfig) (*openedStore, error) {
	switch c.Backend {
	case internal.BackendChrome:
		if _, err := os.Stat(c.Store); err != nil {
			return nil, fmt.Errorf("bookmarks file not found at %s (use --store to point at a Chrome profile's Bookmarks file): %w", c.Store, err)
		}
		return &openedStore{BookmarkStore: internal.NewChromeStore(c.Store), Path: c.Store}, nil
	case internal.BackendSQLite:
		store, err := internal.OpenSQLiteStore(c.Store)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return &openedStore{BookmarkStore: store, Path: c.Store, close: store.Close}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", c.Backend)
	}
}

// openManager opens the store and wraps it in a Manager
func openManager(c *appConfig, tabs internal.TabProvider) (*internal.Manager, *openedStore, error) {
	store, err := openStore(c)
	if err != nil {
		return nil, nil, err
	}
	return internal.NewManager(store, tabs), store, nil
}

// backupBeforeWrite copies the store when backups are enabled
func backupBeforeWrite(c *appConfig, store *openedStore) error {
	if !c.Backup {
		return nil
	}
	if _, err := internal.BackupStore(store.Path, time.Now()); err != nil {
		return fmt.Errorf("backup failed, not writing: %w", err)
	}
	return nil
}

// closeStore closes a store, logging failures
func closeStore(store *openedStore) {
	if err := store.Close(); err != nil {
		internal.LogWarn("Failed to close store: %v", err)
	}
}
