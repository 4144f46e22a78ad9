package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/iksnae/bookmark-tag/testutil"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// isolate points HOME at a temp dir and clears credentials so no user
// configuration leaks into a test
func isolate(t *testing.T) string {
	t.Helper()
	homedir.DisableCache = true
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("POCKET_CONSUMER_KEY", "")
	t.Setenv("POCKET_ACCESS_TOKEN", "")
	return home
}

// resetFlags puts every flag of c and its subcommands back to its default.
// rootCmd is shared by all tests and cobra keeps flag values between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCommand executes rootCmd with args and returns what it printed
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// chromeStore writes the Chrome fixture and returns its path
func chromeStore(t *testing.T) string {
	t.Helper()
	return testutil.CreateChromeFixture(t, testutil.CreateTempDir(t))
}

// sqliteStore writes the SQLite fixture and returns its path
func sqliteStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(testutil.CreateTempDir(t), "bookmarks.db")
	testutil.CreateSQLiteFixture(t, path)
	return path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
