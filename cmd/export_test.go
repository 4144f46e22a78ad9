package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iksnae/bookmark-tag/internal"
	"github.com/iksnae/bookmark-tag/testutil"
)

func TestExportCommand(t *testing.T) {
	isolate(t)
	store := chromeStore(t)

	t.Run("invalid format", func(t *testing.T) {
		_, err := runCommand(t, "export", "--format", "invalid", "--store", store)
		if err == nil || !strings.Contains(err.Error(), "unsupported format") {
			t.Errorf("Execute() error = %v", err)
		}
	})

	t.Run("json to stdout", func(t *testing.T) {
		out, err := runCommand(t, "export", "-f", "json", "--store", store)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		var views []internal.TaggedBookmark
		testutil.JSONUnmarshal(t, []byte(out), &views)
		if len(views) != 8 {
			t.Fatalf("exported %d entries, want 8", len(views))
		}
		var rust internal.TaggedBookmark
		for _, v := range views {
			if v.ID == "6" {
				rust = v
			}
		}
		if rust.Title != "Rust book" || rust.Path != "Bookmarks bar / Reading" || rust.Depth != 3 {
			t.Errorf("entry 6 = %+v", rust)
		}
	})

	t.Run("jsonl filtered by tag", func(t *testing.T) {
		out, err := runCommand(t, "export", "--tag", "daily", "--store", store)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		var lines []string
		scanner := bufio.NewScanner(strings.NewReader(out))
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if len(lines) != 1 {
			t.Fatalf("got %d lines, want 1:\n%s", len(lines), out)
		}
		var v internal.TaggedBookmark
		if err := json.Unmarshal([]byte(lines[0]), &v); err != nil {
			t.Fatalf("line is not JSON: %v", err)
		}
		if v.ID != "7" {
			t.Errorf("exported %q, want 7", v.ID)
		}
	})

	t.Run("markdown to file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "exports", "bookmarks")
		if _, err := runCommand(t, "export", "-f", "md", "-o", out, "--store", store); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		content := string(testutil.ReadFile(t, out+".md"))
		for _, w := range []string{"# Bookmarks", "[Go](https://go.dev)", "`@lang`"} {
			if !strings.Contains(content, w) {
				t.Errorf("markdown missing %q:\n%s", w, content)
			}
		}
	})

	t.Run("keeps explicit extension", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "bookmarks.txt")
		if _, err := runCommand(t, "export", "-f", "yaml", "-o", out, "--store", store); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if _, err := os.Stat(out); err != nil {
			t.Errorf("export file not written: %v", err)
		}
	})

	t.Run("unwritable destination", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		writeFile(t, blocker, "x")
		_, err := runCommand(t, "export", "-o", filepath.Join(blocker, "out.jsonl"), "--store", store)
		var exportErr *internal.ExportError
		if !errors.As(err, &exportErr) {
			t.Fatalf("Execute() error = %v, want ExportError", err)
		}
		if exportErr.Format != "jsonl" {
			t.Errorf("Format = %q", exportErr.Format)
		}
	})
}

func TestEntriesWithTag(t *testing.T) {
	entries := []internal.Entry{
		{Node: &internal.Node{ID: "1", Title: "Folder @x"}, IsFolder: true},
		{Node: &internal.Node{ID: "2", Title: "A @x", URL: "https://a"}},
		{Node: &internal.Node{ID: "3", Title: "B @xy", URL: "https://b"}},
		{Node: &internal.Node{ID: "4", Title: "mail@x.com", URL: "https://c"}},
	}

	for _, tag := range []string{"x", "@x"} {
		got := entriesWithTag(entries, tag)
		if len(got) != 1 || got[0].ID != "2" {
			t.Errorf("entriesWithTag(%q) = %v, want only 2", tag, got)
		}
	}
}
