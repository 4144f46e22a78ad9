package export

import (
	"bytes"
	"testing"

	"github.com/iksnae/bookmark-tag/internal"
	"gopkg.in/yaml.v3"
)

func TestYAMLExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	exporter := &YAMLExporter{}
	if err := exporter.Export(internal.CreateTestEntries(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var doc struct {
		Count     int `yaml:"count"`
		Bookmarks []struct {
			ID    string   `yaml:"id"`
			Title string   `yaml:"title"`
			Tags  []string `yaml:"tags"`
			Path  string   `yaml:"path"`
		} `yaml:"bookmarks"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Export() output is not valid YAML: %v", err)
	}

	if doc.Count != 8 || len(doc.Bookmarks) != 8 {
		t.Fatalf("count = %d, bookmarks = %d, want 8", doc.Count, len(doc.Bookmarks))
	}
	rust := doc.Bookmarks[4]
	if rust.Title != "Rust book" || rust.Path != "Bookmarks bar / Reading" || len(rust.Tags) != 1 {
		t.Errorf("bookmark 6 = %+v", rust)
	}
}

func TestYAMLExporter_Extension(t *testing.T) {
	exporter := &YAMLExporter{}
	if got := exporter.Extension(); got != "yaml" {
		t.Errorf("Extension() = %v, want yaml", got)
	}
}
