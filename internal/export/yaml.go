package export

import (
	"io"

	"github.com/iksnae/bookmark-tag/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports bookmarks in YAML format
type YAMLExporter struct{}

type yamlDocument struct {
	Count     int                       `yaml:"count"`
	Bookmarks []internal.TaggedBookmark `yaml:"bookmarks"`
}

// Export writes entries as a single YAML document
func (e *YAMLExporter) Export(entries []internal.Entry, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	vs := views(entries)
	return enc.Encode(yamlDocument{Count: len(vs), Bookmarks: vs})
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
