package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/bookmark-tag/internal"
)

// JSONExporter exports bookmarks as one pretty-printed JSON array
type JSONExporter struct{}

// Export writes entries as a JSON array
func (e *JSONExporter) Export(entries []internal.Entry, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(views(entries))
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
