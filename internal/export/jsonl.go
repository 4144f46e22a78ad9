package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/bookmark-tag/internal"
)

// JSONLExporter exports bookmarks in JSONL format (one bookmark per line)
type JSONLExporter struct{}

// Export writes each entry as a single JSON line
func (e *JSONLExporter) Export(entries []internal.Entry, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, v := range views(entries) {
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode bookmark %s: %w", v.ID, err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
