package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/iksnae/bookmark-tag/internal"
)

func TestJSONLExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	exporter := &JSONLExporter{}
	if err := exporter.Export(internal.CreateTestEntries(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	var ids []string
	for scanner.Scan() {
		var v internal.TaggedBookmark
		if err := json.Unmarshal(scanner.Bytes(), &v); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", len(ids)+1, err)
		}
		ids = append(ids, v.ID)
	}

	want := []string{"0", "1", "4", "5", "6", "2", "7", "3"}
	if len(ids) != len(want) {
		t.Fatalf("Export() wrote %d lines, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("line %d id = %s, want %s", i+1, ids[i], want[i])
		}
	}
}

func TestJSONLExporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONLExporter{}).Export(nil, &buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("Export(nil) wrote %q, want nothing", buf.String())
	}
}

func TestJSONLExporter_Extension(t *testing.T) {
	exporter := &JSONLExporter{}
	if got := exporter.Extension(); got != "jsonl" {
		t.Errorf("Extension() = %v, want jsonl", got)
	}
}
