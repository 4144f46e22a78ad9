package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/bookmark-tag/internal"
)

func TestMarkdownExporter_Export(t *testing.T) {
	tests := []struct {
		name    string
		entries []internal.Entry
		want    []string
		notWant []string
	}{
		{
			name:    "test tree",
			entries: internal.CreateTestEntries(),
			want: []string{
				"# Bookmarks\n\n",
				"## Bookmarks bar\n",
				"- [Go](https://go.dev) `@lang` `@dev`\n",
				"### Reading\n",
				"- [Rust book](https://doc.rust-lang.org/book) `@lang`\n",
				"## Other bookmarks\n",
				"- [News](https://news.ycombinator.com) `@daily`\n",
			},
			notWant: []string{"# \n"},
		},
		{
			name: "escaping",
			entries: internal.Flatten([]*internal.Node{
				{ID: "1", Title: "**Bold** folder", Children: []*internal.Node{
					{ID: "2", Title: "[draft] notes @wip", URL: "https://x.test"},
					{ID: "3", Title: "@only", URL: "https://y.test"},
				}},
			}, nil, 0),
			want: []string{
				"## \\*\\*Bold\\*\\* folder\n",
				"- [\\[draft\\] notes](https://x.test) `@wip`\n",
				"- [https://y.test](https://y.test) `@only`\n",
			},
		},
		{
			name:    "empty",
			entries: nil,
			want:    []string{"# Bookmarks\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			exporter := &MarkdownExporter{}
			if err := exporter.Export(tt.entries, &buf); err != nil {
				t.Fatalf("Export() error = %v", err)
			}

			output := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("Export() output does not contain %q\n%s", want, output)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(output, nw) {
					t.Errorf("Export() output contains %q", nw)
				}
			}
		})
	}
}

func TestHeadingLevel(t *testing.T) {
	tests := []struct {
		depth int
		want  int
	}{
		{0, 2},
		{1, 2},
		{2, 3},
		{5, 6},
		{9, 6},
	}
	for _, tt := range tests {
		if got := headingLevel(tt.depth); got != tt.want {
			t.Errorf("headingLevel(%d) = %d, want %d", tt.depth, got, tt.want)
		}
	}
}

func TestMarkdownExporter_Extension(t *testing.T) {
	exporter := &MarkdownExporter{}
	if got := exporter.Extension(); got != "md" {
		t.Errorf("Extension() = %v, want md", got)
	}
}
