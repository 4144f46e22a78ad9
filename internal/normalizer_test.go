package internal

import (
	"reflect"
	"testing"
	"time"
)

func TestNormalizeEntry(t *testing.T) {
	normalizer := NewNormalizer()
	added := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		entry Entry
		want  TaggedBookmark
	}{
		{
			name: "tagged leaf",
			entry: Entry{
				Node:  &Node{ID: "4", Title: "Go @lang @dev", URL: "https://go.dev", DateAdded: added},
				Path:  []string{"Bookmarks bar"},
				Depth: 2,
			},
			want: TaggedBookmark{
				ID: "4", Title: "Go", RawTitle: "Go @lang @dev",
				Tags: []string{"@lang", "@dev"}, URL: "https://go.dev",
				Path: "Bookmarks bar", Depth: 2, DateAdded: "2024-03-01T12:00:00Z",
			},
		},
		{
			name: "untagged leaf with nested path",
			entry: Entry{
				Node:  &Node{ID: "9", Title: "mail user@example.com", URL: "https://x.test"},
				Path:  []string{"Bookmarks bar", "Reading"},
				Depth: 3,
			},
			want: TaggedBookmark{
				ID: "9", Title: "mail user@example.com", RawTitle: "mail user@example.com",
				Tags: []string{}, URL: "https://x.test",
				Path: "Bookmarks bar / Reading", Depth: 3,
			},
		},
		{
			name: "folder keeps its title",
			entry: Entry{
				Node:     &Node{ID: "5", Title: "Reading @later"},
				IsFolder: true,
				Path:     []string{},
			},
			want: TaggedBookmark{
				ID: "5", Title: "Reading @later", RawTitle: "Reading @later",
				Tags: []string{}, IsFolder: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizer.NormalizeEntry(tt.entry)
			if err != nil {
				t.Fatalf("NormalizeEntry() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeEntry() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeEntryNilNode(t *testing.T) {
	if _, err := NewNormalizer().NormalizeEntry(Entry{}); err == nil {
		t.Error("NormalizeEntry() with nil node should fail")
	}
}

func TestNormalizeAll(t *testing.T) {
	entries := append(CreateTestEntries(), Entry{})
	views := NewNormalizer().NormalizeAll(entries)
	if len(views) != 8 {
		t.Fatalf("NormalizeAll() = %d views, want 8", len(views))
	}

	lang := FilterByTag(views, "lang")
	if len(lang) != 2 || lang[0].ID != "4" || lang[1].ID != "6" {
		t.Errorf("FilterByTag(lang) = %+v", lang)
	}
	if lang[1].Path != "Bookmarks bar / Reading" {
		t.Errorf("path = %q", lang[1].Path)
	}

	if got := FilterByTag(views, "@missing"); len(got) != 0 {
		t.Errorf("FilterByTag(@missing) = %+v", got)
	}
}
