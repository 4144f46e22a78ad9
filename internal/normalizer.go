package internal

import (
	"fmt"
	"strings"
	"time"
)

// DefaultPathSeparator joins folder names in a TaggedBookmark's path
const DefaultPathSeparator = " / "

// TaggedBookmark is the display view of a flattened entry: its title with
// the tags hidden, the tags themselves and the folder path as one string
type TaggedBookmark struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	RawTitle  string   `json:"rawTitle" yaml:"raw_title"`
	Tags      []string `json:"tags" yaml:"tags"`
	URL       string   `json:"url,omitempty" yaml:"url,omitempty"`
	Path      string   `json:"path" yaml:"path"`
	Depth     int      `json:"depth" yaml:"depth"`
	IsFolder  bool     `json:"isFolder" yaml:"is_folder"`
	DateAdded string   `json:"dateAdded,omitempty" yaml:"date_added,omitempty"`
}

// HasTag reports whether the bookmark carries tag, with or without "@"
func (b TaggedBookmark) HasTag(tag string) bool {
	tag = AddTagPrefix(tag)
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Normalizer converts flattened entries to TaggedBookmark views
type Normalizer struct {
	separator string
}

// NewNormalizer creates a Normalizer joining paths with DefaultPathSeparator
func NewNormalizer() *Normalizer {
	return &Normalizer{separator: DefaultPathSeparator}
}

// NormalizeEntry builds the view of one entry
func (n *Normalizer) NormalizeEntry(e Entry) (TaggedBookmark, error) {
	if e.Node == nil {
		return TaggedBookmark{}, fmt.Errorf("entry has no node")
	}

	view := TaggedBookmark{
		ID:       e.ID,
		Title:    e.Title,
		RawTitle: e.Title,
		Tags:     []string{},
		URL:      e.URL,
		Path:     strings.Join(e.Path, n.separator),
		Depth:    e.Depth,
		IsFolder: e.IsFolder,
	}
	if !e.IsFolder {
		view.Title = CreateDisplayTitle(e.Title)
		view.Tags = ExtractTags(e.Title)
	}
	if !e.DateAdded.IsZero() {
		view.DateAdded = formatTimestamp(e.DateAdded)
	}
	return view, nil
}

// formatTimestamp formats a time as ISO8601 in UTC
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// NormalizeAll normalizes every entry, skipping the ones without a node
func (n *Normalizer) NormalizeAll(entries []Entry) []TaggedBookmark {
	views := make([]TaggedBookmark, 0, len(entries))

	for _, e := range entries {
		view, err := n.NormalizeEntry(e)
		if err != nil {
			LogDebug("Skipping entry: %v", err)
			continue
		}
		views = append(views, view)
	}

	return views
}

// FilterByTag keeps the views carrying tag
func FilterByTag(views []TaggedBookmark, tag string) []TaggedBookmark {
	filtered := make([]TaggedBookmark, 0, len(views))
	for _, v := range views {
		if v.HasTag(tag) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
