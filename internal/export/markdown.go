package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/bookmark-tag/internal"
)

// MarkdownExporter exports bookmarks as a Markdown outline: folders become
// headings and bookmarks become links
type MarkdownExporter struct{}

// Export writes entries as Markdown
func (e *MarkdownExporter) Export(entries []internal.Entry, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Bookmarks\n\n")

	for _, v := range views(entries) {
		if v.IsFolder {
			if v.Title == "" {
				continue
			}
			_, _ = fmt.Fprintf(w, "%s %s\n\n", strings.Repeat("#", headingLevel(v.Depth)), escapeMarkdown(v.Title))
			continue
		}

		title := v.Title
		if title == "" {
			title = v.URL
		}
		line := fmt.Sprintf("- [%s](%s)", escapeLinkText(title), v.URL)
		for _, tag := range v.Tags {
			line += fmt.Sprintf(" `%s`", tag)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write bookmark %s: %w", v.ID, err)
		}
	}

	return nil
}

// headingLevel maps folder depth to a heading below the document title
func headingLevel(depth int) int {
	level := depth + 1
	if level < 2 {
		level = 2
	}
	if level > 6 {
		level = 6
	}
	return level
}

// escapeMarkdown escapes emphasis markers in headings
func escapeMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "\\*\\*")
	text = strings.ReplaceAll(text, "__", "\\_\\_")
	return text
}

// escapeLinkText escapes the characters that would end link text early
func escapeLinkText(text string) string {
	text = strings.ReplaceAll(text, "[", "\\[")
	text = strings.ReplaceAll(text, "]", "\\]")
	return text
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
