package internal

import (
	"net/url"
	"strings"
)

// Deduplicator removes bookmarks that point at the same page
type Deduplicator struct{}

// NewDeduplicator creates a new Deduplicator
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{}
}

// Deduplicate keeps the first bookmark for each URL. Folders are kept as is.
func (d *Deduplicator) Deduplicate(nodes []*Node) []*Node {
	seen := make(map[string]bool)
	unique := make([]*Node, 0, len(nodes))

	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.IsFolder() {
			unique = append(unique, n)
			continue
		}
		key := d.urlKey(n.URL)
		if !seen[key] {
			seen[key] = true
			unique = append(unique, n)
		}
	}

	return unique
}

// urlKey folds the parts of a URL that do not change the page: scheme and
// host case, a trailing slash and an empty fragment
func (d *Deduplicator) urlKey(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return raw
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Path = strings.TrimSuffix(u.Path, "/")
	if u.Fragment == "" {
		u.RawFragment = ""
	}
	return u.String()
}
