package internal

import (
	"context"
	"time"
)

// Node is a bookmark tree node as handed out by a BookmarkStore.
// A node without a URL is a folder.
type Node struct {
	ID        string    `json:"id" yaml:"id"`
	ParentID  string    `json:"parentId,omitempty" yaml:"parent_id,omitempty"`
	Title     string    `json:"title" yaml:"title"`
	URL       string    `json:"url,omitempty" yaml:"url,omitempty"`
	Index     int       `json:"index" yaml:"index"`
	DateAdded time.Time `json:"dateAdded,omitempty" yaml:"date_added,omitempty"`
	Children  []*Node   `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsFolder reports whether the node is a folder
func (n *Node) IsFolder() bool {
	return n.URL == ""
}

// Entry is a Node annotated with its position in a flattened tree
type Entry struct {
	*Node
	IsFolder bool     `json:"isFolder" yaml:"is_folder"`
	Path     []string `json:"path" yaml:"path"`
	Depth    int      `json:"depth" yaml:"depth"`
	Expanded bool     `json:"expanded" yaml:"expanded"`
	Selected bool     `json:"selected" yaml:"selected"`
}

// Tab is the browser tab the user is looking at
type Tab struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// TabBookmark pairs the active tab with its bookmark, if any
type TabBookmark struct {
	Tab      *Tab
	Bookmark *Node
	URL      string
	Title    string
}

// Result is the uniform outcome of a bookmark write
type Result struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Bookmark *Node  `json:"bookmark,omitempty"`
}

// SearchQuery selects bookmarks. An empty query matches every node.
type SearchQuery struct {
	URL  string // exact URL match
	Text string // case-insensitive substring of title or URL
}

// CreateDetails describes a bookmark to create
type CreateDetails struct {
	ParentID string
	Title    string
	URL      string
}

// BookmarkStore is the host bookmark API
type BookmarkStore interface {
	Search(ctx context.Context, query SearchQuery) ([]*Node, error)
	Get(ctx context.Context, id string) (*Node, error)
	Tree(ctx context.Context) ([]*Node, error)
	Create(ctx context.Context, details CreateDetails) (*Node, error)
	Update(ctx context.Context, id, title string) (*Node, error)
	Remove(ctx context.Context, id string) error
}

// TabProvider reports the active tab
type TabProvider interface {
	ActiveTab(ctx context.Context) (*Tab, error)
}
