package internal

import (
	"context"
	"strings"
)

// Result messages shown to the user
const (
	MessageUpdated         = "Updated"
	MessageBookmarked      = "Bookmarked"
	MessageRemoved         = "Removed"
	MessageError           = "Error occurred"
	MessageNoDefaultFolder = "Default folder not found"
)

// defaultFolderIndex picks "Other bookmarks" among the children of the
// tree root, as the browser orders them.
const defaultFolderIndex = 1

// Manager wraps a BookmarkStore and a TabProvider. None of its methods
// return errors: failures are logged and mapped to a safe default.
type Manager struct {
	store BookmarkStore
	tabs  TabProvider
}

// NewManager creates a Manager. tabs may be nil when no tab is known.
func NewManager(store BookmarkStore, tabs TabProvider) *Manager {
	return &Manager{store: store, tabs: tabs}
}

// CurrentTab returns the active tab or nil
func (m *Manager) CurrentTab(ctx context.Context) *Tab {
	if m.tabs == nil {
		return nil
	}
	tab, err := m.tabs.ActiveTab(ctx)
	if err != nil {
		LogError("Failed to get the current tab: %v", err)
		return nil
	}
	return tab
}

// IsCurrentTabBookmarked reports whether the active tab's URL is bookmarked
func (m *Manager) IsCurrentTabBookmarked(ctx context.Context) bool {
	url := TabURL(m.CurrentTab(ctx))
	if url == "" {
		return false
	}

	results, err := m.store.Search(ctx, SearchQuery{URL: url})
	if err != nil {
		LogError("Failed to check bookmark state for %s: %v", url, err)
		return false
	}
	return len(results) > 0
}

// CurrentTabBookmark returns the active tab together with its bookmark.
// The title prefers the bookmark's title over the tab's.
func (m *Manager) CurrentTabBookmark(ctx context.Context) TabBookmark {
	tab := m.CurrentTab(ctx)
	url := TabURL(tab)

	var bookmark *Node
	if url != "" {
		results, err := m.store.Search(ctx, SearchQuery{URL: url})
		if err != nil {
			LogError("Failed to get tab information: %v", err)
			return TabBookmark{}
		}
		if len(results) > 0 {
			bookmark = results[0]
		}
	}

	title := TabTitle(tab)
	if bookmark != nil && bookmark.Title != "" {
		title = bookmark.Title
	}

	return TabBookmark{
		Tab:      tab,
		Bookmark: bookmark,
		URL:      url,
		Title:    title,
	}
}

// UpdateBookmark renames a bookmark
func (m *Manager) UpdateBookmark(ctx context.Context, id, title string) Result {
	node, err := m.store.Update(ctx, id, title)
	if err != nil {
		LogError("Failed to update bookmark %s: %v", id, err)
		return Result{Success: false, Message: MessageError}
	}
	return Result{Success: true, Message: MessageUpdated, Bookmark: node}
}

// CreateBookmark adds a bookmark to the default folder
func (m *Manager) CreateBookmark(ctx context.Context, title, url string) Result {
	tree, err := m.store.Tree(ctx)
	if err != nil {
		LogError("Failed to create bookmark: %v", err)
		return Result{Success: false, Message: MessageError}
	}

	parentID := defaultFolderID(tree)
	if parentID == "" {
		return Result{Success: false, Message: MessageNoDefaultFolder}
	}

	node, err := m.store.Create(ctx, CreateDetails{ParentID: parentID, Title: title, URL: url})
	if err != nil {
		LogError("Failed to create bookmark: %v", err)
		return Result{Success: false, Message: MessageError}
	}
	return Result{Success: true, Message: MessageBookmarked, Bookmark: node}
}

func defaultFolderID(tree []*Node) string {
	if len(tree) == 0 || tree[0] == nil || len(tree[0].Children) <= defaultFolderIndex {
		return ""
	}
	folder := tree[0].Children[defaultFolderIndex]
	if folder == nil {
		return ""
	}
	return folder.ID
}

// DeleteBookmark removes a bookmark
func (m *Manager) DeleteBookmark(ctx context.Context, id string) Result {
	if err := m.store.Remove(ctx, id); err != nil {
		LogError("Failed to remove bookmark %s: %v", id, err)
		return Result{Success: false, Message: MessageError}
	}
	return Result{Success: true, Message: MessageRemoved}
}

// AddTag appends tag to a bookmark's title unless it is already there
func (m *Manager) AddTag(ctx context.Context, id, tag string) Result {
	node, err := m.store.Get(ctx, id)
	if err != nil {
		LogError("Failed to read bookmark %s: %v", id, err)
		return Result{Success: false, Message: MessageError}
	}

	tag = AddTagPrefix(tag)
	for _, existing := range ExtractTags(node.Title) {
		if existing == tag {
			return Result{Success: true, Message: MessageUpdated, Bookmark: node}
		}
	}

	return m.UpdateBookmark(ctx, id, AddTagToTitle(node.Title, tag))
}

// RemoveTag removes tag from a bookmark's title
func (m *Manager) RemoveTag(ctx context.Context, id, tag string) Result {
	node, err := m.store.Get(ctx, id)
	if err != nil {
		LogError("Failed to read bookmark %s: %v", id, err)
		return Result{Success: false, Message: MessageError}
	}

	return m.UpdateBookmark(ctx, id, removeTagToken(node.Title, AddTagPrefix(tag)))
}

// GenerateTagSuggestions returns the known tags containing input, minus the
// ones already in current
func (m *Manager) GenerateTagSuggestions(ctx context.Context, input string, current []string) []string {
	if input == "" {
		return []string{}
	}

	nodes, err := m.store.Search(ctx, SearchQuery{})
	if err != nil {
		LogError("Failed to generate tag suggestions: %v", err)
		return []string{}
	}

	query := strings.ToLower(RemoveTagPrefix(input))
	var found []string
	for _, n := range nodes {
		for _, tag := range ExtractTags(n.Title) {
			if strings.Contains(strings.ToLower(RemoveTagPrefix(tag)), query) {
				found = append(found, tag)
			}
		}
	}

	selected := make(map[string]bool, len(current))
	for _, tag := range current {
		selected[tag] = true
	}

	suggestions := []string{}
	for _, tag := range MergeTags(found, nil) {
		if !selected[tag] {
			suggestions = append(suggestions, tag)
		}
	}
	return suggestions
}

// Entries returns the whole tree flattened, or nil if the store fails
func (m *Manager) Entries(ctx context.Context) []Entry {
	tree, err := m.store.Tree(ctx)
	if err != nil {
		LogError("Failed to read bookmark tree: %v", err)
		return nil
	}
	return Flatten(tree, nil, 0)
}

// Leaves returns every bookmark with a URL, or nil if the store fails
func (m *Manager) Leaves(ctx context.Context) []*Node {
	tree, err := m.store.Tree(ctx)
	if err != nil {
		LogError("Failed to read bookmark tree: %v", err)
		return nil
	}
	return FlattenLeaves(tree)
}
