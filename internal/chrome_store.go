package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// webkitEpochOffset is the number of seconds between 1601-01-01 and the Unix epoch
const webkitEpochOffset = 11644473600

const chromeRootID = "0"

// chromeFile is the on-disk layout of Chrome's "Bookmarks" file
type chromeFile struct {
	Checksum     string      `json:"checksum,omitempty"`
	Roots        chromeRoots `json:"roots"`
	SyncMetadata string      `json:"sync_metadata,omitempty"`
	Version      int         `json:"version"`
}

type chromeRoots struct {
	BookmarkBar *chromeNode `json:"bookmark_bar"`
	Other       *chromeNode `json:"other"`
	Synced      *chromeNode `json:"synced"`
}

// chromeSnapshot is a parsed Bookmarks file. originals keeps the raw nodes
// by id so fields the tree does not model survive a rewrite.
type chromeSnapshot struct {
	tree      *nodeTree
	originals map[string]*chromeNode
	slots     map[string]string

	// file-level fields written back unchanged
	syncMetadata string
	version      int
}

const (
	slotBookmarkBar = "bookmark_bar"
	slotOther       = "other"
	slotSynced      = "synced"
)

type chromeNode struct {
	Children     []*chromeNode     `json:"children,omitempty"`
	DateAdded    string            `json:"date_added"`
	DateLastUsed string            `json:"date_last_used,omitempty"`
	DateModified string            `json:"date_modified,omitempty"`
	GUID         string            `json:"guid"`
	ID           string            `json:"id"`
	MetaInfo     map[string]string `json:"meta_info,omitempty"`
	Name         string            `json:"name"`
	Type         string            `json:"type"`
	URL          string            `json:"url,omitempty"`
}

// ChromeStore is a BookmarkStore over a Chrome profile's "Bookmarks" JSON
// file. Every call re-reads the file so edits made by the browser are seen.
type ChromeStore struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewChromeStore creates a store for the given Bookmarks file
func NewChromeStore(path string) *ChromeStore {
	return &ChromeStore{path: path, now: time.Now}
}

// Path returns the Bookmarks file location
func (s *ChromeStore) Path() string {
	return s.path
}

// Search returns the nodes matching query
func (s *ChromeStore) Search(ctx context.Context, query SearchQuery) ([]*Node, error) {
	snap, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return snap.tree.search(query), nil
}

// Get returns a single node without its children
func (s *ChromeStore) Get(ctx context.Context, id string) (*Node, error) {
	snap, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	n := snap.tree.find(id)
	if n == nil {
		return nil, &NotFoundError{ID: id}
	}
	return shallowCopy(n), nil
}

// Tree returns the whole tree under a single untitled root, the shape the
// browser's bookmarks API hands out
func (s *ChromeStore) Tree(ctx context.Context) ([]*Node, error) {
	snap, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return []*Node{deepCopy(snap.tree.root)}, nil
}

// Create adds a bookmark or, with an empty URL, a folder
func (s *ChromeStore) Create(ctx context.Context, details CreateDetails) (*Node, error) {
	var created *Node
	err := s.modify(ctx, func(tree *nodeTree) error {
		var err error
		created, err = tree.create(details, s.now())
		return err
	})
	return created, err
}

// Update renames a node
func (s *ChromeStore) Update(ctx context.Context, id, title string) (*Node, error) {
	var updated *Node
	err := s.modify(ctx, func(tree *nodeTree) error {
		var err error
		updated, err = tree.update(id, title)
		return err
	})
	return updated, err
}

// Remove deletes a node and its subtree
func (s *ChromeStore) Remove(ctx context.Context, id string) error {
	return s.modify(ctx, func(tree *nodeTree) error {
		return tree.remove(id)
	})
}

func (s *ChromeStore) read(ctx context.Context) (*chromeSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &StorageError{Path: s.path, Op: "read", Err: err}
	}

	var file chromeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &ParseError{Source: "chrome", Key: s.path, Err: err}
	}

	snap := &chromeSnapshot{
		originals:    make(map[string]*chromeNode),
		slots:        make(map[string]string),
		syncMetadata: file.SyncMetadata,
		version:      file.Version,
	}
	root := &Node{ID: chromeRootID}
	slots := []struct {
		name string
		node *chromeNode
	}{
		{slotBookmarkBar, file.Roots.BookmarkBar},
		{slotOther, file.Roots.Other},
		{slotSynced, file.Roots.Synced},
	}
	for _, slot := range slots {
		if slot.node == nil {
			continue
		}
		n := fromChromeNode(slot.node, chromeRootID, len(root.Children), snap.originals)
		root.Children = append(root.Children, n)
		snap.slots[n.ID] = slot.name
	}

	snap.tree = newNodeTree(root)
	return snap, nil
}

func (s *ChromeStore) modify(ctx context.Context, fn func(*nodeTree) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.read(ctx)
	if err != nil {
		return err
	}
	if err := fn(snap.tree); err != nil {
		return err
	}
	return s.write(snap)
}

// write replaces the file atomically. The checksum is left out, which makes
// the browser recompute it instead of rejecting the edit.
func (s *ChromeStore) write(snap *chromeSnapshot) error {
	file := chromeFile{SyncMetadata: snap.syncMetadata, Version: snap.version}
	if file.Version == 0 {
		file.Version = 1
	}
	for _, n := range snap.tree.root.Children {
		cn := toChromeNode(n, snap.originals, s.now())
		switch snap.slots[n.ID] {
		case slotBookmarkBar:
			file.Roots.BookmarkBar = cn
		case slotOther:
			file.Roots.Other = cn
		case slotSynced:
			file.Roots.Synced = cn
		}
	}

	data, err := json.MarshalIndent(file, "", "   ")
	if err != nil {
		return &StorageError{Path: s.path, Op: "encode", Err: err}
	}

	mode := os.FileMode(0600)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".bookmarks-*")
	if err != nil {
		return &StorageError{Path: s.path, Op: "write", Err: err}
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return &StorageError{Path: tmpName, Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &StorageError{Path: tmpName, Op: "write", Err: err}
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return &StorageError{Path: tmpName, Op: "chmod", Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return &StorageError{Path: s.path, Op: "rename", Err: err}
	}

	LogDebug("Wrote %s", s.path)
	return nil
}

func fromChromeNode(cn *chromeNode, parentID string, index int, originals map[string]*chromeNode) *Node {
	originals[cn.ID] = cn
	n := &Node{
		ID:        cn.ID,
		ParentID:  parentID,
		Title:     cn.Name,
		Index:     index,
		DateAdded: fromWebKitTime(cn.DateAdded),
	}
	if cn.Type == "url" {
		n.URL = cn.URL
	}
	for i, child := range cn.Children {
		if child == nil {
			continue
		}
		n.Children = append(n.Children, fromChromeNode(child, cn.ID, i, originals))
	}
	return n
}

func toChromeNode(n *Node, originals map[string]*chromeNode, now time.Time) *chromeNode {
	cn := &chromeNode{
		ID:        n.ID,
		Name:      n.Title,
		DateAdded: toWebKitTime(n.DateAdded),
		Type:      "folder",
	}
	if orig, ok := originals[n.ID]; ok {
		cn.GUID = orig.GUID
		cn.DateLastUsed = orig.DateLastUsed
		cn.DateModified = orig.DateModified
		cn.MetaInfo = orig.MetaInfo
		if orig.Name != n.Title {
			cn.DateModified = toWebKitTime(now)
		}
	} else {
		cn.GUID = uuid.NewString()
	}
	if n.URL != "" {
		cn.Type = "url"
		cn.URL = n.URL
	} else {
		cn.Children = []*chromeNode{}
	}
	for _, child := range n.Children {
		cn.Children = append(cn.Children, toChromeNode(child, originals, now))
	}
	return cn
}

// fromWebKitTime converts Chrome's microseconds-since-1601 timestamps
func fromWebKitTime(s string) time.Time {
	micros, err := strconv.ParseInt(s, 10, 64)
	if err != nil || micros == 0 {
		return time.Time{}
	}
	return time.UnixMicro(micros - webkitEpochOffset*1e6).UTC()
}

func toWebKitTime(t time.Time) string {
	if t.IsZero() {
		return "0"
	}
	return fmt.Sprintf("%d", t.UnixMicro()+webkitEpochOffset*1e6)
}
