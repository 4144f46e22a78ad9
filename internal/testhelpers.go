package internal

import (
	"context"
	"errors"
	"time"
)

// ErrFakeStore is the failure injected by FakeStore
var ErrFakeStore = errors.New("fake store failure")

// FakeStore is an in-memory BookmarkStore for tests. Operations named in
// Fail ("search", "get", "tree", "create", "update", "remove") return the
// mapped error.
type FakeStore struct {
	tree *nodeTree
	Fail map[string]error
}

// NewFakeStore builds a store holding a browser-shaped tree:
// root "0" with "Bookmarks bar" (1), "Other bookmarks" (2) and "Mobile bookmarks" (3).
func NewFakeStore() *FakeStore {
	return NewFakeStoreWithRoot(CreateTestRoot())
}

// NewFakeStoreWithRoot builds a store around an arbitrary root node
func NewFakeStoreWithRoot(root *Node) *FakeStore {
	return &FakeStore{tree: newNodeTree(root), Fail: map[string]error{}}
}

// FailAll makes every operation return ErrFakeStore
func (f *FakeStore) FailAll() {
	for _, op := range []string{"search", "get", "tree", "create", "update", "remove"} {
		f.Fail[op] = ErrFakeStore
	}
}

func (f *FakeStore) Search(ctx context.Context, query SearchQuery) ([]*Node, error) {
	if err := f.Fail["search"]; err != nil {
		return nil, err
	}
	return f.tree.search(query), nil
}

func (f *FakeStore) Get(ctx context.Context, id string) (*Node, error) {
	if err := f.Fail["get"]; err != nil {
		return nil, err
	}
	n := f.tree.find(id)
	if n == nil {
		return nil, &NotFoundError{ID: id}
	}
	return shallowCopy(n), nil
}

func (f *FakeStore) Tree(ctx context.Context) ([]*Node, error) {
	if err := f.Fail["tree"]; err != nil {
		return nil, err
	}
	return []*Node{deepCopy(f.tree.root)}, nil
}

func (f *FakeStore) Create(ctx context.Context, details CreateDetails) (*Node, error) {
	if err := f.Fail["create"]; err != nil {
		return nil, err
	}
	return f.tree.create(details, time.Now())
}

func (f *FakeStore) Update(ctx context.Context, id, title string) (*Node, error) {
	if err := f.Fail["update"]; err != nil {
		return nil, err
	}
	return f.tree.update(id, title)
}

func (f *FakeStore) Remove(ctx context.Context, id string) error {
	if err := f.Fail["remove"]; err != nil {
		return err
	}
	return f.tree.remove(id)
}

// CreateTestRoot returns a tree shaped like the browser's:
//
//	0
//	├── 1 Bookmarks bar
//	│   ├── 4 Go @lang @dev        https://go.dev
//	│   └── 5 Reading
//	│       └── 6 Rust book @lang  https://doc.rust-lang.org/book
//	├── 2 Other bookmarks
//	│   └── 7 News @daily          https://news.ycombinator.com
//	└── 3 Mobile bookmarks
func CreateTestRoot() *Node {
	return &Node{ID: "0", Children: []*Node{
		{ID: "1", ParentID: "0", Title: "Bookmarks bar", Index: 0, Children: []*Node{
			{ID: "4", ParentID: "1", Title: "Go @lang @dev", URL: "https://go.dev", Index: 0},
			{ID: "5", ParentID: "1", Title: "Reading", Index: 1, Children: []*Node{
				{ID: "6", ParentID: "5", Title: "Rust book @lang", URL: "https://doc.rust-lang.org/book", Index: 0},
			}},
		}},
		{ID: "2", ParentID: "0", Title: "Other bookmarks", Index: 1, Children: []*Node{
			{ID: "7", ParentID: "2", Title: "News @daily", URL: "https://news.ycombinator.com", Index: 0},
		}},
		{ID: "3", ParentID: "0", Title: "Mobile bookmarks", Index: 2},
	}}
}

// CreateTestEntries flattens CreateTestRoot
func CreateTestEntries() []Entry {
	return Flatten([]*Node{CreateTestRoot()}, nil, 0)
}
