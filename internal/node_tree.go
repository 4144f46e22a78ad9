package internal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrPermanentNode is returned when a write targets the root or one of the
// browser's built-in top-level folders
var ErrPermanentNode = errors.New("cannot modify a permanent bookmark folder")

// nodeTree holds a bookmark tree in memory and implements the write
// semantics shared by the file-backed and fake stores.
type nodeTree struct {
	root   *Node
	nextID int
}

func newNodeTree(root *Node) *nodeTree {
	t := &nodeTree{root: root, nextID: 1}
	for _, e := range Flatten([]*Node{root}, nil, 0) {
		if n, err := strconv.Atoi(e.ID); err == nil && n >= t.nextID {
			t.nextID = n + 1
		}
	}
	return t
}

func (t *nodeTree) find(id string) *Node {
	for _, e := range Flatten([]*Node{t.root}, nil, 0) {
		if e.ID == id {
			return e.Node
		}
	}
	return nil
}

func (t *nodeTree) isPermanent(n *Node) bool {
	return n == t.root || n.ParentID == t.root.ID
}

func (t *nodeTree) search(q SearchQuery) []*Node {
	text := strings.ToLower(q.Text)
	var found []*Node
	for _, e := range Flatten([]*Node{t.root}, nil, 0) {
		if e.Node == t.root {
			continue
		}
		if q.URL != "" && e.URL != q.URL {
			continue
		}
		if text != "" && !strings.Contains(strings.ToLower(e.Title), text) &&
			!strings.Contains(strings.ToLower(e.URL), text) {
			continue
		}
		found = append(found, shallowCopy(e.Node))
	}
	return found
}

func (t *nodeTree) create(d CreateDetails, now time.Time) (*Node, error) {
	parent := t.find(d.ParentID)
	if parent == nil {
		return nil, &NotFoundError{ID: d.ParentID}
	}
	if !parent.IsFolder() {
		return nil, fmt.Errorf("parent %s is not a folder", d.ParentID)
	}

	n := &Node{
		ID:        strconv.Itoa(t.nextID),
		ParentID:  parent.ID,
		Title:     d.Title,
		URL:       d.URL,
		Index:     len(parent.Children),
		DateAdded: now,
	}
	t.nextID++
	parent.Children = append(parent.Children, n)
	return shallowCopy(n), nil
}

func (t *nodeTree) update(id, title string) (*Node, error) {
	n := t.find(id)
	if n == nil {
		return nil, &NotFoundError{ID: id}
	}
	if t.isPermanent(n) {
		return nil, ErrPermanentNode
	}
	n.Title = title
	return shallowCopy(n), nil
}

// remove detaches a node, and with it any subtree
func (t *nodeTree) remove(id string) error {
	n := t.find(id)
	if n == nil {
		return &NotFoundError{ID: id}
	}
	if t.isPermanent(n) {
		return ErrPermanentNode
	}

	parent := t.find(n.ParentID)
	if parent == nil {
		return &NotFoundError{ID: n.ParentID}
	}
	kept := parent.Children[:0]
	for _, c := range parent.Children {
		if c != n {
			kept = append(kept, c)
		}
	}
	parent.Children = kept
	for i, c := range parent.Children {
		c.Index = i
	}
	return nil
}

func shallowCopy(n *Node) *Node {
	c := *n
	c.Children = nil
	return &c
}

// deepCopy clones a subtree, dropping repeated nodes
func deepCopy(n *Node) *Node {
	seen := make(map[*Node]bool)
	var clone func(*Node) *Node
	clone = func(src *Node) *Node {
		seen[src] = true
		c := shallowCopy(src)
		for _, child := range src.Children {
			if child == nil || seen[child] {
				continue
			}
			c.Children = append(c.Children, clone(child))
		}
		return c
	}
	return clone(n)
}
