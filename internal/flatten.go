package internal

// visitSet remembers nodes already emitted by a traversal. Trees come from
// the browser and are not trusted to be acyclic or free of repeated ids.
type visitSet struct {
	nodes map[*Node]bool
	ids   map[string]bool
}

func newVisitSet() *visitSet {
	return &visitSet{
		nodes: make(map[*Node]bool),
		ids:   make(map[string]bool),
	}
}

// add marks n as visited and reports whether it was new
func (v *visitSet) add(n *Node) bool {
	if v.nodes[n] {
		return false
	}
	if n.ID != "" && v.ids[n.ID] {
		LogWarn("Skipping repeated bookmark node %s", n.ID)
		return false
	}
	v.nodes[n] = true
	if n.ID != "" {
		v.ids[n.ID] = true
	}
	return true
}

// childPath returns the path handed to the children of an entry
func childPath(path []string, n *Node) []string {
	next := make([]string, len(path), len(path)+1)
	copy(next, path)
	if n.IsFolder() && n.Title != "" {
		next = append(next, n.Title)
	}
	return next
}

func newEntry(n *Node, path []string, depth int) Entry {
	p := make([]string, len(path))
	copy(p, path)
	return Entry{
		Node:     n,
		IsFolder: n.IsFolder(),
		Path:     p,
		Depth:    depth,
		Expanded: true,
	}
}

// Flatten walks nodes in pre-order and annotates every node with its folder
// path and depth. path and depth describe where nodes sit; pass nil and 0 for
// a tree root. A folder's own title is part of its children's path, not its own.
func Flatten(nodes []*Node, path []string, depth int) []Entry {
	type frame struct {
		node  *Node
		path  []string
		depth int
	}

	push := func(stack []frame, children []*Node, path []string, depth int) []frame {
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: children[i], path: path, depth: depth})
		}
		return stack
	}

	result := []Entry{}
	visited := newVisitSet()
	stack := push(nil, nodes, path, depth)

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node == nil || !visited.add(f.node) {
			continue
		}

		result = append(result, newEntry(f.node, f.path, f.depth))

		if len(f.node.Children) > 0 {
			stack = push(stack, f.node.Children, childPath(f.path, f.node), f.depth+1)
		}
	}

	return result
}

// FlattenLeaves returns only the bookmarks with a URL, in pre-order
func FlattenLeaves(nodes []*Node) []*Node {
	leaves := []*Node{}
	for _, e := range Flatten(nodes, nil, 0) {
		if !e.IsFolder {
			leaves = append(leaves, e.Node)
		}
	}
	return leaves
}

// BookmarksInFolder returns every descendant of folder in pre-order.
//
// With a non-empty pool, children are the pool entries whose ParentID is the
// folder's id, which rebuilds subtrees from an already flattened list.
// Otherwise the folder's own Children are walked and annotated relative to it.
func BookmarksInFolder(folder Entry, pool []Entry) []Entry {
	result := []Entry{}
	if folder.Node == nil {
		return result
	}

	var children func(parent Entry) []Entry
	if len(pool) > 0 {
		byParent := make(map[string][]Entry)
		for _, e := range pool {
			if e.Node == nil {
				continue
			}
			byParent[e.ParentID] = append(byParent[e.ParentID], e)
		}
		children = func(parent Entry) []Entry {
			return byParent[parent.ID]
		}
	} else {
		children = func(parent Entry) []Entry {
			path := childPath(parent.Path, parent.Node)
			kids := make([]Entry, 0, len(parent.Children))
			for _, c := range parent.Children {
				if c != nil {
					kids = append(kids, newEntry(c, path, parent.Depth+1))
				}
			}
			return kids
		}
	}

	visited := newVisitSet()
	visited.add(folder.Node)

	stack := []Entry{}
	pushChildren := func(parent Entry) {
		kids := children(parent)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	pushChildren(folder)

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visited.add(e.Node) {
			continue
		}
		result = append(result, e)

		if e.Node.IsFolder() {
			pushChildren(e)
		}
	}

	return result
}
