package ast

// NodeID indexes a node in its Tree.
type NodeID int

// NoParent is passed to Tree.Add to create a top-level node.
const NoParent NodeID = -1

// Tree is an arena of nodes built from one GEDCOM file.
type Tree struct {
	nodes []Node
	roots []NodeID
}

// Node is one GEDCOM line together with the ids of its subordinate lines.
type Node struct {
	// Identity
	Level int
	XRef  string // "" unless the line declares a record id
	Tag   string
	Value string
	Line  int // 1-based input line

	// Tree structure
	Children []NodeID
}

// NewTree creates a new empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// Add appends n under parent, or as a new root when parent is NoParent,
// and returns its id. Level consistency is the caller's responsibility;
// Build enforces it.
func (t *Tree) Add(parent NodeID, n Node) NodeID {
	id := NodeID(len(t.nodes))
	n.Children = nil
	t.nodes = append(t.nodes, n)
	if parent == NoParent {
		t.roots = append(t.roots, id)
	} else {
		p := &t.nodes[parent]
		p.Children = append(p.Children, id)
	}
	return id
}

// Node returns the node with the given id. The pointer is valid until the
// next call to Add.
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// Roots returns the top-level nodes in document order.
func (t *Tree) Roots() []NodeID {
	return t.roots
}

// Len returns the total number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Children returns the ids of the immediate children of id.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.nodes[id].Children
}

// Child returns the first immediate child of id with the given tag.
func (t *Tree) Child(id NodeID, tag string) (NodeID, bool) {
	for _, c := range t.nodes[id].Children {
		if t.nodes[c].Tag == tag {
			return c, true
		}
	}
	return 0, false
}

// ChildrenByTag returns every immediate child of id with the given tag.
func (t *Tree) ChildrenByTag(id NodeID, tag string) []NodeID {
	var out []NodeID
	for _, c := range t.nodes[id].Children {
		if t.nodes[c].Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits id and its descendants depth-first in document order.
// Returning false from fn skips the node's children.
func (t *Tree) Walk(id NodeID, fn func(id NodeID, n *Node) bool) {
	if !fn(id, &t.nodes[id]) {
		return
	}
	for _, c := range t.nodes[id].Children {
		t.Walk(c, fn)
	}
}

// SubtreeSize returns the number of nodes rooted at id, id included.
func (t *Tree) SubtreeSize(id NodeID) int {
	size := 0
	t.Walk(id, func(NodeID, *Node) bool {
		size++
		return true
	})
	return size
}
