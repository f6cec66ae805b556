package syntax

import (
	"fmt"
	"strings"
)

// Tree is an arena of nodes built from one parse. It is mutated in place
// by transforms and discarded after rendering; trees are never shared
// between calls.
type Tree struct {
	src   []byte
	nodes []Node
	root  NodeID
}

// Root returns the module node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Node returns the node stored at id. The pointer is only valid until
// the arena grows; callers that create nodes must re-fetch.
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Source returns the original source bytes the tree was parsed from.
func (t *Tree) Source() []byte {
	return t.src
}

// Text returns the source text a node spans. Synthetic nodes render
// from their parts instead.
func (t *Tree) Text(id NodeID) string {
	n := &t.nodes[id]
	if n.synthetic {
		var b strings.Builder
		t.render(&b, id)
		return b.String()
	}
	return string(t.src[n.StartByte:n.EndByte])
}

// Walk visits every node reachable from the root exactly once in
// pre-order document order. Returning false from fn skips the node's
// children.
func (t *Tree) Walk(fn func(id NodeID, n *Node) bool) {
	t.walk(t.root, fn)
}

func (t *Tree) walk(id NodeID, fn func(NodeID, *Node) bool) {
	if !fn(id, &t.nodes[id]) {
		return
	}
	for i := 0; i < len(t.nodes[id].Children); i++ {
		t.walk(t.nodes[id].Children[i], fn)
	}
}

// ChildByField returns the child of id carrying the given grammar field
// name, or NoNode.
func (t *Tree) ChildByField(id NodeID, field string) NodeID {
	for _, c := range t.nodes[id].Children {
		if t.nodes[c].Field == field {
			return c
		}
	}
	return NoNode
}

// NewCall appends a synthetic call node whose callee renders as the
// given text and whose arguments are existing nodes, reparented under
// the new node. The node is detached until Replace attaches it.
func (t *Tree) NewCall(callee string, args []NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Kind:      KindCall,
		Type:      "call",
		Parent:    NoNode,
		Children:  append([]NodeID(nil), args...),
		synthetic: true,
		callee:    callee,
	})
	for _, a := range args {
		t.nodes[a].Parent = id
	}
	return id
}

// Replace substitutes repl for old in old's parent's child list, making
// repl reachable from the root. The replacement inherits old's byte
// range, position and field so rendering can splice the bytes around
// it, and the ancestor chain is marked rewritten.
func (t *Tree) Replace(old, repl NodeID) error {
	if old == t.root {
		return fmt.Errorf("cannot replace the module root")
	}

	parent := t.nodes[old].Parent
	if parent == NoNode {
		return fmt.Errorf("node %d is already detached", old)
	}

	slot := -1
	for i, c := range t.nodes[parent].Children {
		if c == old {
			slot = i
			break
		}
	}
	if slot < 0 {
		return fmt.Errorf("node %d is not among its parent's children", old)
	}

	t.nodes[repl].Parent = parent
	t.nodes[repl].Field = t.nodes[old].Field
	t.nodes[repl].StartByte = t.nodes[old].StartByte
	t.nodes[repl].EndByte = t.nodes[old].EndByte
	t.nodes[repl].Start = t.nodes[old].Start

	t.nodes[parent].Children[slot] = repl
	t.nodes[old].Parent = NoNode

	for p := parent; p != NoNode; p = t.nodes[p].Parent {
		t.nodes[p].rewritten = true
	}
	return nil
}
