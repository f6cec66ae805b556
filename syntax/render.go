package syntax

import "strings"

// Render regenerates source text from the tree. Subtrees that were
// never rewritten are emitted verbatim from the original bytes;
// rewritten subtrees splice the bytes between child ranges and recurse.
func (t *Tree) Render() string {
	var b strings.Builder
	b.Grow(len(t.src))

	root := &t.nodes[t.root]
	b.Write(t.src[:root.StartByte])
	t.render(&b, t.root)
	b.Write(t.src[root.EndByte:])

	return b.String()
}

func (t *Tree) render(b *strings.Builder, id NodeID) {
	n := &t.nodes[id]
	switch {
	case n.synthetic:
		b.WriteString(n.callee)
		b.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			t.render(b, c)
		}
		b.WriteByte(')')
	case !n.rewritten:
		b.Write(t.src[n.StartByte:n.EndByte])
	default:
		// named children tile the node with gaps holding punctuation
		// and whitespace; emit the gaps verbatim
		pos := n.StartByte
		for _, c := range n.Children {
			cn := &t.nodes[c]
			if cn.StartByte > pos {
				b.Write(t.src[pos:cn.StartByte])
			}
			t.render(b, c)
			pos = cn.EndByte
		}
		if n.EndByte > pos {
			b.Write(t.src[pos:n.EndByte])
		}
	}
}
