package syntax

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// ParseError describes syntactically invalid source.
type ParseError struct {
	Message string
	Line    int // 1-based
	Column  int // 1-based
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Line, e.Column)
}

// Parse builds a Tree from Python source text. It returns a *ParseError
// if the text is not syntactically valid.
func Parse(ctx context.Context, source []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	parsed, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, err
	}
	defer parsed.Close()

	root := parsed.RootNode()
	if root.HasError() {
		return nil, syntaxErrorAt(root)
	}

	t := &Tree{src: source}
	t.root = t.convert(root, "", NoNode)
	return t, nil
}

// syntaxErrorAt locates the first error or missing node under n and
// reports its position.
func syntaxErrorAt(n *sitter.Node) *ParseError {
	bad := firstError(n)
	if bad == nil {
		bad = n
	}

	point := bad.StartPoint()
	msg := "invalid syntax"
	if bad.IsMissing() {
		msg = fmt.Sprintf("missing %q", bad.Type())
	}
	return &ParseError{
		Message: msg,
		Line:    int(point.Row) + 1,
		Column:  int(point.Column) + 1,
	}
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}

// convert copies the parsed node and its named children into the arena.
// The arena may grow during recursion, so nodes are always addressed by
// index rather than held pointers.
func (t *Tree) convert(n *sitter.Node, field string, parent NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Kind:      kindOf(n.Type()),
		Type:      n.Type(),
		Field:     field,
		StartByte: n.StartByte(),
		EndByte:   n.EndByte(),
		Start:     Point{Row: n.StartPoint().Row, Column: n.StartPoint().Column},
		Parent:    parent,
	})

	cursor := sitter.NewTreeCursor(n)
	defer cursor.Close()

	if cursor.GoToFirstChild() {
		for {
			child := cursor.CurrentNode()
			if child.IsNamed() {
				childID := t.convert(child, cursor.CurrentFieldName(), id)
				t.nodes[id].Children = append(t.nodes[id].Children, childID)
			}
			if !cursor.GoToNextSibling() {
				break
			}
		}
	}

	return id
}
