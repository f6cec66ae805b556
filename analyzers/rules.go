package analyzers

import (
	"fmt"

	"github.com/srctools/pyrewrite-go/syntax"
)

// EmptyFunction flags function definitions whose body has no effective
// statements: only pass statements, bare ellipsis expressions, or
// comments.
func EmptyFunction(t *syntax.Tree, id syntax.NodeID, n *syntax.Node) ([]Finding, error) {
	if n.Kind != syntax.KindFunctionDef {
		return nil, nil
	}

	name := t.ChildByField(id, "name")
	body := t.ChildByField(id, "body")
	if name == syntax.NoNode || body == syntax.NoNode {
		return nil, fmt.Errorf("malformed function definition at line %d", n.Start.Row+1)
	}
	if !emptyBody(t, body) {
		return nil, nil
	}

	return []Finding{{
		Message: fmt.Sprintf("Empty function found: %s", t.Text(name)),
		Line:    int(n.Start.Row) + 1,
		Column:  int(n.Start.Column) + 1,
	}}, nil
}

func emptyBody(t *syntax.Tree, body syntax.NodeID) bool {
	for _, c := range t.Node(body).Children {
		switch t.Node(c).Kind {
		case syntax.KindPass, syntax.KindComment:
		case syntax.KindExpressionStatement:
			if !bareEllipsis(t, c) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func bareEllipsis(t *syntax.Tree, stmt syntax.NodeID) bool {
	children := t.Node(stmt).Children
	return len(children) == 1 && t.Node(children[0]).Kind == syntax.KindEllipsis
}
