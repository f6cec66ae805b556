package transformers

import (
	"github.com/srctools/pyrewrite-go/syntax"
)

// Transform inspects one node and either returns NoNode (no match) or
// the replacement node it attached in the old node's place via
// Tree.Replace.
type Transform func(t *syntax.Tree, id syntax.NodeID, n *syntax.Node) (syntax.NodeID, error)

// RefactorError reports a transformation or regeneration failure.
type RefactorError struct {
	Message string
}

func (e *RefactorError) Error() string {
	return e.Message
}

// Engine applies registered transforms over one pre-order traversal,
// descending into replacement nodes so nested matches are rewritten
// too.
type Engine struct {
	Name       string
	transforms []Transform
}

// NewEngine returns an engine with the built-in print-to-logging
// transform registered.
func NewEngine(name string) *Engine {
	e := &Engine{Name: name}
	e.RegisterTransform(PrintToLogging)
	return e
}

// String returns the string representation of the engine.
func (e *Engine) String() string {
	return e.Name
}

// RegisterTransform registers a transform for the engine.
func (e *Engine) RegisterTransform(tr Transform) {
	e.transforms = append(e.transforms, tr)
}

// Rewrite mutates the tree in place, applying at most one transform per
// node.
func (e *Engine) Rewrite(t *syntax.Tree) error {
	return e.apply(t, t.Root())
}

// Run rewrites the tree, regenerates the source text and verifies the
// result still parses. Non-rewritten code is emitted verbatim.
func (e *Engine) Run(t *syntax.Tree) (string, error) {
	if err := e.apply(t, t.Root()); err != nil {
		return "", &RefactorError{Message: err.Error()}
	}

	out := t.Render()
	if err := VerifyRoundTrip(out); err != nil {
		return "", &RefactorError{Message: err.Error()}
	}

	return out, nil
}

func (e *Engine) apply(t *syntax.Tree, id syntax.NodeID) error {
	for _, tr := range e.transforms {
		repl, err := tr(t, id, t.Node(id))
		if err != nil {
			return err
		}
		if repl != syntax.NoNode {
			id = repl
			break
		}
	}

	// the child list may shrink or swap entries while descendants are
	// rewritten; index through the arena on every step
	for i := 0; i < len(t.Node(id).Children); i++ {
		if err := e.apply(t, t.Node(id).Children[i]); err != nil {
			return err
		}
	}
	return nil
}

// PrintToLogging rewrites calls to the bare name print into calls to
// logging.info, keeping the original arguments in order and discarding
// only the callee identifier.
func PrintToLogging(t *syntax.Tree, id syntax.NodeID, n *syntax.Node) (syntax.NodeID, error) {
	if n.Kind != syntax.KindCall || n.Synthetic() {
		return syntax.NoNode, nil
	}

	callee := t.ChildByField(id, "function")
	if callee == syntax.NoNode || t.Node(callee).Kind != syntax.KindName || t.Text(callee) != "print" {
		return syntax.NoNode, nil
	}

	var args []syntax.NodeID
	if list := t.ChildByField(id, "arguments"); list != syntax.NoNode {
		args = append(args, t.Node(list).Children...)
	}

	repl := t.NewCall("logging.info", args)
	if err := t.Replace(id, repl); err != nil {
		return syntax.NoNode, err
	}
	return repl, nil
}
