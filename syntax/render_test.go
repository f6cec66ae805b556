package syntax

import (
	"context"
	"testing"
)

func TestRenderVerbatim(t *testing.T) {
	// without rewrites the rendered text must be byte-identical
	sources := []string{
		"",
		"x = 1\n",
		"def f(a, b=2):\n    return a + b\n",
		"# leading comment\n\nif x:\n    print(x)  # trailing comment\nelse:\n    pass\n",
		"class C:\n    def m(self):\n        '''doc'''\n        return 1\n",
		"print(1)",
	}

	for _, source := range sources {
		tree, err := Parse(context.Background(), []byte(source))
		if err != nil {
			t.Errorf("source %q: %v", source, err)
			continue
		}
		if got := tree.Render(); got != source {
			t.Errorf("source %q rendered as %q", source, got)
		}
	}
}

func TestRenderPreservesSurroundingText(t *testing.T) {
	source := "a = 1\nprint(a)\nb = 2\n"
	tree, err := Parse(context.Background(), []byte(source))
	if err != nil {
		t.Fatal(err)
	}

	call := findCall(tree, "print")
	if call == NoNode {
		t.Fatal("print call not found")
	}
	var args []NodeID
	if list := tree.ChildByField(call, "arguments"); list != NoNode {
		args = append(args, tree.Node(list).Children...)
	}
	if err := tree.Replace(call, tree.NewCall("logging.info", args)); err != nil {
		t.Fatal(err)
	}

	want := "a = 1\nlogging.info(a)\nb = 2\n"
	if got := tree.Render(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
