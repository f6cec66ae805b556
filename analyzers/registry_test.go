package analyzers

import (
	"context"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/srctools/pyrewrite-go/syntax"
)

func TestLoadRules(t *testing.T) {
	tomlNormal := `
[[rules]]

issue_code = "PYR-W1002"
category = "style"
title = "Global statement"
description = """
## Description
"""
node_type = "global_statement"
message = "Global statement found: %s"

[[rules]]

issue_code = "PYR-W1001"
category = "anti-pattern"
title = "Bare except"
description = """
# Example
"""
node_type = "except_clause"
message = "Except clause found"
`

	expected := RuleMetas{
		Rules: []RuleMeta{
			{
				IssueCode:   "PYR-W1001",
				Category:    "anti-pattern",
				Title:       "Bare except",
				Description: "# Example\n",
				NodeType:    "except_clause",
				Message:     "Except clause found",
			},
			{
				IssueCode:   "PYR-W1002",
				Category:    "style",
				Title:       "Global statement",
				Description: "## Description\n",
				NodeType:    "global_statement",
				Message:     "Global statement found: %s",
			},
		},
	}

	cases := []struct {
		description string
		content     string
		want        RuleMetas
		expectErr   bool
	}{
		{"must load and sort rules by issue code", tomlNormal, expected, false},
		{"must accept an empty file", "", RuleMetas{}, false},
		{"must reject a rule without an issue code", "[[rules]]\nnode_type = \"call\"\nmessage = \"m\"\n", RuleMetas{}, true},
		{"must reject a rule without a node type", "[[rules]]\nissue_code = \"X\"\nmessage = \"m\"\n", RuleMetas{}, true},
		{"must reject a rule without a message", "[[rules]]\nissue_code = \"X\"\nnode_type = \"call\"\n", RuleMetas{}, true},
	}

	for _, tc := range cases {
		got, err := LoadRules(strings.NewReader(tc.content))
		if tc.expectErr {
			if err == nil {
				t.Errorf("description: %s, expected an error", tc.description)
			}
			continue
		}
		if err != nil {
			t.Errorf("description: %s, unexpected error: %v", tc.description, err)
			continue
		}
		if diff := deep.Equal(got, tc.want); diff != nil {
			t.Errorf("description: %s, %s", tc.description, diff)
		}
	}
}

func TestRuleMetaRule(t *testing.T) {
	m := RuleMeta{
		IssueCode: "PYR-W1002",
		NodeType:  "global_statement",
		Message:   "Global statement found: %s",
	}

	a := NewTreeAnalyzer("test")
	a.RegisterRule(m.Rule())

	tree, err := syntax.Parse(context.Background(), []byte("def f():\n    global counter\n    counter = 0\n"))
	if err != nil {
		t.Fatal(err)
	}

	findings, err := a.Run(tree)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"Global statement found: global counter"}
	if diff := deep.Equal(messages(findings), want); diff != nil {
		t.Error(diff)
	}
}

func TestWriteTOML(t *testing.T) {
	metas := RuleMetas{
		Rules: []RuleMeta{
			{IssueCode: "PYR-W1001", NodeType: "except_clause", Message: "Except clause found"},
		},
	}

	dir := path.Join(t.TempDir(), "rules")
	if err := metas.WriteTOML(dir); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(path.Join(dir, "PYR-W1001.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "PYR-W1001") {
		t.Errorf("generated TOML does not carry the issue code: %q", content)
	}

	if err := (RuleMetas{}).WriteTOML(dir); err == nil {
		t.Error("expected writing an empty rule set to fail")
	}
}
