package analyzers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/srctools/pyrewrite-go/syntax"
)

// RuleMeta describes a declarative rule read from a rules TOML file.
// NodeType names the grammar construct the rule matches; Message may
// contain a single %s verb filled with the matched node's source text.
type RuleMeta struct {
	IssueCode   string `toml:"issue_code"`
	Category    string `toml:"category"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	NodeType    string `toml:"node_type"`
	Message     string `toml:"message"`
}

type RuleMetas struct {
	Rules []RuleMeta `toml:"rules"`
}

// LoadRules reads a TOML file containing declarative rules and returns
// them sorted by issue code.
func LoadRules(r io.Reader) (RuleMetas, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return RuleMetas{}, err
	}

	var metas RuleMetas
	if err := toml.Unmarshal(content, &metas); err != nil {
		return RuleMetas{}, err
	}

	for _, m := range metas.Rules {
		if m.IssueCode == "" {
			return RuleMetas{}, errors.New("invalid rule: missing issue code")
		}
		if m.NodeType == "" {
			return RuleMetas{}, fmt.Errorf("invalid rule %s: missing node type", m.IssueCode)
		}
		if m.Message == "" {
			return RuleMetas{}, fmt.Errorf("invalid rule %s: missing message", m.IssueCode)
		}
	}

	// sort rules (based on issue code) before returning
	sort.Slice(metas.Rules, func(i, j int) bool {
		return metas.Rules[i].IssueCode < metas.Rules[j].IssueCode
	})

	return metas, nil
}

// Rule converts the declarative metadata into a RuleFunc.
func (m RuleMeta) Rule() RuleFunc {
	return func(t *syntax.Tree, id syntax.NodeID, n *syntax.Node) ([]Finding, error) {
		if n.Type != m.NodeType {
			return nil, nil
		}

		msg := m.Message
		if strings.Contains(msg, "%s") {
			msg = fmt.Sprintf(msg, t.Text(id))
		}

		return []Finding{{
			Message: msg,
			Line:    int(n.Start.Row) + 1,
			Column:  int(n.Start.Column) + 1,
		}}, nil
	}
}

// WriteTOML generates one TOML file per rule under rootDir, named by
// issue code.
func (rm RuleMetas) WriteTOML(rootDir string) error {
	if len(rm.Rules) == 0 {
		return errors.New("no rules to write")
	}

	for _, m := range rm.Rules {
		// the filename is based on the issue code; files cannot be
		// generated for rules with an empty code
		if m.IssueCode == "" {
			return errors.New("invalid issue code. cannot generate toml")
		}

		if _, err := os.Stat(rootDir); err != nil {
			if err := os.Mkdir(rootDir, 0o700); err != nil {
				return err
			}
		}

		filename := fmt.Sprintf("%s.toml", m.IssueCode)
		f, err := os.Create(path.Join(rootDir, filename))
		if err != nil {
			return err
		}

		if err := toml.NewEncoder(f).Encode(m); err != nil {
			f.Close()
			return err
		}

		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}
