package analyzers

import (
	"sync"

	"github.com/srctools/pyrewrite-go/syntax"
)

// RuleFunc inspects one node and reports zero or more findings.
type RuleFunc func(t *syntax.Tree, id syntax.NodeID, n *syntax.Node) ([]Finding, error)

// Analyzer is implemented by anything that traverses a tree and reports
// findings.
type Analyzer interface {
	String() string
	Run(*syntax.Tree) ([]Finding, error)
	RegisterRule(RuleFunc)
}

// TreeAnalyzer applies registered rules over one pre-order traversal.
// Rules are registered during initialization and read-only afterwards;
// the registry guard exists because one analyzer instance serves many
// calls.
type TreeAnalyzer struct {
	Name string

	mu    sync.RWMutex
	rules []RuleFunc
}

// NewTreeAnalyzer returns an analyzer with the built-in empty-function
// rule registered.
func NewTreeAnalyzer(name string) *TreeAnalyzer {
	a := &TreeAnalyzer{Name: name}
	a.RegisterRule(EmptyFunction)
	return a
}

// String returns the string representation of the analyzer.
func (a *TreeAnalyzer) String() string {
	return a.Name
}

// RegisterRule registers a rule for the analyzer.
func (a *TreeAnalyzer) RegisterRule(rule RuleFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rules = append(a.rules, rule)
}

// Run traverses every node exactly once in document order and applies
// each registered rule. Finding order matches node visitation order. If
// any rule fails, Run returns an *AnalysisError carrying its message.
func (a *TreeAnalyzer) Run(t *syntax.Tree) ([]Finding, error) {
	a.mu.RLock()
	rules := a.rules
	a.mu.RUnlock()

	var findings []Finding
	var ruleErr error
	t.Walk(func(id syntax.NodeID, n *syntax.Node) bool {
		if ruleErr != nil {
			return false
		}
		for _, rule := range rules {
			found, err := rule(t, id, n)
			if err != nil {
				ruleErr = err
				return false
			}
			findings = append(findings, found...)
		}
		return true
	})
	if ruleErr != nil {
		return nil, &AnalysisError{Message: ruleErr.Error()}
	}

	return findings, nil
}
