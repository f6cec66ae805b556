package service

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/srctools/pyrewrite-go/analyzers"
	"github.com/srctools/pyrewrite-go/syntax"
	"github.com/srctools/pyrewrite-go/transformers"
)

// Service exposes the analyze and refactor operations to a hosting
// framework. Each call parses its own tree; the only state shared
// between calls is the rule registry, which is read-only after
// Initialize.
type Service struct {
	// RulesPath optionally points at a TOML file with declarative
	// rules, loaded during Initialize.
	RulesPath string

	log      zerolog.Logger
	analyzer *analyzers.TreeAnalyzer
	engine   *transformers.Engine

	initialized bool
}

// New returns a Service with the built-in rules registered.
func New(log zerolog.Logger) *Service {
	return &Service{
		log:      log,
		analyzer: analyzers.NewTreeAnalyzer("pyrewrite"),
		engine:   transformers.NewEngine("pyrewrite"),
	}
}

// Initialize loads the declarative rule registry. It is idempotent:
// calling it again is a no-op.
func (s *Service) Initialize() error {
	if s.initialized {
		return nil
	}

	if s.RulesPath != "" {
		f, err := os.Open(s.RulesPath)
		if err != nil {
			return err
		}
		defer f.Close()

		metas, err := analyzers.LoadRules(f)
		if err != nil {
			return err
		}
		for _, m := range metas.Rules {
			s.analyzer.RegisterRule(m.Rule())
		}
		s.log.Debug().Int("rules", len(metas.Rules)).Str("path", s.RulesPath).Msg("loaded rule registry")
	}

	s.initialized = true
	return nil
}

// Shutdown releases resources. Idempotent, and safe to call without a
// prior Initialize.
func (s *Service) Shutdown() error {
	if !s.initialized {
		return nil
	}
	s.log.Debug().Msg("shut down")
	return nil
}

// AnalyzeCode parses source and returns newline-joined finding
// messages, "No issues found" when there are none, or a single
// "Analysis error: ..." string on failure. It never returns an error to
// the caller.
func (s *Service) AnalyzeCode(ctx context.Context, source string) string {
	tree, err := syntax.Parse(ctx, []byte(source))
	if err != nil {
		s.log.Debug().Err(err).Msg("analysis failed")
		return "Analysis error: " + err.Error()
	}

	findings, err := s.analyzer.Run(tree)
	if err != nil {
		s.log.Debug().Err(err).Msg("analysis failed")
		return "Analysis error: " + err.Error()
	}
	if len(findings) == 0 {
		return "No issues found"
	}

	messages := make([]string, len(findings))
	for i, f := range findings {
		messages[i] = f.Message
	}
	return strings.Join(messages, "\n")
}

// RefactorCode parses source, rewrites print calls to logging calls and
// returns the regenerated text, or a single "Refactoring error: ..."
// string on failure. It never returns an error to the caller.
func (s *Service) RefactorCode(ctx context.Context, source string) string {
	tree, err := syntax.Parse(ctx, []byte(source))
	if err != nil {
		s.log.Debug().Err(err).Msg("refactor failed")
		return "Refactoring error: " + err.Error()
	}

	out, err := s.engine.Run(tree)
	if err != nil {
		s.log.Debug().Err(err).Msg("refactor failed")
		return "Refactoring error: " + err.Error()
	}
	return out
}
