package analyzers

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Describe renders a rule's markdown description to sanitized HTML.
func (m RuleMeta) Describe() (string, error) {
	// use the Github-flavored Markdown extension
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(m.Description), &buf); err != nil {
		return "", err
	}

	// sanitize the rendered body
	p := bluemonday.UGCPolicy()
	return p.Sanitize(buf.String()), nil
}
