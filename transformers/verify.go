package transformers

import (
	"context"
	"fmt"

	"github.com/srctools/pyrewrite-go/syntax"
)

// VerifyRoundTrip re-parses regenerated source and reports an error if
// the rewrite produced syntactically invalid text.
func VerifyRoundTrip(source string) error {
	_, err := syntax.Parse(context.Background(), []byte(source))
	if err != nil {
		return fmt.Errorf("regenerated source does not parse: %v", err)
	}
	return nil
}
