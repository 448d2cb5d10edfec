// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"fmt"
	"io"

	"github.com/pdiddy/snippet-engine/internal/scan"
)

// LiteralInclude is the extension point for Sphinx literalinclude fragment
// emission. The scan flag is accepted but produces no output yet.
// TODO: emit .rst literalinclude directives with :start-after: and
// :end-before: options derived from the marker match texts.
func LiteralInclude(w io.Writer) scan.Emitter {
	warned := false
	return func(res scan.FileResult) error {
		if !warned {
			warned = true
			_, err := fmt.Fprintln(w, "literalinclude output is not yet implemented")
			return err
		}
		return nil
	}
}
