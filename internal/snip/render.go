// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package snip

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the sequence to w, chopping the first dedent bytes off every
// line. When env is non-empty the lines are wrapped in \begin{env} and
// \end{env}; when it is empty no header or footer lines are written at all.
func Render(w io.Writer, seq LineSeq, env string, dedent int) error {
	if env != "" {
		if _, err := fmt.Fprintf(w, "\\begin{%s}\n", env); err != nil {
			return err
		}
	}
	for line, ok := seq.Next(); ok; line, ok = seq.Next() {
		if dedent < len(line) {
			line = line[dedent:]
		} else {
			line = ""
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if env != "" {
		if _, err := fmt.Fprintf(w, "\\end{%s}\n", env); err != nil {
			return err
		}
	}
	return nil
}

// filenameSafe maps characters LaTeX \input cannot digest to hyphens.
var filenameSafe = strings.NewReplacer("_", "-", ".", "-", ":", "-")

// Filename derives the snip output filename: the prefix, the slash-split
// path components, and the optional name joined with hyphens, with every
// underscore, period, and colon replaced by a hyphen, plus the extension.
func Filename(prefix, relPath, name, ext string) string {
	components := append([]string{prefix}, strings.Split(relPath, "/")...)
	if name != "" {
		components = append(components, name)
	}
	base := filenameSafe.Replace(strings.Join(components, "-"))
	return base + "." + ext
}
