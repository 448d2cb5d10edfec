// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emit renders validated tag groups into output artifacts: minted
// .tex fragments, per-file JSON manifests, and YAML scan reports.
package emit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/snippet-engine/internal/scan"
	"github.com/pdiddy/snippet-engine/internal/snip"
	"github.com/pdiddy/snippet-engine/pkg/types"
)

// mintedEnvs maps a source language (extension without the dot) to its
// LaTeX minted environment.
var mintedEnvs = map[string]string{
	"c":   "ccode",
	"cc":  "cppcode",
	"cpp": "cppcode",
	"c++": "cppcode",
	"py":  "pycode",
	"h":   "ccode",
	"hh":  "ccode",
}

// MintedEnv resolves a language to its starred minted environment. Languages
// outside the table fall back to the unknownlanguage sentinel; resolution
// never fails.
func MintedEnv(language string) string {
	env, ok := mintedEnvs[language]
	if !ok {
		env = "unknownlanguage"
	}
	return env + "*"
}

// Minted returns an emitter writing one snip-<book>-<tag>.tex fragment per
// valid tag group into outDir. Each fragment re-extracts the snippet from
// its source file using the matched marker texts as literal delimiters and
// wraps it in the language's minted environment, numbered from the
// snippet's first source line.
func Minted(outDir string) scan.Emitter {
	return func(res scan.FileResult) error {
		for _, tag := range res.Order {
			group := res.Groups[tag]
			if err := writeMinted(outDir, group[0], group[1]); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeMinted(outDir string, begin, end types.MarkerMatch) error {
	in, err := os.Open(begin.Path)
	if err != nil {
		return fmt.Errorf("reopening %s: %w", begin.Path, err)
	}
	defer in.Close()

	// Underscores stay out of the filename so LaTeX \input accepts it.
	tag := strings.ReplaceAll(begin.Tag, "_", "-")
	name := fmt.Sprintf("snip-%s-%s.tex", begin.Book, tag)
	env := MintedEnv(begin.Language)

	var b strings.Builder
	fmt.Fprintf(&b, "\\begin{%s}{firstnumber=%d}\n", env, begin.Line)
	seq := snip.Delimiters(in, begin.MatchText, end.MatchText)
	for line, ok := seq.Next(); ok; line, ok = seq.Next() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\\end{%s}\n", env)

	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing fragment %s: %w", path, err)
	}
	return nil
}
