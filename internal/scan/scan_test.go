// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/snippet-engine/pkg/types"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScanFileValidPair(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "widget.c",
		"#include <stdio.h>\n"+
			"/* {{mybook:widget:begin}} */\n"+
			"int widget(void) {\n"+
			"    return 42;\n"+
			"}\n"+
			"/* {{mybook:widget:end}} */\n")

	var diag bytes.Buffer
	res, found, rejected, err := ScanFile(path, &diag)
	require.NoError(t, err)

	assert.Equal(t, 1, found)
	assert.Equal(t, 0, rejected)
	assert.Empty(t, diag.String())
	require.Len(t, res.Groups["widget"], 2)
	assert.Equal(t, []string{"widget"}, res.Order)

	begin, end := res.Groups["widget"][0], res.Groups["widget"][1]
	assert.Equal(t, types.MarkerBegin, begin.Marker)
	assert.Equal(t, types.MarkerEnd, end.Marker)
	assert.Equal(t, "mybook", begin.Book)
	assert.Equal(t, "c", begin.Language)
	assert.Equal(t, "widget.c", begin.Name)
	assert.Equal(t, dir, begin.Root)
	// Line records the snippet's first line, one past the marker line.
	assert.Equal(t, 3, begin.Line)
	assert.Equal(t, 7, end.Line)
	assert.Equal(t, "{{mybook:widget:begin}}", begin.MatchText)
	assert.Equal(t, "mybook:widget:begin", begin.FqTag)
	assert.Equal(t, 3, begin.MatchStart)
	assert.Equal(t, 26, begin.MatchEnd)
}

func TestScanFileRejectsInvalidGroups(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "two begins no end",
			content: "// {{b:broken:begin}}\n" +
				"x\n" +
				"// {{b:broken:begin}}\n",
		},
		{
			name: "two begins and one end",
			content: "// {{b:broken:begin}}\n" +
				"// {{b:broken:begin}}\n" +
				"// {{b:broken:end}}\n",
		},
		{
			name:    "end only",
			content: "// {{b:broken:end}}\n",
		},
		{
			name: "end before begin",
			content: "// {{b:broken:end}}\n" +
				"x\n" +
				"// {{b:broken:begin}}\n",
		},
		{
			name: "duplicate end",
			content: "// {{b:broken:begin}}\n" +
				"// {{b:broken:end}}\n" +
				"// {{b:broken:end}}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeSource(t, dir, "broken.py", tt.content)

			var diag bytes.Buffer
			res, found, rejected, err := ScanFile(path, &diag)
			require.NoError(t, err)

			assert.Equal(t, 0, found)
			assert.Equal(t, 1, rejected)
			assert.Empty(t, res.Groups)
			assert.Contains(t, diag.String(), "Tag broken has mismatched or missing begin/end marker")
		})
	}
}

func TestScanFileBadTagDoesNotPoisonOthers(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "mixed.py",
		"# {{b:good:begin}}\n"+
			"print('ok')\n"+
			"# {{b:good:end}}\n"+
			"# {{b:bad:begin}}\n")

	var diag bytes.Buffer
	res, found, rejected, err := ScanFile(path, &diag)
	require.NoError(t, err)

	assert.Equal(t, 1, found)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, []string{"good"}, res.Order)
	assert.Contains(t, diag.String(), "Tag bad")
}

func TestScanFileInterleavedTagsGroupCorrectly(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "interleaved.py",
		"# {{b:outer:begin}}\n"+
			"# {{b:inner:begin}}\n"+
			"body\n"+
			"# {{b:inner:end}}\n"+
			"# {{b:outer:end}}\n")

	var diag bytes.Buffer
	res, found, _, err := ScanFile(path, &diag)
	require.NoError(t, err)

	assert.Equal(t, 2, found)
	assert.Equal(t, []string{"outer", "inner"}, res.Order)
	assert.Equal(t, types.MarkerBegin, res.Groups["outer"][0].Marker)
	assert.Equal(t, types.MarkerBegin, res.Groups["inner"][0].Marker)
}

func TestScanTree(t *testing.T) {
	base := t.TempDir()
	outDir := t.TempDir()

	writeSource(t, base, "b/late.py", "# {{b:late:begin}}\nx\n# {{b:late:end}}\n")
	writeSource(t, base, "a/early.c", "/* {{b:early:begin}} */\nx\n/* {{b:early:end}} */\n")
	writeSource(t, base, "a/skipped.txt", "# {{b:skipped:begin}}\n# {{b:skipped:end}}\n")
	writeSource(t, base, "a/empty.h", "nothing tagged here\n")

	var visited []string
	collect := func(res FileResult) error {
		visited = append(visited, res.Name)
		return nil
	}

	var diag bytes.Buffer
	cfg := types.ScanConfig{
		BaseDir:    base,
		OutDir:     outDir,
		Extensions: []string{"c", "h", "py"},
	}
	summary, err := ScanTree(cfg, &diag, collect)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.FilesScanned)
	assert.Equal(t, 2, summary.FilesMatched)
	assert.Equal(t, 2, summary.TagsFound)
	assert.Equal(t, 0, summary.TagsRejected)
	// Lexical depth-first walk order, stable across runs.
	assert.Equal(t, []string{"early.c", "late.py"}, visited)
}

func TestScanTreeAcceptsDottedExtensions(t *testing.T) {
	base := t.TempDir()
	outDir := t.TempDir()
	writeSource(t, base, "f.py", "# {{b:t:begin}}\nx\n# {{b:t:end}}\n")

	cfg := types.ScanConfig{
		BaseDir:    base,
		OutDir:     outDir,
		Extensions: []string{".py"},
	}
	summary, err := ScanTree(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.FilesScanned)
	assert.Equal(t, 1, summary.TagsFound)
}

func TestScanTreeMissingOutDir(t *testing.T) {
	base := t.TempDir()
	writeSource(t, base, "f.py", "# {{b:t:begin}}\nx\n# {{b:t:end}}\n")

	calls := 0
	emitter := func(FileResult) error {
		calls++
		return nil
	}

	cfg := types.ScanConfig{
		BaseDir:    base,
		OutDir:     filepath.Join(base, "does-not-exist"),
		Extensions: []string{"py"},
	}
	_, err := ScanTree(cfg, &bytes.Buffer{}, emitter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must exist")
	assert.Equal(t, 0, calls, "no emitter should run when the out dir is missing")
}
