// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/snippet-engine/internal/scan"
)

func scanFixture(t *testing.T, name, content string) scan.FileResult {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	res, _, _, err := scan.ScanFile(path, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestMintedEnv(t *testing.T) {
	tests := []struct {
		language string
		want     string
	}{
		{"c", "ccode*"},
		{"h", "ccode*"},
		{"hh", "ccode*"},
		{"cc", "cppcode*"},
		{"cpp", "cppcode*"},
		{"c++", "cppcode*"},
		{"py", "pycode*"},
		{"rs", "unknownlanguage*"},
		{"", "unknownlanguage*"},
	}
	for _, tt := range tests {
		if got := MintedEnv(tt.language); got != tt.want {
			t.Errorf("MintedEnv(%q) = %q, want %q", tt.language, got, tt.want)
		}
	}
}

func TestMintedWritesFragment(t *testing.T) {
	res := scanFixture(t, "widget.py",
		"import os\n"+
			"# {{mybook:widget_setup:begin}}\n"+
			"def widget():\n"+
			"    return 42\n"+
			"# {{mybook:widget_setup:end}}\n")

	outDir := t.TempDir()
	if err := Minted(outDir)(res); err != nil {
		t.Fatalf("Minted: %v", err)
	}

	// Underscores in the tag become hyphens in the fragment name.
	data, err := os.ReadFile(filepath.Join(outDir, "snip-mybook-widget-setup.tex"))
	if err != nil {
		t.Fatalf("fragment not written: %v", err)
	}

	want := "\\begin{pycode*}{firstnumber=3}\n" +
		"def widget():\n" +
		"    return 42\n" +
		"\\end{pycode*}\n"
	if string(data) != want {
		t.Errorf("fragment = %q, want %q", string(data), want)
	}
}

func TestMintedUnknownLanguage(t *testing.T) {
	res := scanFixture(t, "conf.xyz",
		"; {{mybook:conf:begin}}\n"+
			"key = value\n"+
			"; {{mybook:conf:end}}\n")

	outDir := t.TempDir()
	if err := Minted(outDir)(res); err != nil {
		t.Fatalf("Minted: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "snip-mybook-conf.tex"))
	if err != nil {
		t.Fatalf("fragment not written: %v", err)
	}
	if !bytes.Contains(data, []byte("\\begin{unknownlanguage*}{firstnumber=2}")) {
		t.Errorf("fragment should fall back to the sentinel environment, got %q", data)
	}
}

func TestMintedMultipleTagsOneFile(t *testing.T) {
	res := scanFixture(t, "two.c",
		"/* {{b:one:begin}} */\n"+
			"first\n"+
			"/* {{b:one:end}} */\n"+
			"/* {{b:two:begin}} */\n"+
			"second\n"+
			"/* {{b:two:end}} */\n")

	outDir := t.TempDir()
	if err := Minted(outDir)(res); err != nil {
		t.Fatalf("Minted: %v", err)
	}

	for _, name := range []string{"snip-b-one.tex", "snip-b-two.tex"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected fragment %s: %v", name, err)
		}
	}
}
