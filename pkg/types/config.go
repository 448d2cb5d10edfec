// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ScanConfig holds settings for the tree scanner.
type ScanConfig struct {
	// BaseDir is the root of the source tree to scan.
	BaseDir string `json:"base_dir" yaml:"base_dir"`

	// OutDir is the directory that receives emitted fragments and
	// manifests. It must already exist; the scanner refuses to run
	// otherwise.
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// Extensions lists the filename extensions to consider, with or
	// without the leading dot (default c,h,cc,hh,cpp,py).
	Extensions []string `json:"extensions" yaml:"extensions"`

	// LiteralInclude enables literalinclude fragment emission for .rst
	// usage. Extension point only; currently reported as unimplemented.
	LiteralInclude bool `json:"literalinclude" yaml:"literalinclude"`

	// Minted enables minted .tex fragment emission.
	Minted bool `json:"minted" yaml:"minted"`

	// JSON enables per-file JSON manifest emission.
	JSON bool `json:"json" yaml:"json"`

	// ReportPath, when non-empty, is where the YAML scan report is written.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}

// SnipConfig holds settings for single-file snippet extraction.
type SnipConfig struct {
	// BaseDir is the base directory; Path is resolved against it.
	BaseDir string `json:"base_dir" yaml:"base_dir"`

	// Path is the source file path relative to BaseDir. Its components
	// also feed the derived output filename.
	Path string `json:"path" yaml:"path"`

	// LatexEnv, when non-empty, wraps the rendered lines in
	// \begin{env} / \end{env}. When empty no header or footer is written.
	LatexEnv string `json:"latex_env,omitempty" yaml:"latex_env,omitempty"`

	// Dedent is the number of leading bytes chopped from every line.
	Dedent int `json:"dedent" yaml:"dedent"`

	// SnipPrefix is the prefix of the derived output filename (default "snip").
	SnipPrefix string `json:"snip_prefix" yaml:"snip_prefix"`

	// SnipExtension is the extension of the derived output filename
	// (default "tex").
	SnipExtension string `json:"snip_extension" yaml:"snip_extension"`

	// Stdout writes the rendered snippet to standard output instead of a file.
	Stdout bool `json:"stdout" yaml:"stdout"`

	// Name is an optional snippet name appended to the derived filename.
	// It should be unique when generating many snippets from one file.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// IndexConfig holds settings for the snippet index.
type IndexConfig struct {
	// DBPath is the SQLite database file (default "snippets.db").
	DBPath string `json:"db_path" yaml:"db_path"`

	// ManifestDir is the directory holding scan manifests to ingest.
	ManifestDir string `json:"manifest_dir" yaml:"manifest_dir"`

	// MaxResults is the default maximum number of query results (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
