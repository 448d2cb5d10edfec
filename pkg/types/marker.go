// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data structures shared across the snippet pipeline.
package types

// Marker distinguishes the two ends of a tagged snippet region.
type Marker string

const (
	MarkerBegin Marker = "begin"
	MarkerEnd   Marker = "end"
)

// MarkerMatch records one {{book:tag:marker}} occurrence found in a scanned
// source file.
type MarkerMatch struct {
	// Path is the file path as visited by the scanner.
	Path string `json:"path" yaml:"path"`

	// Root is the directory containing the file.
	Root string `json:"root" yaml:"root"`

	// Name is the bare filename.
	Name string `json:"name" yaml:"name"`

	// Language is the file extension without the leading dot.
	Language string `json:"language" yaml:"language"`

	// Line is the snippet's first line: the line after the one carrying the
	// marker. Minted emission uses it directly as firstnumber.
	Line int `json:"line" yaml:"line"`

	// Text is the full line the marker appeared on.
	Text string `json:"text" yaml:"text"`

	// MatchText is the matched marker substring, outer braces included.
	MatchText string `json:"match_text" yaml:"match_text"`

	// MatchStart and MatchEnd are byte offsets of the match within Text.
	MatchStart int `json:"match_start" yaml:"match_start"`
	MatchEnd   int `json:"match_end" yaml:"match_end"`

	// FqTag is the text between the outer double braces: book:tag:marker.
	FqTag string `json:"fq_tag" yaml:"fq_tag"`

	Book   string `json:"book" yaml:"book"`
	Tag    string `json:"tag" yaml:"tag"`
	Marker Marker `json:"marker" yaml:"marker"`
}

// TagGroups maps a tag name to its validated matches in line order, begin
// first. Each group holds exactly one begin and one end match.
type TagGroups map[string][]MarkerMatch
