// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import "regexp"

// tagPattern recognizes {{book:tag:begin}} / {{book:tag:end}} markers. The
// marker may appear anywhere in a line, typically inside the language's
// comment syntax.
var tagPattern = regexp.MustCompile(`\{\{(\w+):([\w'-]+):(begin|end)\}\}`)

// TagMatch is the result of matching one line against the marker pattern.
type TagMatch struct {
	// Text is the matched substring, outer braces included.
	Text string

	// Start and End are byte offsets of the match within the line.
	Start int
	End   int

	Book   string
	Tag    string
	Marker string

	// FqTag is the text between the outer double braces.
	FqTag string
}

// MatchTag finds the first marker in line. It is pure and stateless; a line
// without a marker yields ok == false.
func MatchTag(line string) (TagMatch, bool) {
	loc := tagPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return TagMatch{}, false
	}
	start, end := loc[0], loc[1]
	return TagMatch{
		Text:   line[start:end],
		Start:  start,
		End:    end,
		Book:   line[loc[2]:loc[3]],
		Tag:    line[loc[4]:loc[5]],
		Marker: line[loc[6]:loc[7]],
		FqTag:  line[start+2 : end-2],
	}, true
}
