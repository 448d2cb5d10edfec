// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package snip extracts line ranges from single source files, either
// between literal delimiter strings or between absolute line numbers.
package snip

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// LineSeq is a lazy, finite, forward-only sequence of lines. A sequence is
// restartable only by constructing a new one over a fresh stream.
type LineSeq interface {
	// Next returns the next line and true, or "" and false once exhausted.
	Next() (string, bool)
}

// delimiterSeq yields the lines strictly between the delimiter lines.
type delimiterSeq struct {
	s             *bufio.Scanner
	after, before string
	prepared      bool
	buf           []string
	pos           int
}

// Delimiters returns the lines of r strictly between the first line
// containing after as a substring and the next line containing before, both
// boundary lines excluded and trailing whitespace trimmed. Leading blank
// lines are skipped before the search so reported line numbers stay stable.
// A stream where after never appears, or where nothing after it contains
// before, yields an empty sequence rather than an error.
func Delimiters(r io.Reader, after, before string) LineSeq {
	return &delimiterSeq{s: newScanner(r), after: after, before: before}
}

// newScanner builds a line scanner with headroom for long source lines.
func newScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return s
}

func (d *delimiterSeq) Next() (string, bool) {
	if !d.prepared {
		d.prepare()
	}
	if d.pos >= len(d.buf) {
		return "", false
	}
	line := d.buf[d.pos]
	d.pos++
	return line, true
}

// prepare consumes the stream up to the closing delimiter. The region is
// held in memory because a range with no closing delimiter is empty, which
// is only known once the stream ends.
func (d *delimiterSeq) prepare() {
	d.prepared = true

	leading := true
	started := false
	var region []string
	for d.s.Scan() {
		line := strings.TrimRightFunc(d.s.Text(), unicode.IsSpace)
		if leading {
			if line == "" {
				continue
			}
			leading = false
		}
		if !started {
			if strings.Contains(line, d.after) {
				started = true
			}
			continue
		}
		if strings.Contains(line, d.before) {
			d.buf = region
			return
		}
		region = append(region, line)
	}
	// No closing delimiter: the extracted range is empty.
}

// lineRangeSeq yields the lines strictly between two line numbers.
type lineRangeSeq struct {
	s          *bufio.Scanner
	n          int
	start, end int
}

// LineRange returns the lines of r whose 1-based numbers fall strictly
// between start and end, trailing whitespace trimmed. The range is half-open
// at both ends: the start and end lines themselves are excluded.
func LineRange(r io.Reader, start, end int) LineSeq {
	return &lineRangeSeq{s: newScanner(r), start: start, end: end}
}

func (l *lineRangeSeq) Next() (string, bool) {
	for l.s.Scan() {
		l.n++
		if l.n <= l.start {
			continue
		}
		if l.n >= l.end {
			return "", false
		}
		return strings.TrimRightFunc(l.s.Text(), unicode.IsSpace), true
	}
	return "", false
}
