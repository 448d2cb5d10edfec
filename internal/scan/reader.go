// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"bufio"
	"io"
)

// LineRecord is one physical line of a source file, numbered from 1.
type LineRecord struct {
	Number int
	Text   string
}

// LineReader produces the lines of a stream one at a time, in file order.
// It is forward-only and finite; restarting requires a fresh stream.
type LineReader struct {
	s *bufio.Scanner
	n int
}

// NewLineReader wraps r as a lazy sequence of numbered lines.
func NewLineReader(r io.Reader) *LineReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &LineReader{s: s}
}

// Next returns the next line and true, or a zero record and false once the
// stream is exhausted.
func (lr *LineReader) Next() (LineRecord, bool) {
	if !lr.s.Scan() {
		return LineRecord{}, false
	}
	lr.n++
	return LineRecord{Number: lr.n, Text: lr.s.Text()}, true
}

// Err reports any read error from the underlying stream.
func (lr *LineReader) Err() error {
	return lr.s.Err()
}
