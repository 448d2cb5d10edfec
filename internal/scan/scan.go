// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan walks a source tree and collects tagged snippet markers.
//
// Files are visited in the deterministic depth-first lexical order of
// filepath.WalkDir, so emitted artifacts are stable across runs. Each file
// is fully processed before the next opens; there is no shared state
// between files.
package scan

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/snippet-engine/pkg/types"
)

// Summary holds counts from one scan pass.
type Summary struct {
	// FilesScanned counts files whose extension matched the configuration.
	FilesScanned int

	// FilesMatched counts scanned files with at least one valid tag group.
	FilesMatched int

	// TagsFound counts valid tag groups across all files.
	TagsFound int

	// TagsRejected counts tag groups dropped by validation.
	TagsRejected int
}

// FileResult pairs a scanned file with its validated tag groups.
type FileResult struct {
	Path string
	Root string
	Name string

	// Groups holds the surviving groups keyed by tag, begin match first.
	Groups types.TagGroups

	// Order lists tag names in first-seen order, for deterministic output.
	Order []string
}

// Emitter consumes the validated tag groups of one file.
type Emitter func(res FileResult) error

// ScanTree walks cfg.BaseDir, matches markers in every file whose extension
// is configured, validates the per-tag groups, and hands each file's
// surviving groups to the emitters in turn. Progress lines and per-tag
// diagnostics go to w.
//
// cfg.OutDir must already exist; ScanTree reports the condition and aborts
// before touching any source file otherwise. I/O errors are not caught
// locally and end the walk.
func ScanTree(cfg types.ScanConfig, w io.Writer, emitters ...Emitter) (Summary, error) {
	if _, err := os.Stat(cfg.OutDir); err != nil {
		if os.IsNotExist(err) {
			return Summary{}, fmt.Errorf("outdir %s must exist", cfg.OutDir)
		}
		return Summary{}, fmt.Errorf("checking outdir %s: %w", cfg.OutDir, err)
	}

	exts := make(map[string]bool, len(cfg.Extensions))
	for _, e := range cfg.Extensions {
		exts["."+strings.TrimPrefix(e, ".")] = true
	}

	var summary Summary

	err := filepath.WalkDir(cfg.BaseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !exts[filepath.Ext(path)] {
			return nil
		}
		summary.FilesScanned++

		res, found, rejected, err := ScanFile(path, w)
		if err != nil {
			return err
		}
		summary.TagsFound += found
		summary.TagsRejected += rejected
		if len(res.Groups) == 0 {
			return nil
		}
		summary.FilesMatched++

		for _, emit := range emitters {
			if err := emit(res); err != nil {
				return err
			}
		}
		return nil
	})

	return summary, err
}

// ScanFile reads one file, collects its marker matches, and returns the
// validated tag groups along with found/rejected group counts. Invalid
// groups produce a diagnostic on w and are dropped; the file's other tags
// are unaffected.
func ScanFile(path string, w io.Writer) (FileResult, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileResult{}, 0, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	root := filepath.Dir(path)
	name := filepath.Base(path)
	language := strings.TrimPrefix(filepath.Ext(name), ".")

	var matches []types.MarkerMatch
	lr := NewLineReader(f)
	for rec, ok := lr.Next(); ok; rec, ok = lr.Next() {
		m, ok := MatchTag(rec.Text)
		if !ok {
			continue
		}
		matches = append(matches, types.MarkerMatch{
			Path:       path,
			Root:       root,
			Name:       name,
			Language:   language,
			Line:       rec.Number + 1,
			Text:       rec.Text,
			MatchText:  m.Text,
			MatchStart: m.Start,
			MatchEnd:   m.End,
			FqTag:      m.FqTag,
			Book:       m.Book,
			Tag:        m.Tag,
			Marker:     types.Marker(m.Marker),
		})
	}
	if err := lr.Err(); err != nil {
		return FileResult{}, 0, 0, fmt.Errorf("reading %s: %w", path, err)
	}

	groups, order, rejected := groupMatches(matches, w)
	return FileResult{
		Path:   path,
		Root:   root,
		Name:   name,
		Groups: groups,
		Order:  order,
	}, len(order), rejected, nil
}

// groupMatches groups matches by tag across the whole file, preserving
// first-seen tag order and sorting each group by line. Validation requires
// exactly one begin and one end, with the begin no later than the end;
// anything else drops the group with a diagnostic on w.
func groupMatches(matches []types.MarkerMatch, w io.Writer) (types.TagGroups, []string, int) {
	byTag := make(types.TagGroups)
	var seen []string
	for _, m := range matches {
		if _, ok := byTag[m.Tag]; !ok {
			seen = append(seen, m.Tag)
		}
		byTag[m.Tag] = append(byTag[m.Tag], m)
	}

	var kept []string
	rejected := 0
	for _, tag := range seen {
		group := byTag[tag]
		sort.SliceStable(group, func(i, j int) bool { return group[i].Line < group[j].Line })
		if len(group) != 2 || group[0].Marker != types.MarkerBegin || group[1].Marker != types.MarkerEnd {
			fmt.Fprintf(w, "Tag %s has mismatched or missing begin/end marker\n", tag)
			delete(byTag, tag)
			rejected++
			continue
		}
		byTag[tag] = group
		kept = append(kept, tag)
	}
	return byTag, kept, rejected
}
