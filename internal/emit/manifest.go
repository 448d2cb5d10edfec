// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/snippet-engine/internal/scan"
)

// Depathify flattens a source path into a collision-resistant basename:
// relative path markers are stripped, and underscores and slashes become
// hyphens.
func Depathify(path string) string {
	s := strings.ReplaceAll(path, "../", "")
	s = strings.ReplaceAll(s, "./", "")
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, "/", "-")
	return s
}

// Manifest returns an emitter serializing each file's grouped matches to an
// indented JSON manifest in outDir, named from the flattened source path.
// Each write is announced on w.
func Manifest(outDir string, w io.Writer) scan.Emitter {
	return func(res scan.FileResult) error {
		return WriteManifest(outDir, res, w)
	}
}

// WriteManifest serializes res.Groups to outDir/<depathified>.json.
func WriteManifest(outDir string, res scan.FileResult, w io.Writer) error {
	name := Depathify(filepath.Join(res.Root, res.Name)) + ".json"
	fmt.Fprintf(w, "Writing output to %s\n", name)

	data, err := json.MarshalIndent(res.Groups, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest for %s: %w", res.Path, err)
	}

	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
