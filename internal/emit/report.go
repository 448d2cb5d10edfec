// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/snippet-engine/internal/scan"
	"github.com/pdiddy/snippet-engine/pkg/types"
)

// ScanReport is the on-disk record of one scan pass: the configuration that
// produced it, the per-file tag census, and summary counts. A build can
// archive it next to the emitted fragments and reload it later without
// re-scanning.
type ScanReport struct {
	Config  ReportConfig  `yaml:"config"`
	Files   []FileReport  `yaml:"files,omitempty"`
	Summary ReportSummary `yaml:"summary"`
}

// ReportConfig stores the scan parameters in a serializable form.
type ReportConfig struct {
	BaseDir    string   `yaml:"base_dir"`
	OutDir     string   `yaml:"out_dir"`
	Extensions []string `yaml:"extensions"`
}

// FileReport lists the valid tags found in one file, in first-seen order.
type FileReport struct {
	Path string   `yaml:"path"`
	Tags []string `yaml:"tags"`
}

// ReportSummary stores scan statistics and a timestamp.
type ReportSummary struct {
	FilesScanned int       `yaml:"files_scanned"`
	FilesMatched int       `yaml:"files_matched"`
	TagsFound    int       `yaml:"tags_found"`
	TagsRejected int       `yaml:"tags_rejected"`
	Timestamp    time.Time `yaml:"timestamp"`
}

// Reporter accumulates the per-file census during a scan and writes the
// final YAML report.
type Reporter struct {
	files []FileReport
}

// Emitter returns the scan emitter that records each file's valid tags.
func (r *Reporter) Emitter() scan.Emitter {
	return func(res scan.FileResult) error {
		r.files = append(r.files, FileReport{Path: res.Path, Tags: res.Order})
		return nil
	}
}

// Write saves the accumulated report to path.
func (r *Reporter) Write(path string, cfg types.ScanConfig, sum scan.Summary) error {
	rep := ScanReport{
		Config: ReportConfig{
			BaseDir:    cfg.BaseDir,
			OutDir:     cfg.OutDir,
			Extensions: cfg.Extensions,
		},
		Files: r.files,
		Summary: ReportSummary{
			FilesScanned: sum.FilesScanned,
			FilesMatched: sum.FilesMatched,
			TagsFound:    sum.TagsFound,
			TagsRejected: sum.TagsRejected,
			Timestamp:    time.Now(),
		},
	}

	data, err := yaml.Marshal(&rep)
	if err != nil {
		return fmt.Errorf("marshaling scan report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReport loads a previously written scan report.
func ReadReport(path string) (*ScanReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scan report: %w", err)
	}
	var rep ScanReport
	if err := yaml.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("parsing scan report: %w", err)
	}
	return &rep, nil
}
