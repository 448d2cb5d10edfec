// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/snippet-engine/internal/emit"
	"github.com/pdiddy/snippet-engine/internal/scan"
	"github.com/pdiddy/snippet-engine/pkg/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a source tree for tagged snippet markers",
	Long: `Scan walks a directory tree, finds paired {{book:tag:begin}} and
{{book:tag:end}} markers in files with the configured extensions, validates
each tag's begin/end pair, and emits the selected outputs into --outdir:
minted .tex fragments (--minted), per-file JSON manifests (--json), and an
optional YAML scan report (--report). Tags with mismatched or missing
markers are reported and skipped; scanning continues.

The output directory must already exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := scanConfigFromFlags(cmd)

		var emitters []scan.Emitter
		if cfg.LiteralInclude {
			emitters = append(emitters, emit.LiteralInclude(os.Stdout))
		}
		if cfg.Minted {
			emitters = append(emitters, emit.Minted(cfg.OutDir))
		}
		if cfg.JSON {
			emitters = append(emitters, emit.Manifest(cfg.OutDir, os.Stdout))
		}

		var reporter *emit.Reporter
		if cfg.ReportPath != "" {
			reporter = &emit.Reporter{}
			emitters = append(emitters, reporter.Emitter())
		}

		summary, err := scan.ScanTree(cfg, os.Stdout, emitters...)
		if err != nil {
			return err
		}

		if reporter != nil {
			if err := reporter.Write(cfg.ReportPath, cfg, summary); err != nil {
				return err
			}
		}

		fmt.Printf("Scanned %d files: %d tags found, %d rejected\n",
			summary.FilesScanned, summary.TagsFound, summary.TagsRejected)
		return nil
	},
}

func scanConfigFromFlags(cmd *cobra.Command) types.ScanConfig {
	extensions := stringSetting(cmd, "extensions", "scan.extensions")
	literalinclude, _ := cmd.Flags().GetBool("literalinclude")
	minted, _ := cmd.Flags().GetBool("minted")
	emitJSON, _ := cmd.Flags().GetBool("json")
	report, _ := cmd.Flags().GetString("report")

	return types.ScanConfig{
		BaseDir:        stringSetting(cmd, "dir", "scan.dir"),
		OutDir:         stringSetting(cmd, "outdir", "scan.outdir"),
		Extensions:     strings.Split(extensions, ","),
		LiteralInclude: literalinclude,
		Minted:         minted,
		JSON:           emitJSON,
		ReportPath:     report,
	}
}

func init() {
	scanCmd.Flags().String("dir", ".", "base dir")
	scanCmd.Flags().String("outdir", ".", "output dir for emitted fragments and manifests (must exist)")
	scanCmd.Flags().String("extensions", "c,h,cc,hh,cpp,py", "filename extensions (comma sep) to consider")
	scanCmd.Flags().Bool("literalinclude", false, "emit literalinclude fragments for .rst usage")
	scanCmd.Flags().Bool("minted", false, "emit minted fragments for .tex usage")
	scanCmd.Flags().Bool("json", false, "emit JSON manifests for arbitrary post-processing/debugging")
	scanCmd.Flags().String("report", "", "write a YAML scan report to this path")

	rootCmd.AddCommand(scanCmd)
}
