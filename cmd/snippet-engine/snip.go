// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/snippet-engine/internal/snip"
	"github.com/pdiddy/snippet-engine/pkg/types"
)

var snipCmd = &cobra.Command{
	Use:   "snip",
	Short: "Extract a subset of lines from one source file",
	Long: `Snip cuts a single range of lines out of one source file, either between
literal delimiter strings (delimiters) or between absolute line numbers
(lines). Both conventions are half-open: the boundary lines themselves are
excluded. The result goes to stdout or to a filename derived from the
snip prefix, the path components, and the optional snippet name.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("No subcommand specified. No processing done.")
	},
}

var snipDelimitersCmd = &cobra.Command{
	Use:   "delimiters",
	Short: "Extract by simple start/end delimiter (literalinclude style)",
	RunE: func(cmd *cobra.Command, args []string) error {
		after, _ := cmd.Flags().GetString("after-string")
		before, _ := cmd.Flags().GetString("before-string")
		return runSnip(cmd, func(r io.Reader) snip.LineSeq {
			return snip.Delimiters(r, after, before)
		})
	},
}

var snipLinesCmd = &cobra.Command{
	Use:   "lines",
	Short: "Extract a range of line numbers (exclusive at both ends)",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, _ := cmd.Flags().GetInt("start-line")
		end, _ := cmd.Flags().GetInt("end-line")
		return runSnip(cmd, func(r io.Reader) snip.LineSeq {
			return snip.LineRange(r, start, end)
		})
	},
}

func runSnip(cmd *cobra.Command, open func(io.Reader) snip.LineSeq) error {
	cfg := snipConfigFromFlags(cmd)

	fullPath := filepath.Join(cfg.BaseDir, cfg.Path)
	in, err := os.Open(fullPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", fullPath, err)
	}
	defer in.Close()

	seq := open(in)
	if cfg.Stdout {
		return snip.Render(os.Stdout, seq, cfg.LatexEnv, cfg.Dedent)
	}

	var b strings.Builder
	if err := snip.Render(&b, seq, cfg.LatexEnv, cfg.Dedent); err != nil {
		return err
	}

	outName := snip.Filename(cfg.SnipPrefix, cfg.Path, cfg.Name, cfg.SnipExtension)
	if err := os.WriteFile(outName, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outName, err)
	}
	return nil
}

func snipConfigFromFlags(cmd *cobra.Command) types.SnipConfig {
	path, _ := cmd.Flags().GetString("path")
	latexEnv, _ := cmd.Flags().GetString("latex-env")
	dedent, _ := cmd.Flags().GetInt("dedent")
	stdout, _ := cmd.Flags().GetBool("stdout")
	name, _ := cmd.Flags().GetString("name")

	return types.SnipConfig{
		BaseDir:       stringSetting(cmd, "dir", "snip.dir"),
		Path:          path,
		LatexEnv:      latexEnv,
		Dedent:        dedent,
		SnipPrefix:    stringSetting(cmd, "snip-prefix", "snip.prefix"),
		SnipExtension: stringSetting(cmd, "snip-extension", "snip.extension"),
		Stdout:        stdout,
		Name:          name,
	}
}

func init() {
	snipCmd.PersistentFlags().String("dir", ".", "base dir")
	snipCmd.PersistentFlags().String("path", "", "path relative to base dir")
	snipCmd.PersistentFlags().String("latex-env", "", "emit as latex with surrounding env")
	snipCmd.PersistentFlags().Int("dedent", 0, "number of characters to chop")
	snipCmd.PersistentFlags().String("snip-prefix", "snip", "prefix of output filename")
	snipCmd.PersistentFlags().String("snip-extension", "tex", "extension of output filename")
	snipCmd.PersistentFlags().Bool("stdout", false, "write to standard output instead of a file")
	snipCmd.PersistentFlags().String("name", "", "name for snippet (should be unique if generating many snippets)")
	snipCmd.MarkPersistentFlagRequired("path")

	snipDelimitersCmd.Flags().String("after-string", "", "start after line containing string")
	snipDelimitersCmd.Flags().String("before-string", "", "end before line containing string")
	snipDelimitersCmd.MarkFlagRequired("after-string")
	snipDelimitersCmd.MarkFlagRequired("before-string")

	snipLinesCmd.Flags().Int("start-line", 0, "start after this line number")
	snipLinesCmd.Flags().Int("end-line", 0, "end before this line number")
	snipLinesCmd.MarkFlagRequired("start-line")
	snipLinesCmd.MarkFlagRequired("end-line")

	snipCmd.AddCommand(snipDelimitersCmd)
	snipCmd.AddCommand(snipLinesCmd)
	rootCmd.AddCommand(snipCmd)
}
