// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/snippet-engine/internal/index"
	"github.com/pdiddy/snippet-engine/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Ingest scan manifests into a queryable snippet database",
	Long: `Index loads the JSON manifests a scan produced into a SQLite database.
Without filters it ingests every .json manifest in --manifest-dir. With any
of --book, --tag, or --language it queries the database instead and prints
the matching markers as path:line records.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		manifestDir, _ := cmd.Flags().GetString("manifest-dir")
		book, _ := cmd.Flags().GetString("book")
		tag, _ := cmd.Flags().GetString("tag")
		language, _ := cmd.Flags().GetString("language")
		maxResults, _ := cmd.Flags().GetInt("max-results")

		store, err := index.Open(types.IndexConfig{
			DBPath:      dbPath,
			ManifestDir: manifestDir,
			MaxResults:  maxResults,
		})
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cmd.Context()
		if book == "" && tag == "" && language == "" {
			n, err := store.IngestManifests(ctx, manifestDir)
			if err != nil {
				return err
			}
			fmt.Printf("Ingested %d matches into %s\n", n, dbPath)
			return nil
		}

		results, err := store.Query(ctx, index.QueryOptions{
			Book:       book,
			Tag:        tag,
			Language:   language,
			MaxResults: maxResults,
		})
		if err != nil {
			return err
		}
		for _, m := range results {
			fmt.Printf("%s:%d  {{%s}}\n", m.Path, m.Line, m.FqTag)
		}
		fmt.Printf("%d matches\n", len(results))
		return nil
	},
}

func init() {
	indexCmd.Flags().String("db", "snippets.db", "SQLite database file")
	indexCmd.Flags().String("manifest-dir", ".", "directory holding scan manifests to ingest")
	indexCmd.Flags().String("book", "", "filter by book")
	indexCmd.Flags().String("tag", "", "filter by tag")
	indexCmd.Flags().String("language", "", "filter by language (extension without dot)")
	indexCmd.Flags().Int("max-results", 50, "maximum number of query results")

	rootCmd.AddCommand(indexCmd)
}
