// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the snippet-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the snippet-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "snippet-engine",
	Short: "Extract tagged source snippets for typesetting pipelines",
	Long: `snippet-engine pulls tagged fragments out of source trees for book and
documentation builds. Source files carry {{book:tag:begin}} and
{{book:tag:end}} marker comments; scan finds the pairs and emits minted
.tex fragments and JSON manifests, snip cuts a single range out of one
file, and index makes scan manifests queryable.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./snippet-engine.yaml or ~/.config/snippet-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("snippet-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "snippet-engine"))
		}
	}

	viper.SetEnvPrefix("SNIPPET_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting returns the flag value, letting the config file override the
// flag's default when the flag was not given on the command line.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	v, _ := cmd.Flags().GetString(flag)
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
