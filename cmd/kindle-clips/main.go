// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the kindle-clips CLI.
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

// rootCmd is the base command for the kindle-clips CLI.
var rootCmd = &cobra.Command{
	Use:   "kindle-clips",
	Short: "Convert Kindle clippings into text, org-mode, JSON, or YAML",
	Long: `kindle-clips reads the 'My Clippings.txt' file a Kindle device keeps for
highlights, notes, and bookmarks, and converts it into structured records.

Use 'convert' to render the clips in one of the output formats, and
'inspect' to summarize a file and list the records that could not be
parsed.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./kindle-clips.yaml or ~/.config/kindle-clips/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("kindle-clips")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "kindle-clips"))
		}
	}

	viper.SetEnvPrefix("KINDLE_CLIPS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
