// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the quizbank CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/quizbank/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the quizbank CLI.
var rootCmd = &cobra.Command{
	Use:   "quizbank",
	Short: "Build a question bank from quiz PDF exports",
	Long: `quizbank reads quiz result PDFs (text exports, scanned pages, and
highlighted-answer handouts) and writes a normalized question bank with one
entry per question, its options, and which options are correct.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./quizbank.yaml or ~/.config/quizbank/quizbank.yaml)")
}

// setDefaults registers every config key so env overrides and Unmarshal
// see it even without a config file.
func setDefaults() {
	d := types.DefaultExtractConfig()
	viper.SetDefault("input", d.Input)
	viper.SetDefault("output", d.Output)
	viper.SetDefault("format", string(d.Format))
	viper.SetDefault("log.env", d.Log.Env)
	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("ocr.lang", d.OCR.Lang)
	viper.SetDefault("ocr.dpi", d.OCR.DPI)
	viper.SetDefault("ocr.runtime", d.OCR.Runtime)
	viper.SetDefault("ocr.binary", d.OCR.Binary)
	viper.SetDefault("ocr.image", d.OCR.Image)
	viper.SetDefault("ocr.banners", d.OCR.Banners)
	viper.SetDefault("geometry.gap_threshold", d.Geometry.GapThreshold)
	viper.SetDefault("geometry.highlight_color", d.Geometry.HighlightColor)
	viper.SetDefault("routing.geometry_fingerprints", d.Routing.GeometryFingerprints)
	viper.SetDefault("routing.ocr_prefixes", d.Routing.OCRPrefixes)
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Ignoring .env:", err)
	}

	setDefaults()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("quizbank")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "quizbank"))
		}
	}

	viper.SetEnvPrefix("QUIZBANK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig unmarshals the merged flag, env, file, and default values.
func loadConfig() (types.ExtractConfig, error) {
	var cfg types.ExtractConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
