// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/quizbank/internal/export"
	"github.com/pdiddy/quizbank/internal/extract"
	"github.com/pdiddy/quizbank/internal/geometry"
	"github.com/pdiddy/quizbank/internal/logging"
	"github.com/pdiddy/quizbank/internal/nativetext"
	"github.com/pdiddy/quizbank/internal/ocr"
	"github.com/pdiddy/quizbank/internal/ocrtext"
	"github.com/pdiddy/quizbank/internal/pdfsource"
	"github.com/pdiddy/quizbank/internal/router"
	"github.com/pdiddy/quizbank/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract questions from quiz PDFs into a snapshot file",
	Long: `Extract reads one PDF or every *.pdf in a directory, picks a parser for
each document from its file name, and writes all questions to a single
snapshot. Text exports are parsed from their text layer, scanned quizzes
are transcribed with tesseract, and highlighted handouts are read from
page geometry.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringP("input", "i", ".", "input PDF file or directory containing PDFs")
	extractCmd.Flags().StringP("output", "o", "questions.json", "output snapshot path")
	extractCmd.Flags().String("format", "json", "output format: json, yaml, or xlsx")

	_ = viper.BindPFlag("input", extractCmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("output", extractCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("format", extractCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(string(cfg.Format))
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log.Env, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	paths, err := extract.CollectPDFs(cfg.Input)
	if err != nil {
		return err
	}

	asm := extract.NewAssembler(newRouter(cfg, log), log)
	qs, res, err := asm.Build(paths, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if err := export.WriteFile(cfg.Output, format, qs); err != nil {
		return err
	}
	log.Info("snapshot written",
		zap.String("path", cfg.Output),
		zap.Int("documents", res.Documents),
		zap.Int("questions", res.Questions),
		zap.Int("fixups", res.Fixups),
		zap.Int("unanswered", res.Unanswered),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d questions to %s\n", len(qs), cfg.Output)
	return nil
}

// newRouter wires the three parsing strategies to their PDF readers.
func newRouter(cfg types.ExtractConfig, log *zap.Logger) *router.Router {
	native := nativetext.NewStrategy(pdfsource.NewTextExtractor(log), log)
	scanned := ocrtext.NewStrategy(pdfsource.Renderer{}, ocr.NewTesseract(cfg.OCR, log), cfg.OCR, log)
	highlighted := geometry.NewStrategy(pdfsource.GeometryReader{}, cfg.Geometry, log)
	return router.New(native, scanned, highlighted, cfg.Routing)
}
