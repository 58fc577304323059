// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package geometry

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/quizbank/pkg/types"
)

// PageSource reads positioned characters and filled rectangles for every
// page of a PDF.
type PageSource interface {
	PageGeometry(pdfPath string) ([]Page, error)
}

// Strategy parses highlighted-answer PDFs from page geometry.
type Strategy struct {
	source PageSource
	cfg    Config
	log    *zap.Logger
}

// NewStrategy builds a geometry strategy from the configured gap threshold
// and highlight colour. Zero values fall back to DefaultConfig.
func NewStrategy(source PageSource, gc types.GeometryConfig, log *zap.Logger) *Strategy {
	cfg := DefaultConfig()
	if gc.GapThreshold > 0 {
		cfg.GapThreshold = gc.GapThreshold
	}
	if len(gc.HighlightColor) > 0 {
		cfg.HighlightColor = gc.HighlightColor
	}
	return &Strategy{source: source, cfg: cfg, log: log}
}

// Name identifies the strategy in logs.
func (s *Strategy) Name() string { return "geometry" }

// Parse reads the page geometry of pdfPath and resolves its questions.
func (s *Strategy) Parse(pdfPath string) ([]types.RawQuestion, error) {
	pages, err := s.source.PageGeometry(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("reading geometry of %s: %w", pdfPath, err)
	}
	s.log.Debug("page geometry loaded", zap.String("pdf", pdfPath), zap.Int("pages", len(pages)))
	return Parse(pages, s.cfg), nil
}
