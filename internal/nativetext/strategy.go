// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nativetext

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/quizbank/pkg/types"
)

// TextSource returns the text layer of a PDF.
type TextSource interface {
	ExtractText(pdfPath string) (string, error)
}

// Strategy parses quiz exports that carry a usable text layer.
type Strategy struct {
	source TextSource
	log    *zap.Logger
}

// NewStrategy returns a native-text strategy reading from source.
func NewStrategy(source TextSource, log *zap.Logger) *Strategy {
	return &Strategy{source: source, log: log}
}

// Name identifies the strategy in logs.
func (s *Strategy) Name() string { return "native" }

// Parse extracts the text layer of pdfPath and parses its question blocks.
func (s *Strategy) Parse(pdfPath string) ([]types.RawQuestion, error) {
	text, err := s.source.ExtractText(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("reading text of %s: %w", pdfPath, err)
	}
	s.log.Debug("text layer extracted", zap.String("pdf", pdfPath), zap.Int("chars", len(text)))
	return Parse(text), nil
}
