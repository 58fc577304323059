// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocrtext

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/quizbank/pkg/types"
)

// PageImager renders each page of a PDF to PNG and hands it to fn in page
// order. Rendering stops at the first error returned by fn.
type PageImager interface {
	EachPageImage(pdfPath string, dpi float64, fn func(page int, png []byte) error) error
}

// Transcriber turns one page image into free text.
type Transcriber interface {
	Transcribe(png []byte, lang string) (string, error)
}

// Strategy parses scanned quiz PDFs by rendering and transcribing every page.
type Strategy struct {
	imager      PageImager
	transcriber Transcriber
	cfg         types.OCRConfig
	log         *zap.Logger
}

// NewStrategy wires a page imager and an OCR transcriber into a strategy.
func NewStrategy(imager PageImager, transcriber Transcriber, cfg types.OCRConfig, log *zap.Logger) *Strategy {
	if cfg.Banners == nil {
		cfg.Banners = DefaultBanners
	}
	return &Strategy{imager: imager, transcriber: transcriber, cfg: cfg, log: log}
}

// Name identifies the strategy in logs.
func (s *Strategy) Name() string { return "ocr" }

// Parse transcribes every page of pdfPath and parses the joined text. A
// failed transcription aborts the document.
func (s *Strategy) Parse(pdfPath string) ([]types.RawQuestion, error) {
	var pages []string
	err := s.imager.EachPageImage(pdfPath, s.cfg.DPI, func(page int, png []byte) error {
		text, err := s.transcriber.Transcribe(png, s.cfg.Lang)
		if err != nil {
			return fmt.Errorf("transcribing page %d: %w", page+1, err)
		}
		s.log.Debug("page transcribed", zap.String("pdf", pdfPath), zap.Int("page", page+1), zap.Int("chars", len(text)))
		pages = append(pages, text)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("OCR of %s: %w", pdfPath, err)
	}
	return Repair(ParseText(JoinPages(pages), s.cfg.Banners)), nil
}
