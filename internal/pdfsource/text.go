// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfsource reads the parts of a PDF the parsers need: the text
// layer, rendered page images, and page geometry.
package pdfsource

import (
	"fmt"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// TextExtractor reads the text layer of a PDF. The pure-Go reader is tried
// first; MuPDF takes over when that reader cannot open the file.
type TextExtractor struct {
	log *zap.Logger
}

// NewTextExtractor returns an extractor that logs page failures to log.
func NewTextExtractor(log *zap.Logger) *TextExtractor {
	return &TextExtractor{log: log}
}

// ExtractText returns the page texts of path joined with newlines. Pages
// that fail extraction contribute empty text.
func (e *TextExtractor) ExtractText(path string) (string, error) {
	pages, err := e.pagesPlain(path)
	if err != nil {
		e.log.Debug("falling back to MuPDF", zap.String("pdf", path), zap.Error(err))
		pages, err = e.pagesFitz(path)
		if err != nil {
			return "", fmt.Errorf("extracting text from %s: %w", path, err)
		}
	}
	return strings.Join(pages, "\n"), nil
}

func (e *TextExtractor) pagesPlain(path string) ([]string, error) {
	f, r, err := openPDF(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		text, err := plainText(r.Page(i))
		if err != nil {
			e.log.Warn("page text unavailable", zap.String("pdf", path), zap.Int("page", i), zap.Error(err))
			text = ""
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func (e *TextExtractor) pagesFitz(path string) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			e.log.Warn("page text unavailable", zap.String("pdf", path), zap.Int("page", i+1), zap.Error(err))
			text = ""
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// openPDF wraps pdf.Open, which panics on some malformed trailers.
func openPDF(path string) (f *os.File, r *pdf.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("opening PDF %s: %v", path, p)
		}
	}()
	f, r, err = pdf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	return f, r, nil
}

func plainText(p pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading page: %v", r)
		}
	}()
	if p.V.IsNull() {
		return "", nil
	}
	return p.GetPlainText(pageFonts(p))
}

// fontSource is the part of pdf.Page that lists font resources.
type fontSource interface {
	Fonts() []string
	Font(name string) pdf.Font
}

// pageFonts maps the font resource names of one page to their fonts.
// Resource names are page-local, so the map is never shared across pages.
func pageFonts(p fontSource) map[string]*pdf.Font {
	names := p.Fonts()
	fonts := make(map[string]*pdf.Font, len(names))
	for _, name := range names {
		font := p.Font(name)
		fonts[name] = &font
	}
	return fonts
}
