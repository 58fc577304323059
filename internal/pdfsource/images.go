// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfsource

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// Renderer rasterizes PDF pages with MuPDF.
type Renderer struct{}

// EachPageImage renders every page of pdfPath at dpi and calls fn with the
// zero-based page index and the PNG bytes. It stops at the first error.
func (Renderer) EachPageImage(pdfPath string, dpi float64, fn func(page int, png []byte) error) error {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer doc.Close()

	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.ImagePNG(i, dpi)
		if err != nil {
			return fmt.Errorf("rendering page %d: %w", i+1, err)
		}
		if err := fn(i, img); err != nil {
			return err
		}
	}
	return nil
}
