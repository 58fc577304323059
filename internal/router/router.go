// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package router picks the parsing strategy for a quiz PDF from its file
// name.
package router

import (
	"path/filepath"
	"strings"

	"github.com/pdiddy/quizbank/pkg/types"
)

// Strategy turns one PDF into raw questions.
type Strategy interface {
	Name() string
	Parse(pdfPath string) ([]types.RawQuestion, error)
}

// Router dispatches documents to one of three strategies.
type Router struct {
	native   Strategy
	ocr      Strategy
	geometry Strategy

	geometryFingerprints []string
	ocrPrefixes          []string
}

// New returns a router. Fingerprints and prefixes are matched
// case-insensitively.
func New(native, ocr, geometry Strategy, cfg types.RoutingConfig) *Router {
	return &Router{
		native:               native,
		ocr:                  ocr,
		geometry:             geometry,
		geometryFingerprints: lower(cfg.GeometryFingerprints),
		ocrPrefixes:          lower(cfg.OCRPrefixes),
	}
}

func lower(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if s != "" {
			out = append(out, strings.ToLower(s))
		}
	}
	return out
}

// Route returns the strategy for path. A stem containing a geometry
// fingerprint wins over an OCR prefix; anything else is read as native text.
func (r *Router) Route(path string) Strategy {
	name := strings.ToLower(filepath.Base(path))
	stem := strings.TrimSuffix(name, strings.ToLower(filepath.Ext(name)))

	for _, fp := range r.geometryFingerprints {
		if strings.Contains(stem, fp) {
			return r.geometry
		}
	}
	for _, p := range r.ocrPrefixes {
		if strings.HasPrefix(name, p) {
			return r.ocr
		}
	}
	return r.native
}
