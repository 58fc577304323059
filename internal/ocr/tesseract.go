// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ocr transcribes page images with tesseract.
package ocr

import (
	"bytes"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/pdiddy/quizbank/internal/container"
	"github.com/pdiddy/quizbank/pkg/types"
)

// detectFunc resolves a runtime; replaced in tests.
type detectFunc func(kind string, tool container.Tool) (container.Runtime, error)

// Tesseract runs `tesseract stdin stdout -l <lang>` on the configured
// runtime. The runtime is detected on first use, so documents that never
// need OCR never require tesseract.
type Tesseract struct {
	kind   string
	tool   container.Tool
	detect detectFunc
	log    *zap.Logger

	once sync.Once
	rt   container.Runtime
	err  error
}

// NewTesseract returns a transcriber for cfg.
func NewTesseract(cfg types.OCRConfig, log *zap.Logger) *Tesseract {
	return &Tesseract{
		kind:   cfg.Runtime,
		tool:   container.Tool{Binary: cfg.Binary, Image: cfg.Image},
		detect: container.DetectRuntime,
		log:    log,
	}
}

func (t *Tesseract) runtime() (container.Runtime, error) {
	t.once.Do(func() {
		t.rt, t.err = t.detect(t.kind, t.tool)
		if t.err != nil {
			t.err = fmt.Errorf("locating tesseract: %w", t.err)
			return
		}
		if err := t.rt.ImageExists(); err != nil {
			t.log.Warn("tesseract not present locally; first run may pull it", zap.String("runtime", t.rt.Name()), zap.Error(err))
		}
		t.log.Info("OCR runtime selected", zap.String("runtime", t.rt.Name()))
	})
	return t.rt, t.err
}

// Transcribe feeds png to tesseract and returns the recognised text.
func (t *Tesseract) Transcribe(png []byte, lang string) (string, error) {
	rt, err := t.runtime()
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := rt.Run([]string{"stdin", "stdout", "-l", lang}, bytes.NewReader(png), &out); err != nil {
		return "", err
	}
	return out.String(), nil
}
