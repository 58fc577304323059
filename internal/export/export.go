// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the question bank snapshot.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/quizbank/pkg/types"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(s); f {
	case types.FormatJSON, types.FormatYAML, types.FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want json, yaml or xlsx)", s)
}

// WriteFile encodes qs to path, creating parent directories as needed.
func WriteFile(path string, format types.OutputFormat, qs []types.Question) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Encode(f, format, qs); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// Encode writes qs to w in format.
func Encode(w io.Writer, format types.OutputFormat, qs []types.Question) error {
	if qs == nil {
		qs = []types.Question{}
	}
	switch format {
	case types.FormatJSON, "":
		return FormatJSON(qs, w)
	case types.FormatYAML:
		return FormatYAML(qs, w)
	case types.FormatXLSX:
		return FormatXLSX(qs, w)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// FormatJSON writes qs as a 2-space indented array without HTML escaping.
func FormatJSON(qs []types.Question, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(qs)
}

// FormatYAML writes qs as a YAML sequence.
func FormatYAML(qs []types.Question, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(qs)
}

var xlsxHeaders = []string{"id", "question", "option", "correct", "explanation"}

// FormatXLSX writes one row per option to the first sheet of a workbook.
func FormatXLSX(qs []types.Question, w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, h := range xlsxHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	row := 2
	for _, q := range qs {
		for _, o := range q.Options {
			values := []any{q.ID, q.Question, o.Text, o.Correct, q.Explanation}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return fmt.Errorf("writing row %d: %w", row, err)
				}
			}
			row++
		}
	}
	_ = f.SetColWidth(sheet, "A", "A", 16)
	_ = f.SetColWidth(sheet, "B", "C", 60)
	_ = f.SetColWidth(sheet, "D", "E", 22)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write excel: %w", err)
	}
	return nil
}
