// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrInputNotFound is returned when the input is neither a directory nor a
// PDF file. It wraps fs.ErrNotExist.
var ErrInputNotFound = fmt.Errorf("input not found or not a PDF/dir: %w", fs.ErrNotExist)

var quizNumber = regexp.MustCompile(`Kvíz[- ]?(\d+)`)

// CollectPDFs resolves input to the PDFs to process. A directory yields its
// *.pdf entries (non-recursive, sorted); a .pdf file yields itself.
func CollectPDFs(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, input)
		}
		return nil, fmt.Errorf("reading input %s: %w", input, err)
	}

	if !info.IsDir() {
		if strings.EqualFold(filepath.Ext(input), ".pdf") {
			return []string{input}, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, input)
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", input, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".pdf" {
			continue
		}
		paths = append(paths, filepath.Join(input, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// QuizLabel derives the id prefix of a document from its file name:
// "Kvíz-3.pdf" becomes "kviz-3", anything else is the stem lowercased with
// spaces turned into dashes.
func QuizLabel(path string) string {
	base := filepath.Base(path)
	stem := norm.NFC.String(strings.TrimSuffix(base, filepath.Ext(base)))
	if m := quizNumber.FindStringSubmatch(stem); m != nil {
		return "kviz-" + m[1]
	}
	return strings.ToLower(strings.ReplaceAll(stem, " ", "-"))
}
