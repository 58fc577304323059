// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package options normalizes raw answer-option text and merges duplicate
// options into a canonical list.
package options

import (
	"regexp"
	"strings"

	"github.com/pdiddy/quizbank/pkg/types"
)

// statusPhrases matches answer-status labels that quiz exports render next
// to an option ("Helyes!Helyes!", "Helyes válasz", "Megadott válasz").
var statusPhrases = regexp.MustCompile(`(?i)Helyes!?Helyes!?|Helyes válasz|Megadott válasz`)

// noiseTokens are literal leftovers removed after status phrases.
var noiseTokens = []string{"Helyes válaszok", "okok"}

// Clean strips status phrases and noise tokens from raw option text,
// collapses whitespace runs, and trims surrounding spaces and periods.
// It returns "" when nothing remains. Clean(Clean(s)) == Clean(s).
func Clean(raw string) string {
	s := raw
	for {
		next := cleanOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

func cleanOnce(s string) string {
	s = statusPhrases.ReplaceAllString(s, "")
	for _, tok := range noiseTokens {
		s = strings.ReplaceAll(s, tok, "")
	}
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " .")
}

// Merge cleans every option, drops the ones that clean to "", and folds
// duplicates into the position of their first occurrence. A merged option
// is correct if any of its occurrences was.
func Merge(opts []types.Option) []types.Option {
	merged := make([]types.Option, 0, len(opts))
	index := make(map[string]int, len(opts))
	for _, o := range opts {
		text := Clean(o.Text)
		if text == "" {
			continue
		}
		if i, ok := index[text]; ok {
			merged[i].Correct = merged[i].Correct || o.Correct
			continue
		}
		index[text] = len(merged)
		merged = append(merged, types.Option{Text: text, Correct: o.Correct})
	}
	return merged
}
