// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ocrtext parses quiz documents that only exist as scanned pages.
// Input is OCR transcription, so indentation is unreliable: blocks are split
// on "<n>. k..." lines and options are assembled from sentence boundaries
// and "helyes" markers instead.
package ocrtext

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/quizbank/pkg/types"
)

var (
	blockStart = regexp.MustCompile(`\n\d+\. k`)
	pageFooter = regexp.MustCompile(`^\d+ of \d+`)
	timestamp  = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2}`)

	markerSearch = regexp.MustCompile(`(?i)helyes`)
	markerLine   = regexp.MustCompile(`(?i)^(?:helyes!?|helyes valasz|delyes valasz)$`)
	markerPhrase = regexp.MustCompile(`(?i)helyes!?|helyes valasz|delyes valasz`)
	residual     = regexp.MustCompile(`(?i)helyes|delyes`)
)

// questionCues mark the line that closes the question text.
var questionCues = []string{"kód", "kell", "mit ", "melyik"}

// DefaultBanners are boilerplate substrings dropped from every block.
var DefaultBanners = []string{"Kviz-12", "module"}

// JoinPages concatenates page transcriptions the way ParseText expects them.
func JoinPages(pages []string) string {
	return strings.Join(pages, "\n\n")
}

// ParseText splits an OCR transcription into question blocks. Lines that
// contain any of banners are treated as boilerplate.
func ParseText(text string, banners []string) []types.RawQuestion {
	var out []types.RawQuestion
	for _, part := range splitBlocks(text) {
		lines := blockLines(part, banners)
		if len(lines) < 2 {
			continue
		}
		header, rest := lines[0], lines[1:]

		qEnd := questionEnd(rest)
		out = append(out, types.RawQuestion{
			Header:   header,
			Question: strings.TrimSpace(strings.Join(rest[:qEnd+1], "\n")),
			Options:  assembleOptions(rest[qEnd+1:]),
		})
	}
	return out
}

// splitBlocks cuts text at every newline followed by "<n>. k" and drops the
// leading segment.
func splitBlocks(text string) []string {
	locs := blockStart.FindAllStringIndex(text, -1)
	parts := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		parts = append(parts, text[loc[0]+1:end])
	}
	return parts
}

func blockLines(part string, banners []string) []string {
	var lines []string
	for _, l := range strings.Split(part, "\n") {
		l = strings.TrimSpace(l)
		if l == "" || isBoilerplate(l, banners) {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

func isBoilerplate(l string, banners []string) bool {
	for _, b := range banners {
		if strings.Contains(l, b) {
			return true
		}
	}
	return pageFooter.MatchString(l) || timestamp.MatchString(l)
}

// questionEnd returns the index of the last question line in rest: the last
// cue line before the first marker, or 0.
func questionEnd(rest []string) int {
	marker := len(rest)
	for i, l := range rest {
		if markerSearch.MatchString(l) {
			marker = i
			break
		}
	}
	end := 0
	for i := 0; i < marker; i++ {
		if isQuestionCue(rest[i]) {
			end = i
		}
	}
	return end
}

func isQuestionCue(l string) bool {
	if strings.Contains(l, "?") {
		return true
	}
	lower := strings.ToLower(l)
	for _, c := range questionCues {
		if strings.Contains(lower, c) {
			return true
		}
	}
	return false
}

// optionBuffer merges wrapped OCR lines into options.
type optionBuffer struct {
	opts        []types.Option
	buf         string
	bufCorrect  bool
	nextCorrect bool
}

func (b *optionBuffer) flush() {
	if b.buf != "" {
		b.opts = append(b.opts, types.Option{Text: strings.TrimSpace(b.buf), Correct: b.bufCorrect})
	}
	b.buf, b.bufCorrect = "", false
}

// continues reports whether line should be appended to the buffer rather
// than start a new option: merging wins unless the buffer ends a sentence
// and line starts with a capital.
func (b *optionBuffer) continues(line string) bool {
	if !strings.HasSuffix(b.buf, ".") && !strings.HasSuffix(b.buf, "?") && !strings.HasSuffix(b.buf, "!") {
		return true
	}
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsLower(r)
}

func (b *optionBuffer) feed(line string) {
	if markerLine.MatchString(line) {
		b.nextCorrect = true
		return
	}

	if markerSearch.MatchString(line) {
		clean := stripMarkers(line)
		if clean != "" {
			b.flush()
			b.opts = append(b.opts, types.Option{Text: clean, Correct: true})
			b.nextCorrect = false
		}
		return
	}

	if b.buf != "" {
		if b.continues(line) {
			b.buf += " " + line
			return
		}
		b.flush()
	}
	b.buf, b.bufCorrect, b.nextCorrect = line, b.nextCorrect, false
}

func assembleOptions(lines []string) []types.Option {
	b := &optionBuffer{}
	for _, l := range lines {
		b.feed(l)
	}
	b.flush()
	return b.opts
}

func stripMarkers(s string) string {
	return strings.Trim(markerPhrase.ReplaceAllString(s, ""), " .|")
}
