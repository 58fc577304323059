// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package geometry

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/quizbank/pkg/types"
)

var (
	questionHeader  = regexp.MustCompile(`^(\d+)\.\s*(.*)$`)
	trueFalsePrompt = regexp.MustCompile(`(?i)^igaz vagy hamis\?`)
)

// Labels of the two synthesized true/false options.
const (
	optionTrue  = "Igaz"
	optionFalse = "Hamis"
)

// MissingSolution is the option appended when a multiple-choice question
// has neither a highlighted option nor an answer line.
const MissingSolution = "A PDF nem tartalmazza a megoldást."

// block is the run of lines belonging to one numbered question.
type block struct {
	number string
	lines  []Line
}

// splitBlocks groups lines under "<n>." headers. The header remainder
// becomes the first body line; a header with no remainder is kept whole, so
// every header yields a block. Lines before the first header are dropped.
func splitBlocks(lines []Line) []block {
	var blocks []block
	var cur *block
	for _, l := range lines {
		if m := questionHeader.FindStringSubmatch(l.Text); m != nil {
			if cur != nil {
				blocks = append(blocks, *cur)
			}
			seed := l
			if rest := strings.TrimSpace(m[2]); rest != "" {
				seed.Text = rest
			}
			cur = &block{number: m[1], lines: []Line{seed}}
			continue
		}
		if cur != nil {
			cur.lines = append(cur.lines, l)
		}
	}
	if cur != nil {
		blocks = append(blocks, *cur)
	}
	return blocks
}

// blockParts is the classification of a block's lines.
type blockParts struct {
	question    []string
	options     []string
	highlighted []bool
	answer      []string
}

func classifyBlock(lines []Line) blockParts {
	var p blockParts
	inOptions, questionEnded := false, false
	for _, l := range lines {
		text := strings.TrimSpace(l.Text)
		switch {
		case strings.HasPrefix(text, Bullet):
			inOptions = true
			p.options = append(p.options, strings.TrimSpace(strings.TrimLeft(text, Bullet)))
			p.highlighted = append(p.highlighted, l.Highlighted)
		case inOptions, questionEnded:
			p.answer = append(p.answer, text)
		default:
			p.question = append(p.question, text)
			if strings.Contains(text, "?") || strings.HasSuffix(text, "!") {
				questionEnded = true
			}
		}
	}
	return p
}

// startsWithWord reports whether s begins with word (case-insensitive) and
// the next rune, if any, is not part of a word.
func startsWithWord(s, word string) bool {
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, word) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(lower[len(word):])
	if r == utf8.RuneError {
		return true
	}
	return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
}

// trueFalseAnswer returns optionTrue or optionFalse when answer starts with
// the matching word, or "".
func trueFalseAnswer(answer string) string {
	switch {
	case startsWithWord(answer, "igaz"):
		return optionTrue
	case startsWithWord(answer, "hamis"):
		return optionFalse
	}
	return ""
}

// matchesAnswer is the loose answer-to-option match: equality or substring
// containment in either direction, case-insensitive.
func matchesAnswer(option, loweredAnswer string) bool {
	if loweredAnswer == "" {
		return false
	}
	o := strings.ToLower(strings.TrimSpace(option))
	return o == strings.TrimSpace(loweredAnswer) ||
		(o != "" && strings.Contains(loweredAnswer, o)) ||
		strings.Contains(o, loweredAnswer)
}

// resolve turns a classified block into a question with options.
func resolve(header string, p blockParts) types.RawQuestion {
	q := types.RawQuestion{
		Header:   header,
		Question: strings.TrimSpace(strings.Join(p.question, "\n")),
	}
	answer := strings.TrimSpace(strings.Join(p.answer, " "))

	tf := trueFalseAnswer(answer)
	switch {
	case tf != "" || trueFalsePrompt.MatchString(q.Question):
		q.Options = []types.Option{
			{Text: optionTrue, Correct: tf == optionTrue},
			{Text: optionFalse, Correct: tf == optionFalse},
		}
		if tf == "" {
			q.Explanation = types.NoMarkedSolution
			q.Options[0].Correct = true
		}

	case len(p.options) > 0:
		lowered := strings.ToLower(answer)
		matched := false
		for i, text := range p.options {
			correct := p.highlighted[i] || matchesAnswer(text, lowered)
			matched = matched || correct
			q.Options = append(q.Options, types.Option{Text: text, Correct: correct})
		}
		if !matched {
			if answer != "" {
				q.Options = append(q.Options, types.Option{Text: answer, Correct: true})
			} else {
				q.Options = append(q.Options, types.Option{Text: MissingSolution, Correct: true})
				q.Explanation = types.NoMarkedSolution
			}
		}

	default:
		if answer != "" {
			q.Options = []types.Option{{Text: answer, Correct: true}}
		} else {
			q.Options = []types.Option{{Text: types.FreeTextAnswer, Correct: true}}
			q.Explanation = types.NoSolution
		}
	}
	return q
}

// ParseLines splits merged lines into numbered blocks and resolves each one.
// Blank lines are ignored; a block always keeps its header line.
func ParseLines(lines []Line) []types.RawQuestion {
	var out []types.RawQuestion
	for _, b := range splitBlocks(lines) {
		body := make([]Line, 0, len(b.lines))
		for _, l := range b.lines {
			if strings.TrimSpace(l.Text) != "" {
				body = append(body, l)
			}
		}
		out = append(out, resolve(b.number+".", classifyBlock(body)))
	}
	return out
}

// Parse rebuilds lines for every page, merges bullets, and parses blocks.
func Parse(pages []Page, cfg Config) []types.RawQuestion {
	var lines []Line
	for i, p := range pages {
		lines = append(lines, PageLines(p, i, cfg)...)
	}
	return ParseLines(MergeBullets(lines))
}
