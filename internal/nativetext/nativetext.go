// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package nativetext parses exported quiz-result documents whose text layer
// survives extraction. Each question is introduced by a score header
// ("1 / 1 pont 3. kérdés"); the lines that follow are classified into
// question text and options by a small line-state machine.
package nativetext

import (
	"regexp"
	"strings"

	"github.com/pdiddy/quizbank/internal/options"
	"github.com/pdiddy/quizbank/pkg/types"
)

var blockHeader = regexp.MustCompile(`\d+ / \d+ pont \d+\. kérdés`)

const (
	// forcedMarker opens the trailing "correct answers" section of a block.
	forcedMarker = "Helyes válaszok"
	// correctMarker and selectedMarker label an option inline.
	correctMarker  = "Helyes"
	selectedMarker = "Megadott válasz"
)

// blockTerminators end a block early: the results summary and the
// navigation breadcrumb.
var blockTerminators = []string{"Kvízeredm", "Kezdőlap"}

// Parse splits text into question blocks and parses each one. Text before
// the first header is discarded.
func Parse(text string) []types.RawQuestion {
	blocks := SplitBlocks(text)
	out := make([]types.RawQuestion, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, ParseBlock(b))
	}
	return out
}

// SplitBlocks cuts text immediately before every header match and returns
// the segments that start with a header.
func SplitBlocks(text string) []string {
	locs := blockHeader.FindAllStringIndex(text, -1)
	blocks := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		blocks = append(blocks, text[loc[0]:end])
	}
	return blocks
}

// lineState is the position of the line walker within a block.
type lineState int

const (
	stateQuestion lineState = iota // before the first option
	stateOptions                   // inside the option list
	stateForced                    // after the "correct answers" marker
)

// line carries the classification signals of one body line.
type line struct {
	text      string
	twoSpace  bool
	correct   bool
	hasMarker bool
	blank     bool
}

func classify(raw string) line {
	leading := len(raw) - len(strings.TrimLeft(raw, " "))
	correct := strings.Contains(raw, correctMarker)
	return line{
		text:      raw,
		twoSpace:  leading == 2,
		correct:   correct,
		hasMarker: correct || strings.Contains(raw, selectedMarker),
		blank:     strings.TrimSpace(raw) == "",
	}
}

// isOptionStart reports whether l opens a new option.
func isOptionStart(state lineState, prevBlank bool, l line) bool {
	switch state {
	case stateQuestion:
		return l.twoSpace || l.hasMarker
	case stateOptions:
		return l.twoSpace || (prevBlank && l.text != "")
	}
	return false
}

// isInlineCorrection reports whether l is a status line that belongs to the
// option directly above it rather than starting a new one.
func isInlineCorrection(state lineState, prevBlank bool, current string, l line) bool {
	return state == stateOptions && !prevBlank && current != "" && !l.twoSpace && l.correct
}

func terminates(raw string) bool {
	for _, t := range blockTerminators {
		if strings.Contains(raw, t) {
			return true
		}
	}
	return false
}

// blockParser accumulates the question and options of a single block.
type blockParser struct {
	state     lineState
	prevBlank bool

	question []string
	opts     []types.Option

	current        string
	currentCorrect bool
	hasCurrent     bool
}

func (p *blockParser) flush() {
	if p.hasCurrent {
		p.opts = append(p.opts, types.Option{Text: p.current, Correct: p.currentCorrect})
	}
	p.current, p.currentCorrect, p.hasCurrent = "", false, false
}

func (p *blockParser) start(text string, correct bool) {
	p.current, p.currentCorrect, p.hasCurrent = text, correct, true
}

func (p *blockParser) feed(raw string) {
	if strings.Contains(raw, forcedMarker) {
		p.flush()
		p.state = stateForced
		p.prevBlank = true
		return
	}

	l := classify(raw)

	if p.state == stateForced {
		// Blank lines inside the forced section never yield an option.
		if l.text != "" {
			p.flush()
			p.start(l.text, true)
		}
		p.prevBlank = l.blank
		return
	}

	if isInlineCorrection(p.state, p.prevBlank, p.current, l) {
		p.current = strings.TrimSpace(p.current + " " + l.text)
		p.currentCorrect = true
		p.prevBlank = l.blank
		return
	}

	optStart := isOptionStart(p.state, p.prevBlank, l)
	switch {
	case p.state == stateQuestion && optStart:
		p.state = stateOptions
		p.start(l.text, l.correct)
	case p.state == stateQuestion:
		p.question = append(p.question, l.text)
	case optStart:
		p.flush()
		p.start(l.text, l.correct)
	case l.text != "":
		if p.current != "" {
			p.current += " " + l.text
		} else {
			p.current = l.text
		}
		p.hasCurrent = true
		if l.correct {
			p.currentCorrect = true
		}
	}
	p.prevBlank = l.blank
}

// ParseBlock parses one header-led block. The header line is kept verbatim.
func ParseBlock(block string) types.RawQuestion {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	header := lines[0]

	p := &blockParser{}
	for _, raw := range lines[1:] {
		if terminates(raw) {
			break
		}
		p.feed(raw)
	}
	p.flush()

	nonEmpty := make([]string, 0, len(p.question))
	for _, q := range p.question {
		if q != "" {
			nonEmpty = append(nonEmpty, q)
		}
	}

	return types.RawQuestion{
		Header:   header,
		Question: strings.TrimSpace(strings.Join(nonEmpty, "\n")),
		Options:  options.Merge(p.opts),
	}
}
