// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data shapes shared across the extraction pipeline.
package types

// PlaceholderExplanation is written into every question whose parser did not
// flag a more specific explanation.
const PlaceholderExplanation = "Magyarázat hamarosan."

// Explanations set by parsers when the source carries no usable solution.
const (
	// NoMarkedSolution marks questions whose source has options but no marked answer.
	NoMarkedSolution = "A PDF-ben ehhez a kérdéshez nem szerepel jelölt megoldás."

	// NoSolution marks free-text questions whose source carries no answer at all.
	NoSolution = "A PDF-ben ehhez a kérdéshez nem szerepel megoldás."
)

// FreeTextAnswer is the sentinel option used when a question has no
// recoverable options.
const FreeTextAnswer = "Szabad szöveges válasz"

// Option is one answer choice of a question.
type Option struct {
	// Text is the normalized option text.
	Text string `json:"text" yaml:"text"`

	// Correct reports whether the source marks this option as a right answer.
	Correct bool `json:"correct" yaml:"correct"`
}

// RawQuestion is a parser's view of one question block, before ids and
// fixups are applied.
type RawQuestion struct {
	// Header is the block header line (e.g. "1 / 1 pont 3. kérdés" or "12.").
	// Used for labeling and header-keyed repairs only.
	Header string `json:"header" yaml:"header"`

	// Question is the newline-joined question text.
	Question string `json:"question" yaml:"question"`

	// Options are the answer choices in source order.
	Options []Option `json:"options" yaml:"options"`

	// Explanation is set when the parser flags a missing solution; empty otherwise.
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// HasCorrect reports whether any option is marked correct.
func (q RawQuestion) HasCorrect() bool {
	for _, o := range q.Options {
		if o.Correct {
			return true
		}
	}
	return false
}

// Question is one entry of the emitted question bank.
type Question struct {
	// ID is "<quiz-label>-q<NN>", assigned in document order.
	ID string `json:"id" yaml:"id"`

	// Question is the question text.
	Question string `json:"question" yaml:"question"`

	// Options are the answer choices; never empty.
	Options []Option `json:"options" yaml:"options"`

	// Explanation is the placeholder or a parser-flagged note.
	Explanation string `json:"explanation" yaml:"explanation"`
}
