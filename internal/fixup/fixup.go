// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fixup fills in answers for known questions whose source documents
// carry no marked solution.
package fixup

import (
	"strings"

	"github.com/pdiddy/quizbank/pkg/types"
)

// rule is one entry of the answer table.
type rule struct {
	name    string
	matches func(question, lower string) bool
	answer  string
}

func containsAll(subs ...string) func(string, string) bool {
	return func(_, lower string) bool {
		for _, s := range subs {
			if !strings.Contains(lower, s) {
				return false
			}
		}
		return true
	}
}

func containsExact(sub string) func(string, string) bool {
	return func(question, _ string) bool { return strings.Contains(question, sub) }
}

// rules are tried in order; the first match wins. Lowercase patterns match
// the lowercased question, the others match it verbatim.
var rules = []rule{
	{
		name:    "recursive-factor-lambda",
		matches: containsAll("rekurzív  lambda", "factor"),
		answer:  "factor = lambda a: 1 if a <= 1 else a * factor(a - 1)",
	},
	{
		name:    "is-odd-lambda",
		matches: containsAll("páratlan voltának", "is_odd"),
		answer:  "is_odd = lambda a: a % 2 == 1",
	},
	{
		name:    "negative-range-step",
		matches: containsExact("range (7, 10, -1)"),
		answer:  "Error, mert nem lehet -1 lépésekkel eljutni 7-ből 10-be",
	},
	{
		name:    "kwargs-receipt",
		matches: containsExact("def a(**b)"),
		answer:  "ár: 123000\n    darab: 2\n    Nincs fizetési mód megadva.",
	},
	{
		name:    "reflection",
		matches: containsAll("milyen feladatokra használtad eddig a pythont"),
		answer:  types.FreeTextAnswer + " (reflexiós kérdés)",
	},
}

// FreeText is the rule name reported when an optionless question gets the
// free-text sentinel.
const FreeText = "free-text"

// Apply returns q with its options replaced when it has no correct option
// and a rule matches.
func Apply(q types.RawQuestion) types.RawQuestion {
	out, _ := ApplyNamed(q)
	return out
}

// ApplyNamed is Apply that also reports which rule fired, or "" when q was
// left alone.
func ApplyNamed(q types.RawQuestion) (types.RawQuestion, string) {
	if q.HasCorrect() {
		return q, ""
	}
	lower := strings.ToLower(q.Question)
	for _, r := range rules {
		if r.matches(q.Question, lower) {
			q.Options = []types.Option{{Text: r.answer, Correct: true}}
			return q, r.name
		}
	}
	if len(q.Options) == 0 {
		q.Options = []types.Option{{Text: types.FreeTextAnswer, Correct: true}}
		return q, FreeText
	}
	return q, ""
}
