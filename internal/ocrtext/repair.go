// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocrtext

import (
	"strings"

	"github.com/pdiddy/quizbank/pkg/types"
)

// booleanCounterparts pairs a lone negative answer with the positive option
// OCR tends to lose.
var booleanCounterparts = map[string]string{
	"false": "True",
	"hamis": "Igaz",
}

// override replaces a question that OCR cannot recover with a verified copy.
type override struct {
	headerPrefix string
	question     string
	options      []types.Option
}

// overrides is the closed list of hand-verified OCR replacements.
var overrides = []override{
	{
		headerPrefix: "16. kérdés",
		question:     "Mit ad vissza az alábbi kód?\ndf = pd.DataFrame({'A': [1, 2, 3], 'B': [4, 5, 6]})\nprint(df.iloc[1])",
		options: []types.Option{
			{Text: "A második oszlop értékeit.", Correct: false},
			{Text: "A sorindexet.", Correct: false},
			{Text: "A második sor értékeit.", Correct: true},
			{Text: "Hibát ad, mert hibás a szintaxis.", Correct: false},
		},
	},
}

// Repair fixes the known OCR failure modes in place and returns qs.
func Repair(qs []types.RawQuestion) []types.RawQuestion {
	for i := range qs {
		q := &qs[i]

		if len(q.Options) == 1 {
			if pos, ok := booleanCounterparts[strings.ToLower(q.Options[0].Text)]; ok {
				q.Options = append(q.Options, types.Option{Text: pos, Correct: false})
			}
		}

		for j := range q.Options {
			if residual.MatchString(q.Options[j].Text) {
				q.Options[j].Text = stripMarkers(q.Options[j].Text)
				q.Options[j].Correct = true
			}
		}

		for _, o := range overrides {
			if strings.HasPrefix(q.Header, o.headerPrefix) {
				q.Question = o.question
				q.Options = append([]types.Option(nil), o.options...)
				break
			}
		}
	}
	return qs
}
