// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package options

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/quizbank/pkg/types"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain text", "A lista mutable.", "A lista mutable"},
		{"collapses whitespace", "  két   szó\n  itt ", "két szó itt"},
		{"strips correct marker", "Helyes válasz  print(x)", "print(x)"},
		{"strips doubled marker", "HelyesHelyes! 42", "42"},
		{"strips selected marker", "Megadott válasz igaz", "igaz"},
		{"case insensitive", "HELYES VÁLASZ tuple", "tuple"},
		{"drops noise token", "okok list", "list"},
		{"only markers", "Helyes válasz.", ""},
		{"trims periods", "...range(3)..", "range(3)"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.raw))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"Helyes válasz  print(x)",
		"Hel Megadott válaszyes válasz",
		"HelyesHelyes!  . A  .",
		"  okokok  ",
		"Helyes válaszok  sorozat",
		"...",
		"normal text",
	}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "Clean not idempotent for %q", in)
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   []types.Option
		want []types.Option
	}{
		{
			name: "false then true merges at first position",
			in:   []types.Option{{Text: "A", Correct: false}, {Text: "B"}, {Text: "A", Correct: true}},
			want: []types.Option{{Text: "A", Correct: true}, {Text: "B"}},
		},
		{
			name: "true then false keeps true",
			in:   []types.Option{{Text: "A", Correct: true}, {Text: "A", Correct: false}},
			want: []types.Option{{Text: "A", Correct: true}},
		},
		{
			name: "duplicates after cleaning",
			in:   []types.Option{{Text: "  A."}, {Text: "Helyes válasz A", Correct: true}},
			want: []types.Option{{Text: "A", Correct: true}},
		},
		{
			name: "drops empty options",
			in:   []types.Option{{Text: "Megadott válasz"}, {Text: "x"}},
			want: []types.Option{{Text: "x"}},
		},
		{
			name: "empty input",
			in:   nil,
			want: []types.Option{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.in))
		})
	}
}
