// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/quizbank/internal/router"
	"github.com/pdiddy/quizbank/pkg/types"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
}

func TestCollectPDFs(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.pdf"))
	touch(t, filepath.Join(dir, "a.pdf"))
	touch(t, filepath.Join(dir, "notes.txt"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.pdf"), 0o755))
	touch(t, filepath.Join(dir, "sub.pdf", "c.pdf"))

	got, err := CollectPDFs(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.pdf"), filepath.Join(dir, "b.pdf")}, got)

	single := filepath.Join(dir, "Kvíz-3.PDF")
	touch(t, single)
	got, err = CollectPDFs(single)
	require.NoError(t, err)
	assert.Equal(t, []string{single}, got)
}

func TestCollectPDFsNotFound(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "notes.txt"))

	for _, input := range []string{filepath.Join(dir, "missing"), filepath.Join(dir, "notes.txt")} {
		_, err := CollectPDFs(input)
		assert.ErrorIs(t, err, ErrInputNotFound)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	}
}

func TestQuizLabel(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"in/Kvíz-3.pdf", "kviz-3"},
		{"in/Kvíz 12 - Python.pdf", "kviz-12"},
		{"in/Kvíz7.pdf", "kviz-7"},
		{"in/Kvi\u0301z-4.pdf", "kviz-4"},
		{"in/Beugro Telekom.pdf", "beugro-telekom"},
		{"in/kviz12_scan.pdf", "kviz12_scan"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, QuizLabel(tt.path))
		})
	}
}

type stubStrategy struct {
	qs  []types.RawQuestion
	err error
}

func (s stubStrategy) Name() string                              { return "stub" }
func (s stubStrategy) Parse(string) ([]types.RawQuestion, error) { return s.qs, s.err }

type stubRouter map[string]router.Strategy

func (r stubRouter) Route(path string) router.Strategy { return r[path] }

func TestBuild(t *testing.T) {
	r := stubRouter{
		"Kvíz-3.pdf": stubStrategy{qs: []types.RawQuestion{
			{Question: "Első?", Options: []types.Option{{Text: "a", Correct: true}}},
			{Question: "Második?", Options: []types.Option{{Text: "b"}}, Explanation: types.NoMarkedSolution},
		}},
		"reflexio.pdf": stubStrategy{qs: []types.RawQuestion{
			{Question: "Milyen feladatokra használtad eddig a Pythont?"},
		}},
	}
	var status bytes.Buffer

	got, res, err := NewAssembler(r, zap.NewNop()).Build([]string{"Kvíz-3.pdf", "reflexio.pdf"}, &status)
	require.NoError(t, err)

	want := []types.Question{
		{ID: "kviz-3-q01", Question: "Első?", Options: []types.Option{{Text: "a", Correct: true}}, Explanation: types.PlaceholderExplanation},
		{ID: "kviz-3-q02", Question: "Második?", Options: []types.Option{{Text: "b"}}, Explanation: types.NoMarkedSolution},
		{ID: "reflexio-q01", Question: "Milyen feladatokra használtad eddig a Pythont?", Options: []types.Option{{Text: "Szabad szöveges válasz (reflexiós kérdés)", Correct: true}}, Explanation: types.PlaceholderExplanation},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, Result{Documents: 2, Questions: 3, Fixups: 1, Unanswered: 1}, res)
	assert.Contains(t, status.String(), "parsed:  kviz-3 (2 questions, stub)")
}

func TestBuildAbortsOnStrategyError(t *testing.T) {
	boom := errors.New("no runtime")
	r := stubRouter{
		"a.pdf": stubStrategy{qs: []types.RawQuestion{{Question: "x", Options: []types.Option{{Text: "y", Correct: true}}}}},
		"b.pdf": stubStrategy{err: boom},
	}

	got, _, err := NewAssembler(r, zap.NewNop()).Build([]string{"a.pdf", "b.pdf"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "b.pdf")
	assert.Nil(t, got)
}
