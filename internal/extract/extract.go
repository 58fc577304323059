// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract assembles the question bank: it routes every PDF to a
// parsing strategy, repairs unanswered questions, and numbers the result.
package extract

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pdiddy/quizbank/internal/fixup"
	"github.com/pdiddy/quizbank/internal/router"
	"github.com/pdiddy/quizbank/pkg/types"
)

// Router picks the strategy for a document.
type Router interface {
	Route(path string) router.Strategy
}

// Result summarizes one assembly run.
type Result struct {
	Documents  int
	Questions  int
	Fixups     int
	Unanswered int
}

// Assembler turns PDFs into numbered questions.
type Assembler struct {
	router Router
	log    *zap.Logger
}

// NewAssembler returns an assembler that dispatches documents through r.
func NewAssembler(r Router, log *zap.Logger) *Assembler {
	return &Assembler{router: r, log: log}
}

// Build parses paths in order, printing one status line per document to w.
// The first strategy error aborts the run.
func (a *Assembler) Build(paths []string, w io.Writer) ([]types.Question, Result, error) {
	var (
		out []types.Question
		res Result
	)
	for _, path := range paths {
		label := QuizLabel(path)
		s := a.router.Route(path)
		a.log.Debug("document routed", zap.String("pdf", path), zap.String("strategy", s.Name()), zap.String("label", label))

		raw, err := s.Parse(path)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", label, err)
			return nil, res, fmt.Errorf("parsing %s: %w", path, err)
		}

		qs, fixed, unanswered := a.number(label, raw)
		out = append(out, qs...)
		res.Documents++
		res.Questions += len(qs)
		res.Fixups += fixed
		res.Unanswered += unanswered

		a.log.Debug("questions parsed", zap.String("label", label), zap.Int("questions", len(qs)), zap.Int("fixups", fixed))
		fmt.Fprintf(w, "parsed:  %s (%d questions, %s)\n", label, len(qs), s.Name())
	}
	return out, res, nil
}

// number applies fixups and assigns "<label>-qNN" ids in document order.
func (a *Assembler) number(label string, raw []types.RawQuestion) ([]types.Question, int, int) {
	qs := make([]types.Question, 0, len(raw))
	fixed, unanswered := 0, 0
	for i, rq := range raw {
		rq, rule := fixup.ApplyNamed(rq)
		if rule != "" {
			fixed++
			a.log.Debug("fixup applied", zap.String("label", label), zap.Int("index", i+1), zap.String("rule", rule))
		}
		if !rq.HasCorrect() {
			unanswered++
		}
		explanation := rq.Explanation
		if explanation == "" {
			explanation = types.PlaceholderExplanation
		}
		qs = append(qs, types.Question{
			ID:          fmt.Sprintf("%s-q%02d", label, i+1),
			Question:    rq.Question,
			Options:     rq.Options,
			Explanation: explanation,
		})
	}
	return qs, fixed, unanswered
}
