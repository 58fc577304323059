// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package geometry parses quiz PDFs that mark the right answer with a
// coloured background instead of text. Lines are rebuilt from positioned
// characters, and a line counts as highlighted when its box overlaps a
// rectangle filled with the highlight colour.
package geometry

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Bullet is the glyph that introduces an option line.
const Bullet = "•"

var numberedLine = regexp.MustCompile(`^\d+\.`)

// Box is an axis-aligned rectangle in page space with Y growing downward:
// (X0, Y0) is the top-left corner and (X1, Y1) the bottom-right.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// Overlaps reports whether b and o share a region of positive area. Boxes
// that only touch along an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	return !(b.X1 <= o.X0 || o.X1 <= b.X0 || b.Y1 <= o.Y0 || o.Y1 <= b.Y0)
}

// Union returns the smallest box containing b and o.
func (b Box) Union(o Box) Box {
	return Box{
		X0: math.Min(b.X0, o.X0),
		Y0: math.Min(b.Y0, o.Y0),
		X1: math.Max(b.X1, o.X1),
		Y1: math.Max(b.Y1, o.Y1),
	}
}

// Char is one positioned glyph.
type Char struct {
	Text string
	Box  Box
}

// FilledRect is a painted rectangle and its non-stroking colour components.
type FilledRect struct {
	Box   Box
	Color []float64
}

// Page holds the primitives of one PDF page.
type Page struct {
	Chars []Char
	Rects []FilledRect
}

// Line is a horizontal run of characters treated as one logical line.
type Line struct {
	Page        int
	Text        string
	Box         Box
	Highlighted bool
}

// Config tunes line reconstruction.
type Config struct {
	// GapThreshold splits a row wherever two neighbouring characters are
	// further apart than this many points.
	GapThreshold float64

	// HighlightColor is the exact fill colour that marks a correct answer.
	HighlightColor []float64
}

// DefaultConfig matches the green-highlight exports this parser was built for.
func DefaultConfig() Config {
	return Config{GapThreshold: 25, HighlightColor: []float64{0, 1, 0}}
}

func sameColor(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// rowKey rounds a top coordinate to one decimal place.
func rowKey(top float64) int64 {
	return int64(math.Round(top * 10))
}

// PageLines rebuilds the lines of one page, top to bottom and left to right.
func PageLines(p Page, index int, cfg Config) []Line {
	rows := make(map[int64][]Char)
	for _, ch := range p.Chars {
		if ch.Text == "" || ch.Text == "\n" {
			continue
		}
		k := rowKey(ch.Box.Y0)
		rows[k] = append(rows[k], ch)
	}
	keys := make([]int64, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var highlights []Box
	for _, r := range p.Rects {
		if sameColor(r.Color, cfg.HighlightColor) {
			highlights = append(highlights, r.Box)
		}
	}

	var out []Line
	for _, k := range keys {
		for _, seg := range segmentRow(rows[k], cfg.GapThreshold) {
			text := cleanText(seg)
			if text == "" {
				continue
			}
			box := seg[0].Box
			for _, ch := range seg[1:] {
				box = box.Union(ch.Box)
			}
			out = append(out, Line{
				Page:        index,
				Text:        text,
				Box:         box,
				Highlighted: overlapsAny(box, highlights),
			})
		}
	}
	return out
}

// segmentRow splits one row into runs separated by gaps wider than gap, so
// that side-by-side columns never merge into one line.
func segmentRow(chars []Char, gap float64) [][]Char {
	if len(chars) == 0 {
		return nil
	}
	sorted := append([]Char(nil), chars...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Box.X0 < sorted[j].Box.X0 })

	segs := [][]Char{{sorted[0]}}
	for _, ch := range sorted[1:] {
		last := segs[len(segs)-1]
		if ch.Box.X0-last[len(last)-1].Box.X1 > gap {
			segs = append(segs, []Char{ch})
			continue
		}
		segs[len(segs)-1] = append(last, ch)
	}
	return segs
}

func cleanText(seg []Char) string {
	var b strings.Builder
	for _, ch := range seg {
		b.WriteString(ch.Text)
	}
	s := strings.ReplaceAll(b.String(), "\n", "")
	return strings.Join(strings.Fields(s), " ")
}

func overlapsAny(b Box, rects []Box) bool {
	for _, r := range rects {
		if b.Overlaps(r) {
			return true
		}
	}
	return false
}

// MergeBullets joins a line holding only a bullet glyph with the line that
// follows it on the same page, unless that line is another bullet or a new
// numbered question.
func MergeBullets(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		cur := lines[i]
		if cur.Text == Bullet && i+1 < len(lines) {
			next := lines[i+1]
			if next.Page == cur.Page && next.Text != Bullet && !numberedLine.MatchString(next.Text) {
				out = append(out, Line{
					Page:        cur.Page,
					Text:        strings.TrimSpace(Bullet + " " + next.Text),
					Box:         cur.Box.Union(next.Box),
					Highlighted: cur.Highlighted || next.Highlighted,
				})
				i++
				continue
			}
		}
		out = append(out, cur)
	}
	return out
}
