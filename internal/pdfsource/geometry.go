// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfsource

import (
	"fmt"
	"math"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/quizbank/internal/geometry"
)

// GeometryReader extracts positioned characters and filled rectangles.
type GeometryReader struct{}

// PageGeometry returns the geometry of every page of pdfPath in page order,
// with coordinates measured from the top-left of the media box.
func (GeometryReader) PageGeometry(pdfPath string) ([]geometry.Page, error) {
	f, r, err := openPDF(pdfPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	pages := make([]geometry.Page, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p, err := readPage(r.Page(i))
		if err != nil {
			return nil, fmt.Errorf("reading geometry of page %d: %w", i, err)
		}
		pages = append(pages, p)
	}
	return pages, nil
}

func readPage(p pdf.Page) (page geometry.Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed page content: %v", r)
		}
	}()
	if p.V.IsNull() {
		return geometry.Page{}, nil
	}

	mb := mediaBox(p.V)
	content := p.Content()
	for _, t := range content.Text {
		if t.S == "" || t.S == "\n" {
			continue
		}
		page.Chars = append(page.Chars, geometry.Char{
			Text: t.S,
			Box: geometry.Box{
				X0: t.X - mb.X0,
				Y0: mb.Y1 - (t.Y + t.FontSize),
				X1: t.X + t.W - mb.X0,
				Y1: mb.Y1 - t.Y,
			},
		})
	}

	w := newRectWalker()
	resources := p.Resources()
	contents := p.V.Key("Contents")
	if contents.Kind() == pdf.Array {
		for i := 0; i < contents.Len(); i++ {
			w.walk(contents.Index(i), resources)
		}
	} else {
		w.walk(contents, resources)
	}
	for _, fr := range w.filled {
		page.Rects = append(page.Rects, geometry.FilledRect{
			Box: geometry.Box{
				X0: fr.Box.X0 - mb.X0,
				Y0: mb.Y1 - fr.Box.Y1,
				X1: fr.Box.X1 - mb.X0,
				Y1: mb.Y1 - fr.Box.Y0,
			},
			Color: fr.Color,
		})
	}
	return page, nil
}

// mediaBox looks up the page's MediaBox, following Parent links for
// inherited values. The returned box keeps PDF orientation (Y up).
func mediaBox(page pdf.Value) geometry.Box {
	for v := page; !v.IsNull(); v = v.Key("Parent") {
		mb := v.Key("MediaBox")
		if mb.Kind() == pdf.Array && mb.Len() == 4 {
			return geometry.Box{
				X0: mb.Index(0).Float64(),
				Y0: mb.Index(1).Float64(),
				X1: mb.Index(2).Float64(),
				Y1: mb.Index(3).Float64(),
			}
		}
	}
	// US Letter
	return geometry.Box{X1: 612, Y1: 792}
}

// matrix is a PDF transformation [a b c d e f].
type matrix [6]float64

var identity = matrix{1, 0, 0, 1, 0, 0}

// mul returns m × n.
func (m matrix) mul(n matrix) matrix {
	return matrix{
		m[0]*n[0] + m[1]*n[2],
		m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2],
		m[2]*n[1] + m[3]*n[3],
		m[4]*n[0] + m[5]*n[2] + n[4],
		m[4]*n[1] + m[5]*n[3] + n[5],
	}
}

func (m matrix) apply(x, y float64) (float64, float64) {
	return x*m[0] + y*m[2] + m[4], x*m[1] + y*m[3] + m[5]
}

type gstate struct {
	ctm  matrix
	fill []float64
}

// maxFormDepth bounds Form XObject nesting.
const maxFormDepth = 8

// rectWalker follows the graphics state of a content stream, including Form
// XObjects drawn with Do, and records every rectangle painted with a fill.
// Boxes are in PDF space (Y up).
type rectWalker struct {
	state   gstate
	saved   []gstate
	pending []geometry.Box
	filled  []geometry.FilledRect
	depth   int
}

func newRectWalker() *rectWalker {
	return &rectWalker{state: gstate{ctm: identity, fill: []float64{0}}}
}

// walk interprets strm, resolving Do against resources.
func (w *rectWalker) walk(strm, resources pdf.Value) {
	pdf.Interpret(strm, func(stk *pdf.Stack, op string) {
		nums, name := operands(stk)
		if op == "Do" {
			w.drawXObject(resources, name)
			return
		}
		w.apply(op, nums)
	})
}

// operands drains the stack. Numbers are returned in operand order; name
// is the last name operand (the XObject of Do, the pattern of scn).
func operands(stk *pdf.Stack) (nums []float64, name string) {
	vals := make([]pdf.Value, stk.Len())
	for i := len(vals) - 1; i >= 0; i-- {
		vals[i] = stk.Pop()
	}
	for _, v := range vals {
		switch v.Kind() {
		case pdf.Integer, pdf.Real:
			nums = append(nums, v.Float64())
		case pdf.Name:
			name = v.Name()
		}
	}
	return nums, name
}

// drawXObject walks a Form XObject. Images and unknown names are ignored.
func (w *rectWalker) drawXObject(resources pdf.Value, name string) {
	xobj := resources.Key("XObject").Key(name)
	if xobj.Key("Subtype").Name() != "Form" {
		return
	}
	var m []float64
	if mv := xobj.Key("Matrix"); mv.Kind() == pdf.Array && mv.Len() == 6 {
		for i := 0; i < 6; i++ {
			m = append(m, mv.Index(i).Float64())
		}
	}
	res := xobj.Key("Resources")
	if res.IsNull() {
		res = resources
	}
	w.enterForm(m, func() { w.walk(xobj, res) })
}

// enterForm runs body with the graphics state saved and the form matrix
// applied, then restores the state.
func (w *rectWalker) enterForm(m []float64, body func()) {
	if w.depth >= maxFormDepth {
		return
	}
	w.depth++
	defer func() { w.depth-- }()

	w.apply("q", nil)
	if len(m) == 6 {
		w.apply("cm", m)
	}
	body()
	w.apply("Q", nil)
}

func (w *rectWalker) apply(op string, args []float64) {
	switch op {
	case "q":
		w.saved = append(w.saved, gstate{ctm: w.state.ctm, fill: w.state.fill})
	case "Q":
		if n := len(w.saved); n > 0 {
			w.state = w.saved[n-1]
			w.saved = w.saved[:n-1]
		}
	case "cm":
		if len(args) == 6 {
			w.state.ctm = matrix(args).mul(w.state.ctm)
		}
	case "rg", "g", "k", "sc", "scn":
		w.state.fill = append([]float64(nil), args...)
	case "re":
		if len(args) == 4 {
			w.pending = append(w.pending, w.transform(args[0], args[1], args[2], args[3]))
		}
	case "f", "F", "f*", "B", "B*", "b", "b*":
		for _, b := range w.pending {
			w.filled = append(w.filled, geometry.FilledRect{Box: b, Color: w.state.fill})
		}
		w.pending = nil
	case "S", "s", "n":
		w.pending = nil
	}
}

// transform maps a rectangle through the CTM and returns its bounding box.
func (w *rectWalker) transform(x, y, width, height float64) geometry.Box {
	xs := []float64{x, x + width}
	ys := []float64{y, y + height}
	box := geometry.Box{X0: math.Inf(1), Y0: math.Inf(1), X1: math.Inf(-1), Y1: math.Inf(-1)}
	for _, cx := range xs {
		for _, cy := range ys {
			tx, ty := w.state.ctm.apply(cx, cy)
			box.X0 = math.Min(box.X0, tx)
			box.Y0 = math.Min(box.Y0, ty)
			box.X1 = math.Max(box.X1, tx)
			box.Y1 = math.Max(box.Y1, ty)
		}
	}
	return box
}
