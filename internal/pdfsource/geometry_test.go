// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/quizbank/internal/geometry"
)

func TestRectWalker(t *testing.T) {
	w := newRectWalker()
	w.apply("q", nil)
	w.apply("cm", []float64{1, 0, 0, 1, 100, 200})
	w.apply("rg", []float64{0, 1, 0})
	w.apply("re", []float64{0, 0, 50, 10})
	w.apply("f", nil)
	w.apply("Q", nil)

	// Outline only: never reported.
	w.apply("re", []float64{0, 0, 5, 5})
	w.apply("S", nil)

	w.apply("g", []float64{0.5})
	w.apply("re", []float64{10, 10, 20, 20})
	w.apply("f*", nil)

	require.Len(t, w.filled, 2)
	assert.Equal(t, geometry.FilledRect{
		Box:   geometry.Box{X0: 100, Y0: 200, X1: 150, Y1: 210},
		Color: []float64{0, 1, 0},
	}, w.filled[0])
	assert.Equal(t, geometry.FilledRect{
		Box:   geometry.Box{X0: 10, Y0: 10, X1: 30, Y1: 30},
		Color: []float64{0.5},
	}, w.filled[1], "Q restores the identity transform")
}

func TestRectWalkerScaledNegative(t *testing.T) {
	w := newRectWalker()
	w.apply("cm", []float64{2, 0, 0, 2, 0, 0})
	w.apply("sc", []float64{0, 1, 0})
	w.apply("re", []float64{10, 10, 5, -5})
	w.apply("b", nil)

	require.Len(t, w.filled, 1)
	assert.Equal(t, geometry.Box{X0: 20, Y0: 10, X1: 30, Y1: 20}, w.filled[0].Box)
}

func TestMatrixMul(t *testing.T) {
	translate := matrix{1, 0, 0, 1, 10, 20}
	scale := matrix{2, 0, 0, 3, 0, 0}

	x, y := translate.mul(scale).apply(1, 1)
	assert.Equal(t, 22.0, x)
	assert.Equal(t, 63.0, y)

	assert.Equal(t, scale, identity.mul(scale))
}

func TestRectWalkerForm(t *testing.T) {
	w := newRectWalker()
	w.apply("cm", []float64{1, 0, 0, 1, 0, 100})
	w.apply("g", []float64{1})

	w.enterForm([]float64{1, 0, 0, 1, 50, 0}, func() {
		w.apply("rg", []float64{0, 1, 0})
		w.apply("re", []float64{0, 0, 10, 10})
		w.apply("f", nil)
	})
	w.apply("re", []float64{0, 0, 10, 10})
	w.apply("f", nil)

	require.Len(t, w.filled, 2)
	assert.Equal(t, geometry.FilledRect{
		Box:   geometry.Box{X0: 50, Y0: 100, X1: 60, Y1: 110},
		Color: []float64{0, 1, 0},
	}, w.filled[0], "form matrix composes with the page transform")
	assert.Equal(t, geometry.FilledRect{
		Box:   geometry.Box{X0: 0, Y0: 100, X1: 10, Y1: 110},
		Color: []float64{1},
	}, w.filled[1], "state is restored after the form")
	assert.Zero(t, w.depth)
}

func TestRectWalkerFormDepthLimit(t *testing.T) {
	w := newRectWalker()
	var recurse func()
	calls := 0
	recurse = func() {
		calls++
		w.enterForm(nil, recurse)
	}
	w.enterForm(nil, recurse)

	assert.Equal(t, maxFormDepth, calls)
	assert.Empty(t, w.saved)
}
