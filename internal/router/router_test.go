// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/quizbank/pkg/types"
)

type named string

func (n named) Name() string                              { return string(n) }
func (n named) Parse(string) ([]types.RawQuestion, error) { return nil, nil }

func TestRoute(t *testing.T) {
	r := New(named("native"), named("ocr"), named("geometry"), types.DefaultExtractConfig().Routing)

	tests := []struct {
		path string
		want string
	}{
		{"quizzes/Kvíz-3.pdf", "native"},
		{"quizzes/kviz12_scan.pdf", "ocr"},
		{"quizzes/KVIZ12.PDF", "ocr"},
		{"quizzes/Beugro_kerdesek.pdf", "geometry"},
		{"quizzes/python-TELEKOM-2024.pdf", "geometry"},
		{"quizzes/kviz12-telekom.pdf", "geometry"},
		{"quizzes/my-kviz12.pdf", "native"},
		{"kviz12/notes.pdf", "native"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Route(tt.path).Name())
		})
	}
}

func TestRouteCustomFingerprints(t *testing.T) {
	r := New(named("native"), named("ocr"), named("geometry"), types.RoutingConfig{
		GeometryFingerprints: []string{"Highlight", ""},
		OCRPrefixes:          []string{"SCAN"},
	})

	assert.Equal(t, "geometry", r.Route("week1-highlight.pdf").Name())
	assert.Equal(t, "ocr", r.Route("scan-07.pdf").Name())
	assert.Equal(t, "native", r.Route("beugro.pdf").Name())
}
