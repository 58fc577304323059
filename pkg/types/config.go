// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects the snapshot encoding.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
	FormatXLSX OutputFormat = "xlsx"
)

// OCRConfig holds settings for the OCR strategy.
type OCRConfig struct {
	// Lang is the tesseract language hint (default "eng+hun").
	Lang string `json:"lang" yaml:"lang" mapstructure:"lang"`

	// DPI is the page rendering resolution handed to OCR (default 250).
	DPI float64 `json:"dpi" yaml:"dpi" mapstructure:"dpi"`

	// Runtime selects where tesseract runs: auto, host, docker, or podman.
	Runtime string `json:"runtime" yaml:"runtime" mapstructure:"runtime"`

	// Binary is the tesseract executable name used by the host runtime.
	Binary string `json:"binary" yaml:"binary" mapstructure:"binary"`

	// Image is the container image used by the docker and podman runtimes.
	Image string `json:"image" yaml:"image" mapstructure:"image"`

	// Banners lists substrings of boilerplate lines dropped from transcriptions.
	Banners []string `json:"banners" yaml:"banners" mapstructure:"banners"`
}

// GeometryConfig holds settings for the highlight-geometry strategy.
type GeometryConfig struct {
	// GapThreshold is the horizontal gap (points) that splits a row into
	// separate lines (default 25).
	GapThreshold float64 `json:"gap_threshold" yaml:"gap_threshold" mapstructure:"gap_threshold"`

	// HighlightColor is the exact non-stroking fill colour of answer
	// highlights (default RGB 0,1,0).
	HighlightColor []float64 `json:"highlight_color" yaml:"highlight_color" mapstructure:"highlight_color"`
}

// RoutingConfig holds the filename fingerprints used to pick a strategy.
type RoutingConfig struct {
	// GeometryFingerprints are stem substrings (case-insensitive) routed to
	// the geometry strategy.
	GeometryFingerprints []string `json:"geometry_fingerprints" yaml:"geometry_fingerprints" mapstructure:"geometry_fingerprints"`

	// OCRPrefixes are filename prefixes (case-insensitive) routed to OCR.
	OCRPrefixes []string `json:"ocr_prefixes" yaml:"ocr_prefixes" mapstructure:"ocr_prefixes"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Env selects the zap preset: "production" or anything else for development.
	Env string `json:"env" yaml:"env" mapstructure:"env"`

	// Level is the minimum zap level (default "info").
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// ExtractConfig groups everything the extract command needs.
type ExtractConfig struct {
	// Input is a PDF file or a directory of PDFs.
	Input string `json:"input" yaml:"input" mapstructure:"input"`

	// Output is the snapshot path (default "questions.json").
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// Format is the snapshot encoding.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	Log      LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
	OCR      OCRConfig      `json:"ocr" yaml:"ocr" mapstructure:"ocr"`
	Geometry GeometryConfig `json:"geometry" yaml:"geometry" mapstructure:"geometry"`
	Routing  RoutingConfig  `json:"routing" yaml:"routing" mapstructure:"routing"`
}

// DefaultExtractConfig returns the configuration used when no file, env, or
// flag overrides a key.
func DefaultExtractConfig() ExtractConfig {
	return ExtractConfig{
		Input:  ".",
		Output: "questions.json",
		Format: FormatJSON,
		Log:    LogConfig{Env: "development", Level: "info"},
		OCR: OCRConfig{
			Lang:    "eng+hun",
			DPI:     250,
			Runtime: "auto",
			Binary:  "tesseract",
			Image:   "tesseractshadow/tesseract4re:latest",
			Banners: []string{"Kviz-12", "module"},
		},
		Geometry: GeometryConfig{
			GapThreshold:   25,
			HighlightColor: []float64{0, 1, 0},
		},
		Routing: RoutingConfig{
			GeometryFingerprints: []string{"beugro", "telekom"},
			OCRPrefixes:          []string{"kviz12"},
		},
	}
}
