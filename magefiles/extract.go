//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Extract builds the CLI and runs it over input, writing the snapshot to
// output. Example: mage extract ./quizzes questions.json
func Extract(input, output string) error {
	mg.Deps(Build)
	return sh.RunV("./bin/quizbank", "extract", "--input", input, "--output", output)
}
