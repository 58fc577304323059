// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package container runs an external command-line tool either directly on
// the host or inside a docker or podman image.
package container

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
)

const (
	binDocker = "docker"
	binPodman = "podman"

	// KindAuto tries the host binary, then docker, then podman.
	KindAuto   = "auto"
	KindHost   = "host"
	KindDocker = binDocker
	KindPodman = binPodman
)

// ErrNoRuntime is returned when no requested runtime is usable.
var ErrNoRuntime = errors.New("no runtime available")

// Runtime executes one tool with piped stdin and stdout.
type Runtime interface {
	// Name returns "host", "docker" or "podman".
	Name() string

	// Available reports whether the runtime can be used right now.
	Available() bool

	// ImageExists reports whether the tool is present locally: the image for
	// container runtimes, the binary on PATH for the host.
	ImageExists() error

	// Run executes the tool with args, piping stdin and stdout.
	Run(args []string, stdin io.Reader, stdout io.Writer) error
}

// Tool names the executable and, for container runtimes, the image that
// provides it.
type Tool struct {
	Binary string
	Image  string
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error
}

type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (osExecutor) RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	return cmd.Run()
}

// hostRuntime runs the tool binary straight from PATH.
type hostRuntime struct {
	tool Tool
	exec executor
}

func (h *hostRuntime) Name() string { return KindHost }

func (h *hostRuntime) Available() bool {
	_, err := h.exec.LookPath(h.tool.Binary)
	return err == nil
}

func (h *hostRuntime) ImageExists() error {
	if _, err := h.exec.LookPath(h.tool.Binary); err != nil {
		return fmt.Errorf("%s not found on PATH: %w", h.tool.Binary, err)
	}
	return nil
}

func (h *hostRuntime) Run(args []string, stdin io.Reader, stdout io.Writer) error {
	if err := h.exec.RunPiped(h.tool.Binary, args, stdin, stdout); err != nil {
		return fmt.Errorf("running %s: %w", h.tool.Binary, err)
	}
	return nil
}

// containerRuntime runs the tool inside an image. Docker and Podman differ
// only in binary name and the subcommand that checks for an image.
type containerRuntime struct {
	bin           string
	imageCheckCmd []string
	tool          Tool
	exec          executor
}

func (r *containerRuntime) Name() string { return r.bin }

func (r *containerRuntime) Available() bool {
	if _, err := r.exec.LookPath(r.bin); err != nil {
		return false
	}
	return r.exec.RunSilent(r.bin, "info") == nil
}

func (r *containerRuntime) ImageExists() error {
	args := make([]string, 0, len(r.imageCheckCmd)+1)
	args = append(args, r.imageCheckCmd...)
	args = append(args, r.tool.Image)

	if err := r.exec.RunSilent(r.bin, args...); err != nil {
		return fmt.Errorf("image %s not found in %s: %w", r.tool.Image, r.bin, err)
	}
	return nil
}

func (r *containerRuntime) Run(args []string, stdin io.Reader, stdout io.Writer) error {
	full := make([]string, 0, len(args)+5)
	full = append(full, "run", "--rm", "-i", r.tool.Image, r.tool.Binary)
	full = append(full, args...)
	if err := r.exec.RunPiped(r.bin, full, stdin, stdout); err != nil {
		return fmt.Errorf("running %s in %s container %s: %w", r.tool.Binary, r.bin, r.tool.Image, err)
	}
	return nil
}

func newHostRuntime(tool Tool, exec executor) *hostRuntime {
	return &hostRuntime{tool: tool, exec: exec}
}

func newDockerRuntime(tool Tool, exec executor) *containerRuntime {
	return &containerRuntime{
		bin:           binDocker,
		imageCheckCmd: []string{"image", "inspect"},
		tool:          tool,
		exec:          exec,
	}
}

func newPodmanRuntime(tool Tool, exec executor) *containerRuntime {
	return &containerRuntime{
		bin:           binPodman,
		imageCheckCmd: []string{"image", "exists"},
		tool:          tool,
		exec:          exec,
	}
}

var defaultExec executor = osExecutor{}

// DetectRuntime returns the first usable runtime for kind. KindAuto tries
// the host binary, then docker, then podman; any other kind is used only if
// available.
func DetectRuntime(kind string, tool Tool) (Runtime, error) {
	return detectRuntime(kind, tool, defaultExec)
}

func detectRuntime(kind string, tool Tool, exec executor) (Runtime, error) {
	var candidates []Runtime
	switch kind {
	case KindAuto, "":
		candidates = []Runtime{newHostRuntime(tool, exec), newDockerRuntime(tool, exec), newPodmanRuntime(tool, exec)}
	case KindHost:
		candidates = []Runtime{newHostRuntime(tool, exec)}
	case KindDocker:
		candidates = []Runtime{newDockerRuntime(tool, exec)}
	case KindPodman:
		candidates = []Runtime{newPodmanRuntime(tool, exec)}
	default:
		return nil, fmt.Errorf("unknown runtime %q (want auto, host, docker or podman)", kind)
	}

	for _, rt := range candidates {
		if rt.Available() {
			return rt, nil
		}
	}
	return nil, fmt.Errorf("%w for %s: tried %s", ErrNoRuntime, tool.Binary, names(candidates))
}

func names(rts []Runtime) string {
	s := ""
	for i, rt := range rts {
		if i > 0 {
			s += ", "
		}
		s += rt.Name()
	}
	return s
}
