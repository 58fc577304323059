// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package container

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

var tesseract = Tool{Binary: "tesseract", Image: "tesseractshadow/tesseract4re:latest"}

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool // binary -> whether LookPath succeeds
	runnableCmds  map[string]bool // "bin arg1 arg2" -> whether RunSilent succeeds
	runPipedFunc  func(name string, args []string, stdin io.Reader, stdout io.Writer) error
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) RunSilent(name string, args ...string) error {
	key := name + " " + strings.Join(args, " ")
	if m.runnableCmds[key] {
		return nil
	}
	return errors.New("command failed: " + key)
}

func (m *mockExecutor) RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	if m.runPipedFunc != nil {
		return m.runPipedFunc(name, args, stdin, stdout)
	}
	return nil
}

func TestDetectRuntime(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		exec     *mockExecutor
		wantName string
		wantErr  bool
	}{
		{
			name:     "auto prefers host binary",
			kind:     KindAuto,
			exec:     &mockExecutor{availableBins: map[string]bool{"tesseract": true, "docker": true}, runnableCmds: map[string]bool{"docker info": true}},
			wantName: "host",
		},
		{
			name:     "auto falls back to docker",
			kind:     KindAuto,
			exec:     &mockExecutor{availableBins: map[string]bool{"docker": true}, runnableCmds: map[string]bool{"docker info": true}},
			wantName: "docker",
		},
		{
			name:     "docker on PATH but info fails, podman works",
			kind:     "",
			exec:     &mockExecutor{availableBins: map[string]bool{"docker": true, "podman": true}, runnableCmds: map[string]bool{"podman info": true}},
			wantName: "podman",
		},
		{
			name:    "nothing available",
			kind:    KindAuto,
			exec:    &mockExecutor{},
			wantErr: true,
		},
		{
			name:    "explicit docker unavailable does not fall back",
			kind:    KindDocker,
			exec:    &mockExecutor{availableBins: map[string]bool{"tesseract": true}},
			wantErr: true,
		},
		{
			name:     "explicit podman",
			kind:     KindPodman,
			exec:     &mockExecutor{availableBins: map[string]bool{"podman": true}, runnableCmds: map[string]bool{"podman info": true}},
			wantName: "podman",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := detectRuntime(tt.kind, tesseract, tt.exec)
			if tt.wantErr {
				if !errors.Is(err, ErrNoRuntime) {
					t.Fatalf("expected ErrNoRuntime, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rt.Name() != tt.wantName {
				t.Errorf("got runtime %q, want %q", rt.Name(), tt.wantName)
			}
		})
	}
}

func TestDetectRuntimeUnknownKind(t *testing.T) {
	_, err := detectRuntime("lxc", tesseract, &mockExecutor{})
	if err == nil || errors.Is(err, ErrNoRuntime) {
		t.Fatalf("expected unknown runtime error, got %v", err)
	}
}

func TestImageExists(t *testing.T) {
	tests := []struct {
		name    string
		mkRT    func(*mockExecutor) Runtime
		exec    *mockExecutor
		wantErr bool
	}{
		{
			name: "docker image exists",
			mkRT: func(e *mockExecutor) Runtime { return newDockerRuntime(tesseract, e) },
			exec: &mockExecutor{runnableCmds: map[string]bool{"docker image inspect tesseractshadow/tesseract4re:latest": true}},
		},
		{
			name:    "docker image not found",
			mkRT:    func(e *mockExecutor) Runtime { return newDockerRuntime(tesseract, e) },
			exec:    &mockExecutor{},
			wantErr: true,
		},
		{
			name: "podman image exists",
			mkRT: func(e *mockExecutor) Runtime { return newPodmanRuntime(tesseract, e) },
			exec: &mockExecutor{runnableCmds: map[string]bool{"podman image exists tesseractshadow/tesseract4re:latest": true}},
		},
		{
			name: "host binary on PATH",
			mkRT: func(e *mockExecutor) Runtime { return newHostRuntime(tesseract, e) },
			exec: &mockExecutor{availableBins: map[string]bool{"tesseract": true}},
		},
		{
			name:    "host binary missing",
			mkRT:    func(e *mockExecutor) Runtime { return newHostRuntime(tesseract, e) },
			exec:    &mockExecutor{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mkRT(tt.exec).ImageExists()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRun(t *testing.T) {
	echo := func(wantName string, wantArgs string) func(string, []string, io.Reader, io.Writer) error {
		return func(name string, args []string, stdin io.Reader, stdout io.Writer) error {
			if name != wantName {
				return errors.New("unexpected binary " + name)
			}
			if got := strings.Join(args, " "); got != wantArgs {
				return errors.New("unexpected args " + got)
			}
			data, _ := io.ReadAll(stdin)
			_, _ = stdout.Write([]byte("text of " + string(data)))
			return nil
		}
	}

	tests := []struct {
		name    string
		mkRT    func(*mockExecutor) Runtime
		pipe    func(string, []string, io.Reader, io.Writer) error
		wantOut string
		wantErr bool
	}{
		{
			name:    "host runs binary directly",
			mkRT:    func(e *mockExecutor) Runtime { return newHostRuntime(tesseract, e) },
			pipe:    echo("tesseract", "stdin stdout -l eng+hun"),
			wantOut: "text of png",
		},
		{
			name:    "docker wraps binary in image",
			mkRT:    func(e *mockExecutor) Runtime { return newDockerRuntime(tesseract, e) },
			pipe:    echo("docker", "run --rm -i tesseractshadow/tesseract4re:latest tesseract stdin stdout -l eng+hun"),
			wantOut: "text of png",
		},
		{
			name:    "podman wraps binary in image",
			mkRT:    func(e *mockExecutor) Runtime { return newPodmanRuntime(tesseract, e) },
			pipe:    echo("podman", "run --rm -i tesseractshadow/tesseract4re:latest tesseract stdin stdout -l eng+hun"),
			wantOut: "text of png",
		},
		{
			name: "failure returns wrapped error",
			mkRT: func(e *mockExecutor) Runtime { return newDockerRuntime(tesseract, e) },
			pipe: func(string, []string, io.Reader, io.Writer) error {
				return errors.New("container exited with code 1")
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := tt.mkRT(&mockExecutor{runPipedFunc: tt.pipe})
			var out bytes.Buffer
			err := rt.Run([]string{"stdin", "stdout", "-l", "eng+hun"}, strings.NewReader("png"), &out)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := out.String(); got != tt.wantOut {
				t.Errorf("got output %q, want %q", got, tt.wantOut)
			}
		})
	}
}
