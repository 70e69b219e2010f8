// SPDX-License-Identifier: MPL-2.0

// Package router forwards unrecognized commands to external tool
// executables following the guppi-<name> convention.
package router

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// Prefix is prepended to a tool name to form its executable name.
const Prefix = "guppi-"

// ErrToolNotFound is returned when no guppi-<name> executable is on PATH.
var ErrToolNotFound = errors.New("tool executable not found")

// Executable returns the executable name for a tool.
func Executable(tool string) string {
	return Prefix + tool
}

// Run executes the tool's external binary with the given arguments and wired
// stdio, and returns its exit code. Tools run in the normal process tree
// with full privileges; guppi adds no sandboxing.
func Run(ctx context.Context, tool string, args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, Executable(tool), args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return 1, ErrToolNotFound
	}
	return 1, err
}
