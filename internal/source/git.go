// SPDX-License-Identifier: MPL-2.0

package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrGitNotFound is returned when the git executable is not on PATH.
var ErrGitNotFound = errors.New("'git' command not found")

// gitClone clones url into dest.
func gitClone(ctx context.Context, url, dest string) error {
	out, err := runGit(ctx, "", "clone", url, dest)
	if err != nil {
		if errors.Is(err, ErrGitNotFound) {
			return err
		}
		return fmt.Errorf("cloning %s: %s", url, out)
	}
	return nil
}

// gitPull runs git pull inside dir and returns the combined output.
func gitPull(ctx context.Context, dir string) (string, error) {
	out, err := runGit(ctx, dir, "pull")
	if err != nil {
		if errors.Is(err, ErrGitNotFound) {
			return "", err
		}
		return "", fmt.Errorf("git pull: %s", out)
	}
	return out, nil
}

// gitRemoteURL returns the origin URL of the working copy at dir.
func gitRemoteURL(dir string) (string, error) {
	out, err := runGit(context.Background(), dir, "remote", "get-url", "origin")
	if err != nil {
		return "", err
	}
	return out, nil
}

// pullWasNoop reports whether a pull output indicates nothing changed.
func pullWasNoop(out string) bool {
	return strings.Contains(out, "Already up to date")
}

func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrGitNotFound
		}
		return strings.TrimSpace(buf.String()), err
	}
	return strings.TrimSpace(buf.String()), nil
}
