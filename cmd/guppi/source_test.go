// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestRunSourceListEmpty(t *testing.T) {
	var stdout bytes.Buffer
	if err := runSourceList(&stdout, t.TempDir()); err != nil {
		t.Fatalf("runSourceList error: %v", err)
	}
	if !strings.Contains(stdout.String(), "No sources configured") {
		t.Errorf("missing empty-state message:\n%s", stdout.String())
	}
}

func TestRunSourceAddLocal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	root := t.TempDir()
	target := t.TempDir()
	writeTool(t, target, ".", "beads", "beads", "Track beads")

	var stdout bytes.Buffer
	if err := runSourceAdd(context.Background(), &stdout, root, "my-tools", target); err != nil {
		t.Fatalf("runSourceAdd error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Linked local source 'my-tools'") {
		t.Errorf("missing link message:\n%s", stdout.String())
	}

	link := filepath.Join(root, "my-tools")
	if _, err := os.Readlink(link); err != nil {
		t.Fatalf("expected %s to be a symlink: %v", link, err)
	}

	stdout.Reset()
	if err := runSourceList(&stdout, root); err != nil {
		t.Fatalf("runSourceList error: %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "my-tools") || !strings.Contains(out, "local") {
		t.Errorf("list output missing the linked source:\n%s", out)
	}
	if !strings.Contains(out, "Total: 1 source(s) configured") {
		t.Errorf("list output missing total:\n%s", out)
	}
}

func TestRunSourceAddDuplicate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	root := t.TempDir()
	target := t.TempDir()

	var stdout bytes.Buffer
	if err := runSourceAdd(context.Background(), &stdout, root, "dup", target); err != nil {
		t.Fatalf("first add error: %v", err)
	}

	err := runSourceAdd(context.Background(), &stdout, root, "dup", target)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("expected ExitError with code 1 for duplicate, got %v", err)
	}
}

func TestRunSourceInit(t *testing.T) {
	dir := t.TempDir()

	var stdout bytes.Buffer
	err := runSourceInit(&stdout, strings.NewReader(""), dir, "my-source", "Test source", true)
	if err != nil {
		t.Fatalf("runSourceInit error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Initialized GUPPI tool source 'my-source'") {
		t.Errorf("missing success message:\n%s", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "pyproject.toml")); err != nil {
		t.Errorf("pyproject.toml was not written: %v", err)
	}
}

func TestRunSourceInitNonEmptyAborts(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	err := runSourceInit(&stdout, strings.NewReader("n\n"), dir, "", "", false)
	if err != nil {
		t.Fatalf("runSourceInit error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Aborted.") {
		t.Errorf("expected abort on declined confirmation:\n%s", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "pyproject.toml")); err == nil {
		t.Error("pyproject.toml was written despite the abort")
	}
}
