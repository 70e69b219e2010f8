// SPDX-License-Identifier: MPL-2.0

package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"guppi-cli/pkg/manifest"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindLocal, "local"},
		{KindVersioned, "git"},
		{KindUnknown, "unknown"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAdd_LocalDirectoryIsLinked(t *testing.T) {
	root := t.TempDir()
	target := t.TempDir()

	entry, err := Add(context.Background(), root, "my-tools", target)
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	if entry.Kind != KindLocal {
		t.Errorf("Kind = %v, want KindLocal", entry.Kind)
	}

	link := filepath.Join(root, "my-tools")
	got, err := os.Readlink(link)
	if err != nil {
		t.Fatalf("expected %s to be a symlink: %v", link, err)
	}
	want, _ := filepath.Abs(target)
	if got != want {
		t.Errorf("symlink target = %q, want %q", got, want)
	}
}

func TestAdd_DuplicateName(t *testing.T) {
	root := t.TempDir()
	target := t.TempDir()

	if _, err := Add(context.Background(), root, "dup", target); err != nil {
		t.Fatalf("first Add() error: %v", err)
	}

	_, err := Add(context.Background(), root, "dup", target)
	var exists *ErrExists
	if !errors.As(err, &exists) {
		t.Fatalf("second Add() error = %v, want *ErrExists", err)
	}
	if exists.Name != "dup" {
		t.Errorf("ErrExists.Name = %q, want %q", exists.Name, "dup")
	}
}

func TestList(t *testing.T) {
	root := t.TempDir()

	// A symlinked source, a plain directory, and a stray file.
	local := t.TempDir()
	if err := os.Symlink(local, filepath.Join(root, "zz-local")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "aa-plain"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "stray.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries := List(root)
	if len(entries) != 2 {
		t.Fatalf("List() returned %d entries, want 2", len(entries))
	}

	// Sorted by name.
	if entries[0].Name != "aa-plain" || entries[1].Name != "zz-local" {
		t.Errorf("List() order = %q, %q", entries[0].Name, entries[1].Name)
	}

	if entries[0].Kind != KindUnknown {
		t.Errorf("aa-plain Kind = %v, want KindUnknown", entries[0].Kind)
	}
	if entries[1].Kind != KindLocal {
		t.Errorf("zz-local Kind = %v, want KindLocal", entries[1].Kind)
	}
	if entries[1].Location == filepath.Join(root, "zz-local") {
		t.Error("local entry location should be the link target, not the link")
	}
}

func TestList_MissingRoot(t *testing.T) {
	if entries := List(filepath.Join(t.TempDir(), "nope")); len(entries) != 0 {
		t.Errorf("List() on a missing root returned %d entries, want 0", len(entries))
	}
}

func TestUpdate_SkipsLocalAndUnknown(t *testing.T) {
	root := t.TempDir()

	local := t.TempDir()
	if err := os.Symlink(local, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "plain"), 0o755); err != nil {
		t.Fatal(err)
	}

	results, err := Update(context.Background(), root, "")
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Update() returned %d results, want 2", len(results))
	}

	byName := map[string]UpdateStatus{}
	for _, r := range results {
		byName[r.Name] = r.Status
	}
	if byName["linked"] != StatusSkippedLocal {
		t.Errorf("linked status = %v, want StatusSkippedLocal", byName["linked"])
	}
	if byName["plain"] != StatusSkippedUnknown {
		t.Errorf("plain status = %v, want StatusSkippedUnknown", byName["plain"])
	}
}

func TestUpdate_UnknownName(t *testing.T) {
	if _, err := Update(context.Background(), t.TempDir(), "ghost"); err == nil {
		t.Error("Update() with an unknown source name should error")
	}
}

func TestPullWasNoop(t *testing.T) {
	if !pullWasNoop("Already up to date.") {
		t.Error("pullWasNoop() = false for an up-to-date pull")
	}
	if pullWasNoop("Updating 1a2b3c..4d5e6f\nFast-forward") {
		t.Error("pullWasNoop() = true for a fast-forward pull")
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	content := "[tool.guppi.source]\nname = \"my-tools\"\nversion = \"9.9.9\"\n"
	if err := os.WriteFile(filepath.Join(dir, manifest.FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	meta, valid, compatible := Validate(dir)
	if !valid {
		t.Fatal("Validate() = invalid for a directory with source metadata")
	}
	if compatible {
		t.Error("Validate() reported version 9.9.9 as compatible")
	}
	if meta.Name != "my-tools" {
		t.Errorf("meta.Name = %q, want %q", meta.Name, "my-tools")
	}

	if _, valid, _ := Validate(t.TempDir()); valid {
		t.Error("Validate() = valid for an empty directory")
	}
}
