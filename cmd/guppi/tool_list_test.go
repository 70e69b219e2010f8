// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"guppi-cli/internal/discovery"
)

func TestScanPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable-bit semantics differ on windows")
	}

	first := t.TempDir()
	second := t.TempDir()

	writeExec := func(dir, name string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	writeExec(first, "guppi-beads")
	writeExec(first, "guppi-notes")
	writeExec(second, "guppi-beads") // shadowed by the first PATH entry
	writeExec(second, "guppi-extra")
	writeExec(first, "unrelated")
	// Not executable, must be skipped.
	if err := os.WriteFile(filepath.Join(first, "guppi-plain"), []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	pathEnv := first + string(os.PathListSeparator) + second
	tools := scanPath(pathEnv)

	byName := map[string]string{}
	for _, tool := range tools {
		byName[tool.Name] = tool.Path
	}

	if len(byName) != 3 {
		t.Fatalf("found %d tools (%v), want 3", len(byName), byName)
	}
	if byName["beads"] != filepath.Join(first, "guppi-beads") {
		t.Errorf("beads resolved to %q, want the first PATH hit", byName["beads"])
	}
	if _, ok := byName["plain"]; ok {
		t.Error("non-executable guppi-plain should be skipped")
	}
	if _, ok := byName["extra"]; !ok {
		t.Error("guppi-extra from the second PATH entry is missing")
	}
}

func TestScanPathEmptyAndMissingDirs(t *testing.T) {
	pathEnv := "" + string(os.PathListSeparator) + filepath.Join(t.TempDir(), "nope")
	if tools := scanPath(pathEnv); len(tools) != 0 {
		t.Errorf("scanPath over empty/missing dirs = %v, want none", tools)
	}
}

func TestUniqueByName(t *testing.T) {
	catalog := []discovery.ToolRecord{
		{Name: "beads", Source: "alpha"},
		{Name: "notes", Source: "alpha"},
		{Name: "notes", Source: "beta"},
	}

	if record, ok := uniqueByName(catalog, "beads"); !ok || record.Source != "alpha" {
		t.Errorf("uniqueByName(beads) = (%+v, %v), want the alpha record", record, ok)
	}
	if _, ok := uniqueByName(catalog, "notes"); ok {
		t.Error("uniqueByName(notes) = ok for an ambiguous name")
	}
	if _, ok := uniqueByName(catalog, "missing"); ok {
		t.Error("uniqueByName(missing) = ok for an absent name")
	}
}

func TestRunToolListEmpty(t *testing.T) {
	disc, _ := newTestDiscovery(t)

	var stdout bytes.Buffer
	err := runToolList(listParams{stdout: &stdout, disc: disc, path: t.TempDir()})
	if err != nil {
		t.Fatalf("runToolList error: %v", err)
	}
	if !strings.Contains(stdout.String(), "No tools installed") {
		t.Errorf("missing empty-state message:\n%s", stdout.String())
	}
}

func TestRunToolListAnnotatesFromCatalog(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable-bit semantics differ on windows")
	}

	disc, root := newTestDiscovery(t)
	writeTool(t, root, "alpha", "beads", "beads", "Track beads")

	bin := t.TempDir()
	if err := os.WriteFile(filepath.Join(bin, "guppi-beads"), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	err := runToolList(listParams{stdout: &stdout, disc: disc, path: bin})
	if err != nil {
		t.Fatalf("runToolList error: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "beads") {
		t.Errorf("output missing tool name:\n%s", out)
	}
	if !strings.Contains(out, "alpha") {
		t.Errorf("output missing source from catalog:\n%s", out)
	}
	if !strings.Contains(out, "Track beads") {
		t.Errorf("output missing description from catalog:\n%s", out)
	}
	if !strings.Contains(out, "Total: 1 tool(s) installed") {
		t.Errorf("output missing total line:\n%s", out)
	}
}
