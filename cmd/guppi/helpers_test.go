// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"guppi-cli/internal/discovery"
)

// writeTool lays down a discoverable tool directory under
// <root>/<sourceName>/<dirName> with a pyproject.toml manifest.
func writeTool(t *testing.T, root, sourceName, dirName, toolName, description string) string {
	t.Helper()

	dir := filepath.Join(root, sourceName, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	content := fmt.Sprintf(`[project]
name = "guppi-%s"
version = "0.1.0"

[tool.guppi]
name = %q
description = %q
`, toolName, toolName, description)
	if err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

// newTestDiscovery builds a Discovery over a fresh sources root.
func newTestDiscovery(t *testing.T) (*discovery.Discovery, string) {
	t.Helper()
	root := t.TempDir()
	return discovery.New(root), root
}
