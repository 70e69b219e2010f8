// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// FileName is the manifest file consulted in every candidate directory.
	FileName = "pyproject.toml"
	// SchemaVersion is the single source schema version this CLI supports.
	SchemaVersion = "1.0.0"
	// DefaultDescription substitutes for a missing description key.
	DefaultDescription = "No description"
)

// Tool is the tool-level metadata extracted from a [tool.guppi] table.
type Tool struct {
	// Name is the logical tool identifier, unique within a source.
	Name string
	// Description is a human-readable summary.
	Description string
}

// Source is the source-level metadata extracted from a [tool.guppi.source] table.
type Source struct {
	Name        string
	Description string
	// Version is the source schema version ("1.0.0" unless the manifest says otherwise).
	Version string
}

// document mirrors the slice of pyproject.toml guppi cares about. The guppi
// table is kept as a raw map because classification depends on key presence,
// not just values.
type document struct {
	Tool struct {
		Guppi map[string]any `toml:"guppi"`
	} `toml:"tool"`
}

// load parses dir's manifest. ok is false when the file is missing or the
// TOML is malformed; both cases are expected during a scan.
func load(dir string) (map[string]any, bool) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return nil, false
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, false
	}
	return doc.Tool.Guppi, true
}

// ClassifyTool reports whether dir is a tool directory and returns its
// metadata. Name defaults to the directory base name and Description to
// DefaultDescription.
//
// A manifest whose guppi table holds a source sub-table but no tool-level
// name key is source-only metadata and is not a tool, even when both live
// in the same file.
func ClassifyTool(dir string) (Tool, bool) {
	meta, ok := load(dir)
	if !ok || len(meta) == 0 {
		return Tool{}, false
	}

	_, hasSource := meta["source"]
	_, hasName := meta["name"]
	if hasSource && !hasName {
		return Tool{}, false
	}

	return Tool{
		Name:        stringValue(meta["name"], filepath.Base(dir)),
		Description: stringValue(meta["description"], DefaultDescription),
	}, true
}

// ClassifySource reports whether dir carries valid source metadata and
// returns it. Version defaults to SchemaVersion when unspecified.
func ClassifySource(dir string) (Source, bool) {
	meta, ok := load(dir)
	if !ok {
		return Source{}, false
	}

	sub, ok := meta["source"].(map[string]any)
	if !ok || len(sub) == 0 {
		return Source{}, false
	}

	return Source{
		Name:        stringValue(sub["name"], ""),
		Description: stringValue(sub["description"], ""),
		Version:     stringValue(sub["version"], SchemaVersion),
	}, true
}

// CompatibleSchema reports whether version matches the supported schema
// version exactly. No range parsing: only one version exists so far.
func CompatibleSchema(version string) bool {
	return version == SchemaVersion
}

func stringValue(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}
