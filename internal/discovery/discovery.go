// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"os"
	"path/filepath"

	"guppi-cli/pkg/manifest"

	"github.com/charmbracelet/log"
)

// ToolRecord represents one discoverable tool. Records are built fresh on
// every scan and carry no identity across scans.
type ToolRecord struct {
	// Name is the logical tool identifier, unique within a source only.
	Name string
	// Description is a human-readable summary.
	Description string
	// Location is the directory holding the tool's manifest and code.
	Location string
	// Source is the name of the contributing source. Empty only for
	// directly-specified installs that bypass the catalog.
	Source string
}

// Discovery enumerates tools under a sources root.
type Discovery struct {
	root   string
	logger *log.Logger
}

// New creates a Discovery over the given sources root.
func New(sourcesRoot string) *Discovery {
	return &Discovery{root: sourcesRoot, logger: log.Default()}
}

// WithLogger replaces the logger used for advisory warnings.
func (d *Discovery) WithLogger(logger *log.Logger) *Discovery {
	d.logger = logger
	return d
}

// DiscoverInSource scans the immediate subdirectories of sourceDir for tool
// manifests and tags every hit with sourceName. Non-directories and
// directories that do not classify as tools contribute nothing. Result order
// follows filesystem iteration order; callers needing determinism must sort.
func (d *Discovery) DiscoverInSource(sourceDir, sourceName string) []ToolRecord {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		// Missing or unreadable source: contributes nothing.
		return nil
	}

	var tools []ToolRecord
	for _, entry := range entries {
		path := filepath.Join(sourceDir, entry.Name())
		if !isDir(path) {
			continue
		}

		meta, ok := manifest.ClassifyTool(path)
		if !ok {
			continue
		}

		tools = append(tools, ToolRecord{
			Name:        meta.Name,
			Description: meta.Description,
			Location:    path,
			Source:      sourceName,
		})
	}
	return tools
}

// DiscoverAll walks every source under the root and concatenates the
// per-source results, in source-iteration order then tool-iteration order.
// A nonexistent root yields an empty catalog.
func (d *Discovery) DiscoverAll() []ToolRecord {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil
	}

	var all []ToolRecord
	for _, entry := range entries {
		path := filepath.Join(d.root, entry.Name())
		if !isDir(path) {
			continue
		}

		d.warnIncompatibleSchema(path, entry.Name())
		all = append(all, d.DiscoverInSource(path, entry.Name())...)
	}
	return all
}

// warnIncompatibleSchema emits an advisory when a source declares a schema
// version this CLI does not know. The source stays usable.
func (d *Discovery) warnIncompatibleSchema(path, name string) {
	meta, ok := manifest.ClassifySource(path)
	if !ok || manifest.CompatibleSchema(meta.Version) {
		return
	}
	d.logger.Warn("source declares an unsupported schema version",
		"source", name,
		"version", meta.Version,
		"supported", manifest.SchemaVersion)
}

// isDir reports whether path is a directory, following symlinks so that
// linked sources behave like regular ones.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
