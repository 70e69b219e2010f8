// SPDX-License-Identifier: MPL-2.0

package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"guppi-cli/pkg/manifest"

	"golang.org/x/exp/slices"
)

// Kind classifies how a source entry is backed.
type Kind int

const (
	// KindLocal is a symlink to another filesystem location.
	KindLocal Kind = iota
	// KindVersioned is a working copy of a version-control repository.
	KindVersioned
	// KindUnknown is a plain directory that is neither of the above.
	KindUnknown
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindLocal:
		return "local"
	case KindVersioned:
		return "git"
	default:
		return "unknown"
	}
}

// Entry represents one configured tool source.
type Entry struct {
	// Name is the key the source was registered under.
	Name string
	// Kind reports how the entry is backed.
	Kind Kind
	// Location is the resolved symlink target for local sources, the
	// remote origin URL for versioned ones when retrievable, and the
	// local path otherwise.
	Location string
}

// ErrExists is returned by Add when the source name is already taken.
type ErrExists struct {
	Name string
	Path string
}

func (e *ErrExists) Error() string {
	return fmt.Sprintf("source '%s' already exists at %s", e.Name, e.Path)
}

// Add registers a new source under root. An existing local directory is
// linked in place; anything else is treated as a git URL and cloned.
func Add(ctx context.Context, root, name, target string) (Entry, error) {
	dest := filepath.Join(root, name)
	if _, err := os.Lstat(dest); err == nil {
		return Entry{}, &ErrExists{Name: name, Path: dest}
	}

	if info, err := os.Stat(target); err == nil && info.IsDir() {
		abs, err := filepath.Abs(target)
		if err != nil {
			return Entry{}, fmt.Errorf("resolving %s: %w", target, err)
		}
		if err := os.Symlink(abs, dest); err != nil {
			return Entry{}, fmt.Errorf("linking local source: %w", err)
		}
		return Entry{Name: name, Kind: KindLocal, Location: abs}, nil
	}

	if err := gitClone(ctx, target, dest); err != nil {
		return Entry{}, err
	}
	return Entry{Name: name, Kind: KindVersioned, Location: target}, nil
}

// List returns the configured sources sorted by name. A missing root yields
// an empty list.
func List(root string) []Entry {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var entries []Entry
	for _, de := range dirEntries {
		path := filepath.Join(root, de.Name())
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		entries = append(entries, classify(path, de.Name()))
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})
	return entries
}

// classify determines the kind and display location for one source directory.
func classify(path, name string) Entry {
	if target, err := os.Readlink(path); err == nil {
		if resolved, err := filepath.EvalSymlinks(path); err == nil {
			target = resolved
		}
		return Entry{Name: name, Kind: KindLocal, Location: target}
	}

	if _, err := os.Stat(filepath.Join(path, ".git")); err == nil {
		location := path
		if url, err := gitRemoteURL(path); err == nil && url != "" {
			location = url
		}
		return Entry{Name: name, Kind: KindVersioned, Location: location}
	}

	return Entry{Name: name, Kind: KindUnknown, Location: path}
}

// Validate pairs the source-metadata classification with the schema
// compatibility check for a directory.
func Validate(dir string) (meta manifest.Source, valid, compatible bool) {
	meta, valid = manifest.ClassifySource(dir)
	if !valid {
		return manifest.Source{}, false, false
	}
	return meta, true, manifest.CompatibleSchema(meta.Version)
}
