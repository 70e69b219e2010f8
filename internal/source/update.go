// SPDX-License-Identifier: MPL-2.0

package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// UpdateStatus tags the outcome of refreshing one source.
type UpdateStatus int

const (
	// StatusUpdated means the pull brought in new commits.
	StatusUpdated UpdateStatus = iota
	// StatusUpToDate means the pull found nothing new.
	StatusUpToDate
	// StatusSkippedLocal means the entry is a symlinked local source, which
	// refresh never mutates.
	StatusSkippedLocal
	// StatusSkippedUnknown means the entry is not a git working copy.
	StatusSkippedUnknown
	// StatusFailed means the pull ran and failed.
	StatusFailed
)

// String returns a human-readable status name.
func (s UpdateStatus) String() string {
	switch s {
	case StatusUpdated:
		return "updated"
	case StatusUpToDate:
		return "already up to date"
	case StatusSkippedLocal:
		return "skipped (local source)"
	case StatusSkippedUnknown:
		return "skipped (not a git repository)"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// UpdateResult reports the refresh outcome for one source.
type UpdateResult struct {
	Name   string
	Status UpdateStatus
	Err    error
}

// Update refreshes the named source, or every source when name is empty.
// Local (symlinked) sources and plain directories are skipped, never
// mutated. A single failing pull does not stop the remaining sources.
func Update(ctx context.Context, root, name string) ([]UpdateResult, error) {
	var targets []string

	if name != "" {
		path := filepath.Join(root, name)
		if _, err := os.Lstat(path); err != nil {
			return nil, fmt.Errorf("source '%s' not found", name)
		}
		targets = []string{name}
	} else {
		for _, entry := range List(root) {
			targets = append(targets, entry.Name)
		}
	}

	results := make([]UpdateResult, 0, len(targets))
	for _, target := range targets {
		results = append(results, updateOne(ctx, filepath.Join(root, target), target))
	}
	return results, nil
}

func updateOne(ctx context.Context, path, name string) UpdateResult {
	if _, err := os.Readlink(path); err == nil {
		return UpdateResult{Name: name, Status: StatusSkippedLocal}
	}
	if _, err := os.Stat(filepath.Join(path, ".git")); err != nil {
		return UpdateResult{Name: name, Status: StatusSkippedUnknown}
	}

	out, err := gitPull(ctx, path)
	if err != nil {
		return UpdateResult{Name: name, Status: StatusFailed, Err: err}
	}
	if pullWasNoop(out) {
		return UpdateResult{Name: name, Status: StatusUpToDate}
	}
	return UpdateResult{Name: name, Status: StatusUpdated}
}
