// SPDX-License-Identifier: MPL-2.0

// Package discovery walks the configured sources root and answers
// name-based queries against the resulting catalog.
//
// The catalog is rebuilt from disk on every call: the tree is expected to
// hold tens of entries, so re-walking is cheaper than any cache would be
// to keep correct. Failures during the walk (missing root, unreadable
// source, malformed manifest) degrade to empty contributions and never
// abort the scan.
package discovery
