// SPDX-License-Identifier: MPL-2.0

// Package source manages the configured tool sources under the sources
// root. Each source is a real filesystem entry (a git clone or a symlink
// to a local directory); the directory tree is the registry, so add,
// list, and update operate on it directly.
package source
