// SPDX-License-Identifier: MPL-2.0

// Package manifest classifies directories by their pyproject.toml metadata.
//
// A directory is a tool when its manifest carries a [tool.guppi] table, a
// source when it carries [tool.guppi.source], both when both tables are
// present, and neither otherwise. Classification is best-effort: missing
// files, malformed TOML, and empty tables all report "not found" rather
// than errors, because a scan across a user-curated tree must not abort
// on one bad file.
package manifest
