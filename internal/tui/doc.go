// SPDX-License-Identifier: MPL-2.0

// Package tui renders tables, panels, and markdown for terminal output.
// Everything here consumes already-resolved data; no discovery or
// filesystem logic belongs in this package.
package tui
