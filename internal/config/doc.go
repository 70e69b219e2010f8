// SPDX-License-Identifier: MPL-2.0

// Package config resolves the guppi home directory tree and loads the
// optional settings file.
//
// The filesystem under the home directory is the registry: there is no
// separate index file. config resolves the roots once so that discovery
// and source operations receive explicit paths instead of re-deriving
// them on every call.
package config
