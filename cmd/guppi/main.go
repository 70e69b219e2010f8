// SPDX-License-Identifier: MPL-2.0

// guppi is a plugin-dispatch CLI: built-in subcommands manage tools and
// sources, and any other first argument is forwarded to an external
// guppi-<name> executable.
package main

import "os"

func main() {
	if code, routed := tryRoute(os.Args[1:]); routed {
		os.Exit(code)
	}
	Execute()
}
