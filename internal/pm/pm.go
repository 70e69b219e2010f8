// SPDX-License-Identifier: MPL-2.0

// Package pm is the boundary to the external package manager (uv). It only
// constructs argument lists, runs the command, and relays output; all
// installation mechanics live on the other side of the subprocess call.
package pm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Command is the external package manager executable.
const Command = "uv"

// ErrNotFound is returned when the uv executable is not on PATH.
var ErrNotFound = errors.New("'uv' command not found")

// InstallArgs builds the argument list for installing a tool. Existing local
// paths are installed editable; anything else is treated as a git address.
func InstallArgs(from string) []string {
	if _, err := os.Stat(from); err == nil {
		return []string{"tool", "install", "--editable", from}
	}
	return []string{"tool", "install", "git+" + from}
}

// Install installs a tool from the given path or repository address and
// returns the package manager's output.
func Install(ctx context.Context, from string) (string, error) {
	return run(ctx, InstallArgs(from)...)
}

// Uninstall removes the named package.
func Uninstall(ctx context.Context, pkg string) (string, error) {
	return run(ctx, "tool", "uninstall", pkg)
}

// List returns the package manager's installed-tool listing.
func List(ctx context.Context) (string, error) {
	return run(ctx, "tool", "list")
}

// Listed reports whether the listing output mentions pkg as an installed
// package.
func Listed(listing, pkg string) bool {
	for _, line := range strings.Split(listing, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == pkg {
			return true
		}
	}
	return false
}

// Upgrade upgrades the named package. UpgradeWasNoop distinguishes an
// upgrade that found nothing to do.
func Upgrade(ctx context.Context, pkg string) (string, error) {
	return run(ctx, "tool", "upgrade", pkg)
}

// UpgradeWasNoop reports whether upgrade output indicates no newer version.
func UpgradeWasNoop(out string) bool {
	return strings.Contains(out, "Nothing to upgrade")
}

func run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, Command, args...)

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%s %s: %s", Command, strings.Join(args, " "), strings.TrimSpace(buf.String()))
	}
	return strings.TrimSpace(buf.String()), nil
}
