// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"strings"
	"testing"

	"guppi-cli/internal/discovery"
)

func TestFilterTools(t *testing.T) {
	tools := []discovery.ToolRecord{
		{Name: "beads", Description: "Track beads"},
		{Name: "notes", Description: "Quick notes"},
		{Name: "timer", Description: "A countdown with BEADS in the description"},
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"beads", []string{"beads", "timer"}},
		{"BEADS", []string{"beads", "timer"}},
		{"notes", []string{"notes"}},
		{"quick", []string{"notes"}},
		{"nothing-matches", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			matched := filterTools(tools, tt.query)
			var names []string
			for _, tool := range matched {
				names = append(names, tool.Name)
			}
			if len(names) != len(tt.want) {
				t.Fatalf("filterTools(%q) = %v, want %v", tt.query, names, tt.want)
			}
			for i := range names {
				if names[i] != tt.want[i] {
					t.Errorf("filterTools(%q) = %v, want %v", tt.query, names, tt.want)
				}
			}
		})
	}
}

func TestRunToolSearchEmpty(t *testing.T) {
	disc, _ := newTestDiscovery(t)

	var stdout bytes.Buffer
	if err := runToolSearch(searchParams{stdout: &stdout, disc: disc}); err != nil {
		t.Fatalf("runToolSearch error: %v", err)
	}
	if !strings.Contains(stdout.String(), "No tools found in sources") {
		t.Errorf("missing empty-state message:\n%s", stdout.String())
	}
}

func TestRunToolSearchListsAll(t *testing.T) {
	disc, root := newTestDiscovery(t)
	writeTool(t, root, "alpha", "beads", "beads", "Track beads")
	writeTool(t, root, "alpha", "notes", "notes", "Quick notes")

	var stdout bytes.Buffer
	if err := runToolSearch(searchParams{stdout: &stdout, disc: disc}); err != nil {
		t.Fatalf("runToolSearch error: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"beads", "notes", "alpha", "Total: 2 tool(s) found"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunToolSearchQueryFilters(t *testing.T) {
	disc, root := newTestDiscovery(t)
	writeTool(t, root, "alpha", "beads", "beads", "Track beads")
	writeTool(t, root, "alpha", "notes", "notes", "Quick notes")

	var stdout bytes.Buffer
	if err := runToolSearch(searchParams{stdout: &stdout, disc: disc, query: "notes"}); err != nil {
		t.Fatalf("runToolSearch error: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "notes") {
		t.Errorf("output missing matching tool:\n%s", out)
	}
	if !strings.Contains(out, "Total: 1 tool(s) found") {
		t.Errorf("output missing filtered total:\n%s", out)
	}
}

func TestRunToolSearchNoMatch(t *testing.T) {
	disc, root := newTestDiscovery(t)
	writeTool(t, root, "alpha", "beads", "beads", "Track beads")

	var stdout bytes.Buffer
	if err := runToolSearch(searchParams{stdout: &stdout, disc: disc, query: "zzz"}); err != nil {
		t.Fatalf("runToolSearch error: %v", err)
	}
	if !strings.Contains(stdout.String(), "No tools found matching 'zzz'") {
		t.Errorf("missing no-match message:\n%s", stdout.String())
	}
}
