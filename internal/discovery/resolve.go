// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"golang.org/x/exp/slices"
)

// Outcome tags the result of a Resolve call.
type Outcome int

const (
	// NotFound means no record matched the name (or none survived the source filter).
	NotFound Outcome = iota
	// Unique means exactly one record was selected.
	Unique
	// Ambiguous means the name matched in several sources and no filter was given.
	Ambiguous
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not found"
	case Unique:
		return "unique"
	case Ambiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Resolution is the tagged result of resolving a tool name. Record is set
// only for Unique; Candidates lists the contributing source names only for
// Ambiguous.
type Resolution struct {
	Outcome    Outcome
	Record     ToolRecord
	Candidates []string
}

// FindAllMatching returns every catalog record whose name equals the query
// exactly. Matching is case-sensitive with no normalization.
func (d *Discovery) FindAllMatching(name string) []ToolRecord {
	var matches []ToolRecord
	for _, tool := range d.DiscoverAll() {
		if tool.Name == name {
			matches = append(matches, tool)
		}
	}
	return matches
}

// Resolve answers "which tool is meant by this name" in a single call.
// Without a source filter, a multi-source name resolves to Ambiguous with
// the candidate source names; with a filter, the filtered set resolves to
// the first match in deterministic order or NotFound.
func (d *Discovery) Resolve(name, source string) Resolution {
	matches := d.FindAllMatching(name)
	sortRecords(matches)

	if len(matches) == 0 {
		return Resolution{Outcome: NotFound}
	}

	if source != "" {
		for _, tool := range matches {
			if tool.Source == source {
				return Resolution{Outcome: Unique, Record: tool}
			}
		}
		return Resolution{Outcome: NotFound}
	}

	if len(matches) > 1 {
		candidates := make([]string, 0, len(matches))
		for _, tool := range matches {
			candidates = append(candidates, tool.Source)
		}
		return Resolution{Outcome: Ambiguous, Candidates: candidates}
	}

	return Resolution{Outcome: Unique, Record: matches[0]}
}

// FindOne retains the original lookup contract: absent both when nothing
// matches and when the name is ambiguous without a source filter. Callers
// that need to tell those cases apart should use Resolve.
func (d *Discovery) FindOne(name, source string) (ToolRecord, bool) {
	res := d.Resolve(name, source)
	if res.Outcome != Unique {
		return ToolRecord{}, false
	}
	return res.Record, true
}

// sortRecords orders matches by source name then location so that filtered
// first-match selection does not depend on filesystem iteration order.
func sortRecords(records []ToolRecord) {
	slices.SortFunc(records, func(a, b ToolRecord) int {
		if a.Source != b.Source {
			if a.Source < b.Source {
				return -1
			}
			return 1
		}
		switch {
		case a.Location < b.Location:
			return -1
		case a.Location > b.Location:
			return 1
		default:
			return 0
		}
	})
}
