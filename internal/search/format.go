// format.go implements the capture-group output format.
//
// Separated from search.go to isolate the join contract, which has a
// documented degenerate case for patterns without groups.
//
// The capture set is the slice regexp returns from FindStringSubmatch:
// slot 0 is the whole match, slots 1..n are the parenthesized groups in
// declaration order, and a group that did not participate is an empty
// string. The output line joins the group slots with commas, preserving
// empty slots so the comma structure always mirrors the pattern.

package search

import "strings"

// groupSlots selects the capture slots that make up the output line.
//
// Contract for degenerate patterns: with one or more groups the whole-match
// slot is dropped and only the groups are printed; with no groups at all
// the whole match is the sole slot and is printed as-is.
func groupSlots(caps []string) []string {
	if len(caps) <= 1 {
		return caps
	}
	return caps[1:]
}

// joinGroups renders the selected slots as one comma-separated line.
// Non-participating groups render as empty slots, commas preserved.
func joinGroups(slots []string) string {
	return strings.Join(slots, ",")
}
