package activity

import (
	"slices"
	"strings"

	"github.com/vmunix/arrdeck/pkg/api"
)

// ChangeKind classifies a queue change.
type ChangeKind string

const (
	ChangeAdded      ChangeKind = "added"
	ChangeProgressed ChangeKind = "progressed"
	ChangeStatus     ChangeKind = "status"
	ChangeFinished   ChangeKind = "finished"
	ChangeFailed     ChangeKind = "failed"
	ChangeRemoved    ChangeKind = "removed"
)

// Change is one difference between two queue polls.
type Change struct {
	Kind     ChangeKind
	Download api.Download
	Previous *api.Download // nil for added
}

// finishedStatuses and failedStatuses are server queue states that end a
// download's stay in the queue.
var (
	finishedStatuses = []string{"completed", "imported", "importpending"}
	failedStatuses   = []string{"failed", "warning"}
)

// Diff compares two queue snapshots keyed by download id. Changes are
// returned in the order of cur, then removals in the order of prev.
func Diff(prev, cur []api.Download) []Change {
	before := make(map[int64]api.Download, len(prev))
	for _, d := range prev {
		before[d.ID] = d
	}

	var changes []Change
	seen := make(map[int64]bool, len(cur))
	for _, d := range cur {
		seen[d.ID] = true
		old, ok := before[d.ID]
		if !ok {
			changes = append(changes, Change{Kind: ChangeAdded, Download: d})
			continue
		}
		if kind, changed := compare(old, d); changed {
			changes = append(changes, Change{Kind: kind, Download: d, Previous: &old})
		}
	}
	for _, d := range prev {
		if !seen[d.ID] {
			changes = append(changes, Change{Kind: ChangeRemoved, Download: d, Previous: &d})
		}
	}
	return changes
}

func compare(old, cur api.Download) (ChangeKind, bool) {
	if !strings.EqualFold(old.Status, cur.Status) {
		status := strings.ToLower(cur.Status)
		switch {
		case slices.Contains(finishedStatuses, status):
			return ChangeFinished, true
		case slices.Contains(failedStatuses, status):
			return ChangeFailed, true
		default:
			return ChangeStatus, true
		}
	}
	if cur.Progress != old.Progress || cur.SizeLeft != old.SizeLeft {
		return ChangeProgressed, true
	}
	return "", false
}
