package workflow

import (
	"backport.dev/backport/internal/patch"
	"backport.dev/backport/internal/version"
)

// StepResult records what happened to one resolved version.
type StepResult struct {
	Version      version.Version
	Tag          string
	Branch       string
	BranchReused bool
	Documents    []patch.Result

	// Terminal state of the version's branch.
	Discarded bool // dry run, branch rolled back
	DiffEmpty bool // patches produced no change, branch pruned
	Committed bool
	Pushed    bool
}

// Found sums the found blocks across all documents.
func (s StepResult) Found() int {
	total := 0
	for _, doc := range s.Documents {
		total += doc.Found
	}
	return total
}

// Total sums the accounted blocks across all documents.
func (s StepResult) Total() int {
	total := 0
	for _, doc := range s.Documents {
		total += doc.Total
	}
	return total
}

// Status renders the terminal state for the run summary.
func (s StepResult) Status() string {
	switch {
	case s.Discarded:
		return "discarded (dry run)"
	case s.DiffEmpty:
		return "skipped (no diff)"
	case s.Pushed:
		return "pushed"
	case s.Committed:
		return "committed"
	default:
		return "pending"
	}
}

// Summary aggregates the results of one run.
type Summary struct {
	Results []StepResult
}

// PushedCount returns how many versions ended with a pushed branch.
func (s *Summary) PushedCount() int {
	count := 0
	for _, r := range s.Results {
		if r.Pushed {
			count++
		}
	}
	return count
}
