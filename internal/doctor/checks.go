package doctor

import (
	"fmt"
	"sync"

	"github.com/vfetch/vfetch/internal/util"
)

// CheckStatus is the outcome of a single check.
type CheckStatus int

const (
	StatusPass CheckStatus = iota
	StatusWarn
	StatusFail
)

func (s CheckStatus) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// CheckResult is what a check reports back to the doctor command.
type CheckResult struct {
	Name       string      `json:"name"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Fixable    bool        `json:"fixable,omitempty"`
}

// NeedsFix reports whether --fix should try this result's check.
func (r CheckResult) NeedsFix() bool {
	return r.Fixable && r.Status != StatusPass
}

// Check is one diagnostic: the config file, the art, the terminal, or a probe.
type Check interface {
	Name() string
	// Category is the report section: CONFIG, ART, TERMINAL or PROBES.
	Category() string
	Run() CheckResult
	// Fix repairs what Run reported. Checks with nothing to repair return nil.
	Fix() error
}

// RunAllParallel runs every check concurrently and returns the results in
// check order. Probe checks may shell out to a package manager.
func RunAllParallel(checks []Check) []CheckResult {
	results := make([]CheckResult, len(checks))
	var wg sync.WaitGroup

	for i, check := range checks {
		wg.Add(1)
		go func(idx int, c Check) {
			defer wg.Done()
			results[idx] = c.Run()
		}(i, check)
	}

	wg.Wait()
	return results
}

// Group is one report section.
type Group struct {
	Category string        `json:"name"`
	Results  []CheckResult `json:"results"`
}

// GroupByCategory pairs results with their checks' categories. Categories
// listed in order come first, in that order; any others follow in the order
// they first appear. Results keep check order within a group.
func GroupByCategory(checks []Check, results []CheckResult, order []string) []Group {
	byCategory := make(map[string][]CheckResult)
	var seen []string
	for i, check := range checks {
		cat := check.Category()
		if _, ok := byCategory[cat]; !ok {
			seen = append(seen, cat)
		}
		byCategory[cat] = append(byCategory[cat], results[i])
	}

	groups := make([]Group, 0, len(seen))
	take := func(cat string) {
		if rs, ok := byCategory[cat]; ok {
			groups = append(groups, Group{Category: cat, Results: rs})
			delete(byCategory, cat)
		}
	}
	for _, cat := range order {
		take(cat)
	}
	for _, cat := range seen {
		take(cat)
	}
	return groups
}

// Tally counts results by status.
type Tally struct {
	Pass    int `json:"pass"`
	Warn    int `json:"warn"`
	Fail    int `json:"fail"`
	Fixable int `json:"fixable"`
}

// Count tallies results.
func Count(results []CheckResult) Tally {
	var t Tally
	for _, r := range results {
		switch r.Status {
		case StatusPass:
			t.Pass++
		case StatusWarn:
			t.Warn++
		case StatusFail:
			t.Fail++
		}
		if r.NeedsFix() {
			t.Fixable++
		}
	}
	return t
}

// Issues is the number of warnings and failures.
func (t Tally) Issues() int {
	return t.Warn + t.Fail
}

// Summary is the one-line verdict printed under the report.
func (t Tally) Summary() string {
	n := t.Issues()
	if n == 0 {
		return "Everything looks good"
	}
	return fmt.Sprintf("%d %s found", n, util.Pluralize(n, "issue", "issues"))
}
