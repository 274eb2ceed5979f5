package main

import (
	"testing"

	"roster/internal/diag"
	"roster/internal/driver"
	"roster/internal/source"
)

func TestResultFailed(t *testing.T) {
	erroring := diag.NewBag(4)
	erroring.Add(diag.Issue{Code: diag.MissingName, Severity: diag.SevError})
	warning := diag.NewBag(4)
	warning.Add(diag.Issue{Code: diag.AmbiguousSquareList, Severity: diag.SevWarning})

	tests := []struct {
		name string
		res  *driver.Result
		want bool
	}{
		{"clean and stable", &driver.Result{Bag: diag.NewBag(4), Stable: true}, false},
		{"warnings only", &driver.Result{Bag: warning, Stable: true}, false},
		{"errors only", &driver.Result{Bag: erroring, Stable: true}, true},
		{"unstable only", &driver.Result{Bag: diag.NewBag(4), Stable: false}, true},
		{"unstable with errors", &driver.Result{Bag: erroring, Stable: false}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.res.Input = source.NewInput("x.roster", "")
			if got := resultFailed(tt.res); got != tt.want {
				t.Errorf("resultFailed() = %v, want %v", got, tt.want)
			}
		})
	}
}

// An input that is both unstable and erroring counts against the exit
// status once, not twice.
func TestFailedCountsOncePerResult(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(diag.Issue{Code: diag.UnmatchedRound, Severity: diag.SevError})
	results := []*driver.Result{
		{Input: source.NewInput("a.roster", ""), Bag: bag, Stable: false},
		{Input: source.NewInput("b.roster", ""), Bag: diag.NewBag(4), Stable: true},
	}
	failed := 0
	for _, res := range results {
		if resultFailed(res) {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
}
