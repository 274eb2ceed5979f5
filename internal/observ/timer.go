// Package observ collects wall-clock timings for the check pipeline.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase is one finished measurement.
type Phase struct {
	Name string
	Dur  time.Duration
	Note string
}

// Timer accumulates finished phases in start order. Not safe for
// concurrent use; the CLI times whole stages, not per-file work.
type Timer struct {
	phases []Phase
}

func NewTimer() *Timer { return &Timer{} }

// Start begins measuring a phase and returns the function that ends
// it. The note is attached to the finished phase; empty is fine.
func (t *Timer) Start(name string) func(note string) {
	begin := time.Now()
	return func(note string) {
		t.phases = append(t.phases, Phase{
			Name: name,
			Dur:  time.Since(begin),
			Note: note,
		})
	}
}

// PhaseReport is the serializable view of a single timed phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates every finished phase with the total duration.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	rep := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, p := range t.phases {
		total += p.Dur
		rep.Phases[i] = PhaseReport{
			Name:       p.Name,
			DurationMS: millis(p.Dur),
			Note:       p.Note,
		}
	}
	rep.TotalMS = millis(total)
	return rep
}

// Summary renders the report for stderr.
func (t *Timer) Summary() string {
	rep := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range rep.Phases {
		fmt.Fprintf(&sb, "  %-20s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			sb.WriteString("  // " + p.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-20s %7.2f ms\n", "total", rep.TotalMS)
	return sb.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
