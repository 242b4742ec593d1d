package report

import (
	"fmt"
	"io"

	"github.com/meghashyamc/interferometer/interferometer"
)

// Reporter prints the interference pattern as a text diamond every few ticks.
type Reporter struct {
	out   io.Writer
	timer *Timer
}

func NewReporter(out io.Writer, every int) *Reporter {
	return &Reporter{
		out:   out,
		timer: NewTimer(every),
	}
}

// Observe counts one tick and prints the snapshot once a report is due. It reports
// whether anything was printed.
func (r *Reporter) Observe(snap interferometer.Snapshot) (bool, error) {
	r.timer.Update()
	if !r.timer.IsReady() {
		return false, nil
	}
	r.timer.Reset()
	return true, r.Report(snap)
}

// Report prints the snapshot immediately.
func (r *Reporter) Report(snap interferometer.Snapshot) error {
	visible := 0
	for _, p := range snap.Particles {
		if p.Visible {
			visible++
		}
	}
	if _, err := fmt.Fprintf(r.out, "tick %d  particles %d  pattern %v\n", snap.Tick, visible, snap.Pattern); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if _, err := io.WriteString(r.out, Diamond(snap.Pattern)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
