package records

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

var outcomeLabels = map[string]string{
	"won":  "survived",
	"baby": "lost the baby",
	"task": "left a chore undone",
}

// FormatRun renders one history line relative to now
func FormatRun(run Run, now time.Time) string {
	label, ok := outcomeLabels[run.Outcome]
	if !ok {
		label = run.Outcome
	}
	return fmt.Sprintf("%-14s %-20s %5.1fs  %s hazards, %s chores",
		humanize.RelTime(run.StartedAt, now, "ago", "from now"),
		label,
		run.Duration.Seconds(),
		humanize.Comma(int64(run.HazardsCleared)),
		humanize.Comma(int64(run.ChoresCompleted)),
	)
}
