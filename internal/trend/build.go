package trend

import (
	"time"

	"github.com/google/uuid"
)

const (
	// ToolName identifies the producer in structured reports.
	ToolName = "trendwatch"
	// ReportVersion is the schema version of Report.
	ReportVersion = "1.0"
)

// Build assembles a report from the candidates in the order given, calling
// the annotator once per candidate.
func Build(candidates []Candidate, signals []Signal, a Annotator, now time.Time) *Report {
	entries := make([]Entry, 0, len(candidates))
	for i, c := range candidates {
		entries = append(entries, Entry{
			Rank:      i + 1,
			Candidate: c,
			Analysis:  a.Annotate(c.Description, c.Stars),
		})
	}
	return &Report{
		Tool:        ToolName,
		Version:     ReportVersion,
		RunID:       uuid.NewString(),
		Locale:      a.Locale().Name,
		GeneratedAt: now,
		Entries:     entries,
		Signals:     signals,
	}
}
