package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/trendwatch/internal/trend"
)

const (
	timestampLayout = "2006-01-02 15:04"
	ruleWidth       = 50
	indent          = "   "
)

// TextWriter outputs the human-readable report document.
type TextWriter struct{}

func (t *TextWriter) Ext() string { return ".md" }

func (t *TextWriter) Write(w io.Writer, report *trend.Report) error {
	ew := &errWriter{w: w}
	ew.printf("%s", Render(report))
	return ew.err
}

// Render returns the report as one text document. Lines are joined with
// "\n"; each candidate block ends with an empty line.
func Render(report *trend.Report) string {
	l, err := trend.LookupLocale(report.Locale)
	if err != nil {
		l = trend.English
	}

	var lines []string
	add := func(format string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	add("%s", l.Title)
	add("%s%s", l.TimeLabel, report.GeneratedAt.Format(timestampLayout))
	add("%s", strings.Repeat("=", ruleWidth))
	add("\n%s\n", l.Section)

	for _, e := range report.Entries {
		c := e.Candidate
		add("%d. **%s** ⭐ %d", e.Rank, c.FullName, c.Stars)
		add("%s%s%s", indent, l.DescLabel, c.Description)
		add("%s%s%s", indent, l.LinkLabel, c.URL)
		add("%s%s%s", indent, l.CreatedLabel, c.CreatedDate())
		add("%s\n%s%s", indent, indent, l.AnalysisLabel)
		for _, line := range e.Analysis {
			add("%s%s", indent, line)
		}
		add("")
	}

	if len(report.Signals) > 0 {
		add("\n%s\n", l.SignalSection)
		for i, s := range report.Signals {
			add("%d. %s", i+1, s.Title)
			add("%s%s%s", indent, l.LinkLabel, s.Link)
			if s.Source != "" {
				add("%s%s%s", indent, l.SourceLabel, s.Source)
			}
			add("")
		}
	}

	return strings.Join(lines, "\n")
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
