package trend

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	highAttentionStars = 1000
	earlySignalStars   = 100
)

var uiWordRe = regexp.MustCompile(`\bui\b`)

// Options tunes keyword matching.
type Options struct {
	// LiteralUI matches "ui" anywhere in the description, including inside
	// words such as "build" or "quick". Reports from before word matching
	// relied on this.
	LiteralUI bool
}

// Annotator derives PM-style commentary from a candidate's description and
// star count.
type Annotator struct {
	locale Locale
	opts   Options
}

// NewAnnotator returns an Annotator that words its output in l.
func NewAnnotator(l Locale, opts Options) Annotator {
	return Annotator{locale: l, opts: opts}
}

// Locale returns the annotator's locale.
func (a Annotator) Locale() Locale {
	return a.locale
}

// Annotate returns the commentary lines for one candidate. Every matching
// rule fires, in a fixed order; the fallback line appears only when nothing
// else did.
//
// Unless Options.LiteralUI is set, "ui" must appear as a whole word, so
// "build", "quick" and "GUI" no longer trigger the interaction line. The
// first release matched "ui" as a plain substring.
func (a Annotator) Annotate(description string, stars int) []string {
	desc := strings.ToLower(description)
	var notes []string

	if strings.Contains(desc, "agent") {
		notes = append(notes, a.locale.Agent)
	}
	if strings.Contains(desc, "llm") || strings.Contains(desc, "model") {
		notes = append(notes, a.locale.Model)
	}
	if a.mentionsUI(desc) || strings.Contains(desc, "interface") {
		notes = append(notes, a.locale.Interaction)
	}

	switch {
	case stars > highAttentionStars:
		notes = append(notes, fmt.Sprintf(a.locale.HighStars, stars))
	case stars > earlySignalStars:
		notes = append(notes, fmt.Sprintf(a.locale.EarlyStars, stars))
	}

	if strings.Contains(desc, "experimental") {
		notes = append(notes, a.locale.Experimental)
	}

	if len(notes) == 0 {
		return []string{a.locale.Fallback}
	}
	return notes
}

// Text returns the annotation joined by newlines.
func (a Annotator) Text(description string, stars int) string {
	return strings.Join(a.Annotate(description, stars), "\n")
}

func (a Annotator) mentionsUI(desc string) bool {
	if a.opts.LiteralUI {
		return strings.Contains(desc, "ui")
	}
	return uiWordRe.MatchString(desc)
}
